package manager

import (
	"bytes"
	"fmt"

	"datacollection/manager/log"
	"datacollection/manager/model"
)

// registry.go : authorization chain and append only ledger of data entries.
// a Registry lives for one transaction, fabric serializes transactions
// so no locking is done here

// Registry : records data entries on behalf of verified institutions
type Registry struct {
	ledger       Ledger
	clock        Clock
	institutions InstitutionDirectory
	protocols    ProtocolDirectory
	enrollments  EnrollmentDirectory
}

// NewRegistry : registry over ledger, consulting the given directories
func NewRegistry(ledger Ledger, clock Clock, institutions InstitutionDirectory, protocols ProtocolDirectory, enrollments EnrollmentDirectory) *Registry {
	return &Registry{
		ledger:       ledger,
		clock:        clock,
		institutions: institutions,
		protocols:    protocols,
		enrollments:  enrollments,
	}
}

// AddDataEntry : validates caller against directories and appends a new entry.
// checks run in order verified institution, protocol exists, protocol owner,
// enrollment exists. first failing check decides the error and
// nothing is written unless every check passes. returns the stored entry
func (r *Registry) AddDataEntry(caller string, in model.AddDataEntryInput) (*model.DataEntry, error) {
	const fnTag = "#Registry.AddDataEntry"
	verified, err := r.institutions.IsVerified(caller)
	if err != nil {
		return nil, fmt.Errorf("checking institution %s: %w", caller, err)
	}
	if !verified {
		log.Debugf("%s caller = %s is not a verified institution", fnTag, caller)
		return nil, ErrNotVerified
	}

	protocol, err := r.protocols.GetProtocol(in.ProtocolID)
	if err != nil {
		return nil, fmt.Errorf("resolving protocol %d: %w", in.ProtocolID, err)
	}
	if protocol == nil {
		log.Debugf("%s protocol = %d not found", fnTag, in.ProtocolID)
		return nil, ErrProtocolNotFound
	}
	if protocol.Institution != caller {
		log.Debugf("%s protocol = %d owned by %s not by %s", fnTag, in.ProtocolID, protocol.Institution, caller)
		return nil, ErrUnauthorized
	}

	enrollment, err := r.enrollments.GetEnrollment(in.ProtocolID, in.PatientID)
	if err != nil {
		return nil, fmt.Errorf("resolving enrollment %d/%s: %w", in.ProtocolID, in.PatientID, err)
	}
	if enrollment == nil {
		log.Debugf("%s patient = %s not enrolled in protocol = %d", fnTag, in.PatientID, in.ProtocolID)
		return nil, ErrEnrollmentNotFound
	}

	lastID, err := r.ledger.LastID()
	if err != nil {
		return nil, err
	}
	timestamp, err := r.clock.Now()
	if err != nil {
		return nil, err
	}
	entry := &model.DataEntry{
		ID:          lastID + 1,
		ProtocolID:  in.ProtocolID,
		PatientID:   in.PatientID,
		Institution: caller,
		Timestamp:   timestamp,
		DataHash:    in.DataHash,
		DataType:    in.DataType,
		Metadata:    in.Metadata,
	}
	if err := r.ledger.PutEntry(entry); err != nil {
		return nil, err
	}
	if err := r.ledger.SetLastID(entry.ID); err != nil {
		return nil, err
	}
	log.Infof("%s data entry = %d added for protocol = %d by %s", fnTag, entry.ID, entry.ProtocolID, caller)
	return entry, nil
}

// GetDataEntry : entry with id, nil when absent
func (r *Registry) GetDataEntry(id uint64) (*model.DataEntry, error) {
	return r.ledger.Entry(id)
}

// VerifyDataIntegrity : whether stored fingerprint of entry id equals candidate byte for byte.
// a mismatch is false, not an error
func (r *Registry) VerifyDataIntegrity(id uint64, candidate []byte) (bool, error) {
	entry, err := r.ledger.Entry(id)
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, ErrNotFound
	}
	return bytes.Equal(entry.DataHash, candidate), nil
}

// TransferAdmin : hands admin rights to newAdmin, only current admin may call it.
// newAdmin is not validated
func (r *Registry) TransferAdmin(caller, newAdmin string) (bool, error) {
	admin, err := r.ledger.Admin()
	if err != nil {
		return false, err
	}
	if caller != admin {
		log.Debugf("#Registry.TransferAdmin caller = %s is not admin", caller)
		return false, ErrNotAdmin
	}
	if err := r.ledger.SetAdmin(newAdmin); err != nil {
		return false, err
	}
	log.Infof("#Registry.TransferAdmin admin transferred from %s to %s", admin, newAdmin)
	return true, nil
}

// Admin : current admin identity
func (r *Registry) Admin() (string, error) {
	return r.ledger.Admin()
}

// DataCount : last assigned entry id, 0 when ledger is empty
func (r *Registry) DataCount() (uint64, error) {
	return r.ledger.LastID()
}
