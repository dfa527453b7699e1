// Package model : contains type definitions for
// storing data on data collection chaincode worldstate
// input/output to/from data collection chaincode
// input/output to/from directory chaincodes
package model

// DataEntry : one clinical data submission recorded on the ledger.
// entries are append only, never updated or deleted
type DataEntry struct {
	// ID : ledger sequence number, starts at 1
	ID uint64 `json:"id"`
	// ProtocolID : protocol the submission belongs to
	ProtocolID uint64 `json:"protocolId"`
	// PatientID : patient the submission concerns
	PatientID string `json:"patientId"`
	// Institution : identity of submitting institution, mspId::commonName
	Institution string `json:"institution"`
	// Timestamp : logical clock reading at creation
	Timestamp int64 `json:"timestamp"`
	// DataHash : opaque fingerprint of off ledger data
	DataHash []byte `json:"dataHash"`
	// DataType : short classification tag, ex: blood-test
	DataType string `json:"dataType"`
	// Metadata : free text description
	Metadata string `json:"metadata"`
}

// AddDataEntryInput : input of addDataEntry method
// args[0] : json.Marshal(AddDataEntryInput)
type AddDataEntryInput struct {
	ProtocolID uint64 `json:"protocolId"`
	PatientID  string `json:"patientId"`
	DataHash   []byte `json:"dataHash"`
	DataType   string `json:"dataType"`
	Metadata   string `json:"metadata"`
}

// VerifyIntegrityInput : input of verifyDataIntegrity method
// args[0] : json.Marshal(VerifyIntegrityInput)
type VerifyIntegrityInput struct {
	ID       uint64 `json:"id"`
	DataHash []byte `json:"dataHash"`
}

// InitInput : optional input of chaincode Init.
// empty fields fall back to defaults
type InitInput struct {
	// Admin : initial admin identity, defaults to instantiating identity
	Admin string `json:"admin"`
	Directories
}

// Directories : names of directory chaincodes consulted by data collection chaincode
// stored on worldstate during Init
type Directories struct {
	InstitutionChaincode string `json:"institutionChaincode"`
	ProtocolChaincode    string `json:"protocolChaincode"`
	EnrollmentChaincode  string `json:"enrollmentChaincode"`
	// Channel : channel of directory chaincodes, empty = same channel
	Channel string `json:"channel"`
}

// AdminTransferred : payload of AdminTransferred chaincode event
type AdminTransferred struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
}
