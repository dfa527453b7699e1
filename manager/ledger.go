package manager

import (
	"encoding/json"
	"fmt"
	"strconv"

	"datacollection/manager/log"
	"datacollection/manager/model"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// ledger.go : registry state kept on worldstate

// Ledger : storage owned by the registry.
// Entry returns nil, nil when id is not present
type Ledger interface {
	Admin() (string, error)
	SetAdmin(admin string) error
	LastID() (uint64, error)
	SetLastID(id uint64) error
	Entry(id uint64) (*model.DataEntry, error)
	PutEntry(entry *model.DataEntry) error
}

// Clock : logical clock used as entry timestamp
type Clock interface {
	Now() (int64, error)
}

type stateLedger struct {
	stub shim.ChaincodeStubInterface
}

// NewStateLedger : Ledger backed by chaincode worldstate
func NewStateLedger(stub shim.ChaincodeStubInterface) Ledger {
	return &stateLedger{stub: stub}
}

func (l *stateLedger) Admin() (string, error) {
	raw, err := l.stub.GetState(adminKey)
	if err != nil {
		log.Errorf("[%s] [%s] %s", errGettingState, adminKey, err.Error())
		return "", err
	}
	return string(raw), nil
}

func (l *stateLedger) SetAdmin(admin string) error {
	if err := l.stub.PutState(adminKey, []byte(admin)); err != nil {
		log.Errorf("[%s] [%s] %s", errPuttingState, adminKey, err.Error())
		return err
	}
	return nil
}

func (l *stateLedger) LastID() (uint64, error) {
	raw, err := l.stub.GetState(dataIDCounterKey)
	if err != nil {
		log.Errorf("[%s] [%s] %s", errGettingState, dataIDCounterKey, err.Error())
		return 0, err
	}
	if len(raw) == 0 {
		return 0, nil
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt data id counter %q: %w", raw, err)
	}
	return id, nil
}

func (l *stateLedger) SetLastID(id uint64) error {
	if err := l.stub.PutState(dataIDCounterKey, []byte(strconv.FormatUint(id, 10))); err != nil {
		log.Errorf("[%s] [%s] %s", errPuttingState, dataIDCounterKey, err.Error())
		return err
	}
	return nil
}

func (l *stateLedger) Entry(id uint64) (*model.DataEntry, error) {
	k := buildDataEntryKey(id)
	raw, err := l.stub.GetState(k)
	if err != nil {
		log.Errorf("[%s] [data entry %d] %s", errGettingState, id, err.Error())
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var entry model.DataEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("corrupt data entry %d: %w", id, err)
	}
	return &entry, nil
}

func (l *stateLedger) PutEntry(entry *model.DataEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := l.stub.PutState(buildDataEntryKey(entry.ID), raw); err != nil {
		log.Errorf("[%s] [data entry %d] %s", errPuttingState, entry.ID, err.Error())
		return err
	}
	return nil
}

// txClock : transaction timestamp seconds as logical clock
type txClock struct {
	stub shim.ChaincodeStubInterface
}

func (c txClock) Now() (int64, error) {
	timestamp, err := c.stub.GetTxTimestamp()
	if err != nil {
		log.Errorf("[%s] %s", errGettingTimestamp, err.Error())
		return 0, err
	}
	return timestamp.Seconds, nil
}

// zero padded so that entries sort by id in range queries
func buildDataEntryKey(id uint64) string {
	k, _ := shim.CreateCompositeKey(dataEntryPrefix, []string{fmt.Sprintf("%020d", id)})
	return k
}
