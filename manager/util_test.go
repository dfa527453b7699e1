package manager

import (
	"container/list"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"datacollection/manager/model"
	"datacollection/mock"

	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-protos-go/msp"
)

const (
	org1    = "Org1MSP"
	org2    = "Org2MSP"
	hosp1   = "hospital1"
	hosp2   = "hospital2"
	admin1  = "admin1"
	patient = "PATIENT123"
)

var (
	institutionI = Identity(org1, hosp1)
	institutionJ = Identity(org2, hosp2)
	adminID      = Identity(org1, admin1)
)

// serializedIdentity : creator bytes of a self signed x509 identity
func serializedIdentity(t testing.TB, mspId, commonName string) []byte {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: commonName, Organization: []string{mspId}},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatal(err)
	}
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	raw, err := proto.Marshal(&msp.SerializedIdentity{Mspid: mspId, IdBytes: certPEM})
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func setCaller(t testing.TB, stub *shimtest.MockStub, mspId, commonName string) {
	stub.Creator = serializedIdentity(t, mspId, commonName)
}

// testNetwork : data collection chaincode wired to mock directory chaincodes
type testNetwork struct {
	dc           *shimtest.MockStub
	institutions *shimtest.MockStub
	protocols    *shimtest.MockStub
	enrollments  *shimtest.MockStub
}

func prepareNetwork(t testing.TB) *testNetwork {
	t.Helper()
	cc := new(DataCollectionChaincode)
	cc.ConfigureChaincode(true)

	institutions, protocols, enrollments := mock.NewDirectoryStubs(withDefaults(model.Directories{}))
	dc := shimtest.NewMockStub("DataCollection", cc)
	dc.Invokables[DefaultInstitutionChaincode] = institutions
	dc.Invokables[DefaultProtocolChaincode] = protocols
	dc.Invokables[DefaultEnrollmentChaincode] = enrollments

	setCaller(t, dc, org1, admin1)
	resp := dc.MockInit("init", nil)
	if resp.Status != 200 {
		t.Fatalf("init failed: %s", resp.Message)
	}
	return &testNetwork{
		dc:           dc,
		institutions: institutions,
		protocols:    protocols,
		enrollments:  enrollments,
	}
}

func buildEmptyMockStub() *shimtest.MockStub {
	s := new(shimtest.MockStub)
	s.State = make(map[string][]byte)
	s.Invokables = make(map[string]*shimtest.MockStub)
	s.Keys = list.New()
	return s
}

// memLedger : in memory Ledger
type memLedger struct {
	admin   string
	lastID  uint64
	entries map[uint64]model.DataEntry
	writes  int
	putErr  error
}

func newMemLedger(admin string) *memLedger {
	return &memLedger{admin: admin, entries: make(map[uint64]model.DataEntry)}
}

func (l *memLedger) Admin() (string, error) { return l.admin, nil }

func (l *memLedger) SetAdmin(admin string) error {
	l.writes++
	l.admin = admin
	return nil
}

func (l *memLedger) LastID() (uint64, error) { return l.lastID, nil }

func (l *memLedger) SetLastID(id uint64) error {
	l.writes++
	l.lastID = id
	return nil
}

func (l *memLedger) Entry(id uint64) (*model.DataEntry, error) {
	entry, ok := l.entries[id]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (l *memLedger) PutEntry(entry *model.DataEntry) error {
	if l.putErr != nil {
		return l.putErr
	}
	l.writes++
	l.entries[entry.ID] = *entry
	return nil
}

type fixedClock int64

func (c fixedClock) Now() (int64, error) { return int64(c), nil }

// fakeDirectories : all three directories in memory, records every query
type fakeDirectories struct {
	verified    map[string]bool
	owners      map[uint64]string
	enrollments map[string]string
	calls       []string
	err         error
}

func newFakeDirectories() *fakeDirectories {
	return &fakeDirectories{
		verified:    make(map[string]bool),
		owners:      make(map[uint64]string),
		enrollments: make(map[string]string),
	}
}

func (d *fakeDirectories) enroll(protocolID uint64, patientID string) {
	d.enrollments[fmt.Sprintf("%d/%s", protocolID, patientID)] = "active"
}

func (d *fakeDirectories) IsVerified(institution string) (bool, error) {
	d.calls = append(d.calls, "isVerified")
	if d.err != nil {
		return false, d.err
	}
	return d.verified[institution], nil
}

func (d *fakeDirectories) GetProtocol(protocolID uint64) (*model.Protocol, error) {
	d.calls = append(d.calls, "getProtocol")
	owner, ok := d.owners[protocolID]
	if !ok {
		return nil, nil
	}
	return &model.Protocol{Institution: owner}, nil
}

func (d *fakeDirectories) GetEnrollment(protocolID uint64, patientID string) (*model.Enrollment, error) {
	d.calls = append(d.calls, "getEnrollment")
	status, ok := d.enrollments[fmt.Sprintf("%d/%s", protocolID, patientID)]
	if !ok {
		return nil, nil
	}
	return &model.Enrollment{Status: status}, nil
}

func newTestRegistry(ledger *memLedger, dirs *fakeDirectories) *Registry {
	return NewRegistry(ledger, fixedClock(100), dirs, dirs, dirs)
}

var errDirectoryDown = errors.New("directory unavailable")
