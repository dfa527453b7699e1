package manager

import (
	"testing"

	"datacollection/manager/model"
	"datacollection/mock"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/stretchr/testify/assert"
)

// rawCC : directory chaincode answering every call with a fixed response
type rawCC struct {
	resp peer.Response
}

func (rawCC) Init(stub shim.ChaincodeStubInterface) peer.Response { return shim.Success(nil) }

func (cc rawCC) Invoke(stub shim.ChaincodeStubInterface) peer.Response { return cc.resp }

func TestDirectoryAdapters(t *testing.T) {
	is := assert.New(t)
	institutions, protocols, enrollments := mock.NewDirectoryStubs(withDefaults(model.Directories{}))
	mock.VerifyInstitution(institutions, institutionI)
	mock.LoadProtocol(protocols, 1, institutionI, "Test Protocol")
	mock.LoadEnrollment(enrollments, 1, patient, institutionI, "active")

	host := buildEmptyMockStub()
	host.Invokables[DefaultInstitutionChaincode] = institutions
	host.Invokables[DefaultProtocolChaincode] = protocols
	host.Invokables[DefaultEnrollmentChaincode] = enrollments

	host.MockTransactionStart("tx-1")
	defer host.MockTransactionEnd("tx-1")

	inst := NewInstitutionDirectory(host, DefaultInstitutionChaincode, "")
	verified, err := inst.IsVerified(institutionI)
	is.NoError(err)
	is.True(verified)
	verified, err = inst.IsVerified(institutionJ)
	is.NoError(err)
	is.False(verified)

	prot := NewProtocolDirectory(host, DefaultProtocolChaincode, "")
	protocol, err := prot.GetProtocol(1)
	is.NoError(err)
	if is.NotNil(protocol) {
		is.Equal(institutionI, protocol.Institution)
		is.Equal("Test Protocol", protocol.Title)
	}
	protocol, err = prot.GetProtocol(2)
	is.NoError(err)
	is.Nil(protocol)

	enr := NewEnrollmentDirectory(host, DefaultEnrollmentChaincode, "")
	enrollment, err := enr.GetEnrollment(1, patient)
	is.NoError(err)
	if is.NotNil(enrollment) {
		is.Equal("active", enrollment.Status)
	}
	enrollment, err = enr.GetEnrollment(1, "PATIENT456")
	is.NoError(err)
	is.Nil(enrollment)
	enrollment, err = enr.GetEnrollment(2, patient)
	is.NoError(err)
	is.Nil(enrollment)
}

func TestDirectoryOnOtherChannel(t *testing.T) {
	is := assert.New(t)
	institutions, _, _ := mock.NewDirectoryStubs(withDefaults(model.Directories{}))
	mock.VerifyInstitution(institutions, institutionI)
	host := buildEmptyMockStub()
	host.Invokables[DefaultInstitutionChaincode+"/registry-channel"] = institutions

	host.MockTransactionStart("tx-1")
	verified, err := NewInstitutionDirectory(host, DefaultInstitutionChaincode, "registry-channel").IsVerified(institutionI)
	host.MockTransactionEnd("tx-1")
	is.NoError(err)
	is.True(verified)
}

func TestDirectoryFailures(t *testing.T) {
	tests := []struct {
		name string
		resp peer.Response
	}{
		{name: "ErrorStatus", resp: shim.Error("boom")},
		{name: "BadPayload", resp: shim.Success([]byte("{not json"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := assert.New(t)
			host := buildEmptyMockStub()
			host.Invokables["broken"] = shimtest.NewMockStub("broken", rawCC{resp: tt.resp})
			host.MockTransactionStart("tx-1")
			defer host.MockTransactionEnd("tx-1")

			_, err := NewInstitutionDirectory(host, "broken", "").IsVerified(institutionI)
			is.Error(err)
			_, err = NewProtocolDirectory(host, "broken", "").GetProtocol(1)
			is.Error(err)
			_, err = NewEnrollmentDirectory(host, "broken", "").GetEnrollment(1, patient)
			is.Error(err)
		})
	}
}

func TestDirectoryNullPayloadIsAbsent(t *testing.T) {
	is := assert.New(t)
	host := buildEmptyMockStub()
	host.Invokables["nulls"] = shimtest.NewMockStub("nulls", rawCC{resp: shim.Success([]byte("null"))})
	host.MockTransactionStart("tx-1")
	defer host.MockTransactionEnd("tx-1")

	protocol, err := NewProtocolDirectory(host, "nulls", "").GetProtocol(1)
	is.NoError(err)
	is.Nil(protocol)
	enrollment, err := NewEnrollmentDirectory(host, "nulls", "").GetEnrollment(1, patient)
	is.NoError(err)
	is.Nil(enrollment)
}

func TestAddDataEntryNullProtocolIsNotFound(t *testing.T) {
	is := assert.New(t)
	net := prepareNetwork(t)
	net.authorize(1, institutionI, "PT1")
	net.dc.Invokables[DefaultProtocolChaincode] = shimtest.NewMockStub(DefaultProtocolChaincode, rawCC{resp: shim.Success([]byte("null"))})

	setCaller(t, net.dc, org1, hosp1)
	resp := invoke(net.dc, "tx-1", "addDataEntry", addArg(visitOne))
	is.Equal(int32(402), resp.Status)
	is.Equal("ERR_PROTOCOL_NOT_FOUND", resp.Message)
	is.Nil(net.dc.State[dataIDCounterKey])
}

func TestLoadDirectoriesDefaults(t *testing.T) {
	is := assert.New(t)
	stub := buildEmptyMockStub()

	dirs, err := loadDirectories(stub)
	is.NoError(err)
	is.Equal(DefaultInstitutionChaincode, dirs.InstitutionChaincode)
	is.Equal(DefaultProtocolChaincode, dirs.ProtocolChaincode)
	is.Equal(DefaultEnrollmentChaincode, dirs.EnrollmentChaincode)
	is.Empty(dirs.Channel)

	stub.State[configKey] = []byte(`{"protocolChaincode":"protocols-v2","channel":"registry"}`)
	dirs, err = loadDirectories(stub)
	is.NoError(err)
	is.Equal(DefaultInstitutionChaincode, dirs.InstitutionChaincode)
	is.Equal("protocols-v2", dirs.ProtocolChaincode)
	is.Equal("registry", dirs.Channel)

	stub.State[configKey] = []byte("garbage")
	_, err = loadDirectories(stub)
	is.Error(err)
}
