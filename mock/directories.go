// Package mock : stand-in directory chaincodes answering the queries
// data collection chaincode makes. state is loaded directly into MockStub.State
package mock

import (
	"encoding/json"
	"strconv"

	"datacollection/manager/model"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-protos-go/peer"
)

const enrollmentObjectType = "ENROLLMENT"

// MockInstitutionCC : institution verification chaincode,
// an identity is verified when its key is present in state
type MockInstitutionCC struct{}

func (MockInstitutionCC) Init(stub shim.ChaincodeStubInterface) peer.Response {
	return shim.Success(nil)
}

func (MockInstitutionCC) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	method, args := stub.GetFunctionAndParameters()
	if method != "isVerified" || len(args) != 1 {
		return shim.Error("not supported")
	}
	raw, err := stub.GetState(args[0])
	if err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success([]byte(strconv.FormatBool(len(raw) != 0)))
}

// MockProtocolCC : protocol registry chaincode keyed by protocol id
type MockProtocolCC struct{}

func (MockProtocolCC) Init(stub shim.ChaincodeStubInterface) peer.Response {
	return shim.Success(nil)
}

func (MockProtocolCC) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	method, args := stub.GetFunctionAndParameters()
	if method != "getProtocol" || len(args) != 1 {
		return shim.Error("not supported")
	}
	raw, err := stub.GetState(args[0])
	if err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success(raw)
}

// MockEnrollmentCC : patient enrollment chaincode keyed by (protocol id, patient id)
type MockEnrollmentCC struct{}

func (MockEnrollmentCC) Init(stub shim.ChaincodeStubInterface) peer.Response {
	return shim.Success(nil)
}

func (MockEnrollmentCC) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	method, args := stub.GetFunctionAndParameters()
	if method != "getEnrollment" || len(args) != 2 {
		return shim.Error("not supported")
	}
	raw, err := stub.GetState(EnrollmentKey(args[0], args[1]))
	if err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success(raw)
}

// EnrollmentKey : worldstate key of an enrollment on MockEnrollmentCC
func EnrollmentKey(protocolID, patientID string) string {
	k, _ := shim.CreateCompositeKey(enrollmentObjectType, []string{protocolID, patientID})
	return k
}

// VerifyInstitution : mark institution as verified
func VerifyInstitution(stub *shimtest.MockStub, institution string) {
	stub.State[institution] = []byte("true")
}

// RevokeInstitution : drop verification of institution
func RevokeInstitution(stub *shimtest.MockStub, institution string) {
	delete(stub.State, institution)
}

// LoadProtocol : register protocol owned by institution
func LoadProtocol(stub *shimtest.MockStub, protocolID uint64, institution, title string) {
	raw, _ := json.Marshal(model.Protocol{Institution: institution, Title: title})
	stub.State[strconv.FormatUint(protocolID, 10)] = raw
}

// LoadEnrollment : enroll patient in protocol
func LoadEnrollment(stub *shimtest.MockStub, protocolID uint64, patientID, institution, status string) {
	raw, _ := json.Marshal(model.Enrollment{Institution: institution, Status: status})
	stub.State[EnrollmentKey(strconv.FormatUint(protocolID, 10), patientID)] = raw
}

// NewDirectoryStubs : mock stubs of the three directories, named after the chaincodes in dirs
func NewDirectoryStubs(dirs model.Directories) (institutions, protocols, enrollments *shimtest.MockStub) {
	institutions = shimtest.NewMockStub(dirs.InstitutionChaincode, MockInstitutionCC{})
	protocols = shimtest.NewMockStub(dirs.ProtocolChaincode, MockProtocolCC{})
	enrollments = shimtest.NewMockStub(dirs.EnrollmentChaincode, MockEnrollmentCC{})
	return institutions, protocols, enrollments
}
