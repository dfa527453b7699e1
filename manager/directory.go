package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"datacollection/manager/log"
	"datacollection/manager/model"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// directory.go : read only queries to directory chaincodes installed on same channel

// InstitutionDirectory : answers whether an identity is a verified institution
type InstitutionDirectory interface {
	IsVerified(institution string) (bool, error)
}

// ProtocolDirectory : resolves a protocol, nil when not found
type ProtocolDirectory interface {
	GetProtocol(protocolID uint64) (*model.Protocol, error)
}

// EnrollmentDirectory : resolves an enrollment, nil when patient is not enrolled
type EnrollmentDirectory interface {
	GetEnrollment(protocolID uint64, patientID string) (*model.Enrollment, error)
}

// chaincodeRef : a directory chaincode reachable through InvokeChaincode
type chaincodeRef struct {
	stub    shim.ChaincodeStubInterface
	name    string
	channel string
}

func (ref chaincodeRef) invoke(method string, args ...string) ([]byte, error) {
	var fnTag = fmt.Sprintf("#invoke::%s", ref.name)
	ccArgs := make([][]byte, 0, len(args)+1)
	ccArgs = append(ccArgs, []byte(method))
	for _, arg := range args {
		ccArgs = append(ccArgs, []byte(arg))
	}
	log.Debugf("%s method = %s args = %v", fnTag, method, args)
	resp := ref.stub.InvokeChaincode(ref.name, ccArgs, ref.channel)
	if resp.Status != shim.OK {
		log.Errorf("%s %s method = %s status = %d : %s", fnTag, errInvokeChaincode, method, resp.Status, resp.GetMessage())
		return nil, fmt.Errorf("%s %s failed: %s", ref.name, method, resp.GetMessage())
	}
	return resp.GetPayload(), nil
}

type institutionDirectory struct{ chaincodeRef }

type protocolDirectory struct{ chaincodeRef }

type enrollmentDirectory struct{ chaincodeRef }

// NewInstitutionDirectory : InstitutionDirectory served by chaincode ccName
func NewInstitutionDirectory(stub shim.ChaincodeStubInterface, ccName, channel string) InstitutionDirectory {
	return institutionDirectory{chaincodeRef{stub: stub, name: ccName, channel: channel}}
}

// NewProtocolDirectory : ProtocolDirectory served by chaincode ccName
func NewProtocolDirectory(stub shim.ChaincodeStubInterface, ccName, channel string) ProtocolDirectory {
	return protocolDirectory{chaincodeRef{stub: stub, name: ccName, channel: channel}}
}

// NewEnrollmentDirectory : EnrollmentDirectory served by chaincode ccName
func NewEnrollmentDirectory(stub shim.ChaincodeStubInterface, ccName, channel string) EnrollmentDirectory {
	return enrollmentDirectory{chaincodeRef{stub: stub, name: ccName, channel: channel}}
}

func (d institutionDirectory) IsVerified(institution string) (bool, error) {
	payload, err := d.invoke("isVerified", institution)
	if err != nil {
		return false, err
	}
	verified, err := strconv.ParseBool(string(payload))
	if err != nil {
		log.Errorf("#isVerified %s payload = %q", errBadDirectoryOutput, payload)
		return false, fmt.Errorf("invalid response from %s: %w", d.name, err)
	}
	return verified, nil
}

func (d protocolDirectory) GetProtocol(protocolID uint64) (*model.Protocol, error) {
	payload, err := d.invoke("getProtocol", strconv.FormatUint(protocolID, 10))
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, nil
	}
	// json null decodes to nil, same as empty payload
	var protocol *model.Protocol
	if err := json.Unmarshal(payload, &protocol); err != nil {
		log.Errorf("#getProtocol %s error = %s", errBadDirectoryOutput, err.Error())
		return nil, fmt.Errorf("invalid response from %s: %w", d.name, err)
	}
	return protocol, nil
}

func (d enrollmentDirectory) GetEnrollment(protocolID uint64, patientID string) (*model.Enrollment, error) {
	payload, err := d.invoke("getEnrollment", strconv.FormatUint(protocolID, 10), patientID)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, nil
	}
	// json null decodes to nil, same as empty payload
	var enrollment *model.Enrollment
	if err := json.Unmarshal(payload, &enrollment); err != nil {
		log.Errorf("#getEnrollment %s error = %s", errBadDirectoryOutput, err.Error())
		return nil, fmt.Errorf("invalid response from %s: %w", d.name, err)
	}
	return enrollment, nil
}

// loadDirectories : directory chaincode names stored during Init,
// defaults when chaincode was never initialized
func loadDirectories(stub shim.ChaincodeStubInterface) (model.Directories, error) {
	dirs := model.Directories{}
	raw, err := stub.GetState(configKey)
	if err != nil {
		log.Errorf("[%s] [%s] %s", errGettingState, configKey, err.Error())
		return dirs, err
	}
	if len(raw) != 0 {
		if err := json.Unmarshal(raw, &dirs); err != nil {
			return dirs, errors.New("corrupt directory config")
		}
	}
	return withDefaults(dirs), nil
}

func withDefaults(dirs model.Directories) model.Directories {
	if dirs.InstitutionChaincode == "" {
		dirs.InstitutionChaincode = DefaultInstitutionChaincode
	}
	if dirs.ProtocolChaincode == "" {
		dirs.ProtocolChaincode = DefaultProtocolChaincode
	}
	if dirs.EnrollmentChaincode == "" {
		dirs.EnrollmentChaincode = DefaultEnrollmentChaincode
	}
	return dirs
}
