package manager

import (
	"encoding/json"

	"datacollection/manager/log"
	"datacollection/manager/model"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"
)

// DataCollectionChaincode : append only ledger of clinical data submissions.
// submissions are authorized against institution, protocol and enrollment
// directory chaincodes installed on same channel.
type DataCollectionChaincode struct{}

// Init : stores initial admin and directory chaincode names.
// args[0] (optional) : json.Marshal(model.InitInput)
func (*DataCollectionChaincode) Init(stub shim.ChaincodeStubInterface) peer.Response {
	const fnTag = "#Init"
	log.Infof("Initializing Data Collection Chaincode on %s", stub.GetChannelID())
	_, args := stub.GetFunctionAndParameters()
	if len(args) > 1 {
		log.Errorf("%s %s got %d", fnTag, errInvlidArgsCount, len(args))
		return shim.Error("expected at most one argument")
	}
	var input model.InitInput
	if len(args) == 1 && len(args[0]) != 0 {
		if err := json.Unmarshal([]byte(args[0]), &input); err != nil {
			log.Infof("%s %s :: %s", fnTag, errBadRequestObject, err.Error())
			return shim.Error("bad init object")
		}
	}

	// CONFIG marks an initialized ledger, admin may have been transferred to ""
	stored, err := stub.GetState(configKey)
	if err != nil {
		log.Errorf("[%s] [%s] %s", errGettingState, configKey, err.Error())
		return shim.Error(err.Error())
	}
	if len(stored) != 0 {
		// upgrade with --init-required must not reset admin or directories
		log.Infof("%s %s directories = %s", fnTag, errAlreadyInitialized, string(stored))
		return shim.Success(nil)
	}

	ledger := NewStateLedger(stub)
	if input.Admin == "" {
		input.Admin, err = callerIdentity(stub)
		if err != nil {
			log.Errorf("%s %s : %s", fnTag, errGettingCaller, err.Error())
			return shim.Error(err.Error())
		}
	}
	if err := ledger.SetAdmin(input.Admin); err != nil {
		return shim.Error(err.Error())
	}
	raw, _ := json.Marshal(withDefaults(input.Directories))
	if err := stub.PutState(configKey, raw); err != nil {
		log.Errorf("[%s] [%s] %s", errPuttingState, configKey, err.Error())
		return shim.Error(err.Error())
	}
	log.Infof("Chaincode initialized admin = %s directories = %s", input.Admin, string(raw))
	return shim.Success(nil)
}

func (*DataCollectionChaincode) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	methodName, args := stub.GetFunctionAndParameters()
	method, ok := methodRegistry[methodName]
	if !ok {
		log.Errorf("[%s] [%s]", errMethodUnsupported, methodName)
		return shim.Error("not supported")
	}
	log.Infof("[Invoke] method = %s , args = %v", methodName, args)
	return method(stub, args)
}

var methodRegistry = map[string]func(stub shim.ChaincodeStubInterface, args []string) peer.Response{
	"addDataEntry":        addDataEntry,
	"getDataEntry":        getDataEntry,
	"verifyDataIntegrity": verifyDataIntegrity,
	"transferAdmin":       transferAdmin,
	"getAdmin":            getAdmin,
	"getDataCount":        getDataCount,
}

// ConfigureChaincode : configure chaincode instance.
func (*DataCollectionChaincode) ConfigureChaincode(devLogging bool) {
	log.InitLogger(devLogging)
}

// newRegistry : registry for current transaction
func newRegistry(stub shim.ChaincodeStubInterface) (*Registry, error) {
	dirs, err := loadDirectories(stub)
	if err != nil {
		log.Errorf("[%s] %s", errLoadingDirectories, err.Error())
		return nil, err
	}
	return NewRegistry(
		NewStateLedger(stub),
		txClock{stub: stub},
		NewInstitutionDirectory(stub, dirs.InstitutionChaincode, dirs.Channel),
		NewProtocolDirectory(stub, dirs.ProtocolChaincode, dirs.Channel),
		NewEnrollmentDirectory(stub, dirs.EnrollmentChaincode, dirs.Channel),
	), nil
}
