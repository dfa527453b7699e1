package manager

import (
	"encoding/json"
	"errors"
	"strconv"

	"datacollection/manager/log"
	"datacollection/manager/model"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"
)

// methods.go : public methods supported by data collection chaincode are defined in this file

func addDataEntry(stub shim.ChaincodeStubInterface, args []string) peer.Response {
	const fnTag = "#addDataEntry"
	if len(args) != 1 {
		log.Errorf("%s %s got %d", fnTag, errInvlidArgsCount, len(args))
		return shim.Error("expected one argument")
	}
	var input model.AddDataEntryInput
	if err := json.Unmarshal([]byte(args[0]), &input); err != nil {
		log.Infof("%s %s :: %s", fnTag, errBadRequestObject, err.Error())
		return shim.Error("bad request object")
	}
	log.Debugf("%s input = %+v", fnTag, input)

	caller, err := callerIdentity(stub)
	if err != nil {
		log.Infof("%s %s : %s", fnTag, errGettingCaller, err.Error())
		return shim.Error(err.Error())
	}
	registry, err := newRegistry(stub)
	if err != nil {
		return shim.Error(err.Error())
	}
	entry, err := registry.AddDataEntry(caller, input)
	if err != nil {
		return errorResponse(fnTag, err)
	}
	// own writes are not readable within the transaction
	raw, _ := json.Marshal(entry)
	if err := stub.SetEvent(eventDataEntryAdded, raw); err != nil {
		log.Errorf("%s %s : %s", fnTag, errSettingEvent, err.Error())
		return shim.Error(err.Error())
	}
	return shim.Success([]byte(strconv.FormatUint(entry.ID, 10)))
}

func getDataEntry(stub shim.ChaincodeStubInterface, args []string) peer.Response {
	const fnTag = "#getDataEntry"
	if len(args) != 1 {
		log.Errorf("%s %s got %d", fnTag, errInvlidArgsCount, len(args))
		return shim.Error("expected one argument")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		log.Infof("%s %s :: %s", fnTag, errBadRequestObject, err.Error())
		return shim.Error("bad data id")
	}
	entry, err := ledgerRegistry(stub).GetDataEntry(id)
	if err != nil {
		return shim.Error(err.Error())
	}
	if entry == nil {
		log.Debugf("%s data entry = %d not present", fnTag, id)
		return shim.Success(nil)
	}
	raw, _ := json.Marshal(entry)
	return shim.Success(raw)
}

func verifyDataIntegrity(stub shim.ChaincodeStubInterface, args []string) peer.Response {
	const fnTag = "#verifyDataIntegrity"
	if len(args) != 1 {
		log.Errorf("%s %s got %d", fnTag, errInvlidArgsCount, len(args))
		return shim.Error("expected one argument")
	}
	var input model.VerifyIntegrityInput
	if err := json.Unmarshal([]byte(args[0]), &input); err != nil {
		log.Infof("%s %s :: %s", fnTag, errBadRequestObject, err.Error())
		return shim.Error("bad request object")
	}
	ok, err := ledgerRegistry(stub).VerifyDataIntegrity(input.ID, input.DataHash)
	if err != nil {
		return errorResponse(fnTag, err)
	}
	return shim.Success([]byte(strconv.FormatBool(ok)))
}

func transferAdmin(stub shim.ChaincodeStubInterface, args []string) peer.Response {
	const fnTag = "#transferAdmin"
	if len(args) != 1 {
		log.Errorf("%s %s got %d", fnTag, errInvlidArgsCount, len(args))
		return shim.Error("expected one argument")
	}
	newAdmin := args[0]
	caller, err := callerIdentity(stub)
	if err != nil {
		log.Infof("%s %s : %s", fnTag, errGettingCaller, err.Error())
		return shim.Error(err.Error())
	}
	ok, err := ledgerRegistry(stub).TransferAdmin(caller, newAdmin)
	if err != nil {
		return errorResponse(fnTag, err)
	}
	raw, _ := json.Marshal(model.AdminTransferred{Previous: caller, Current: newAdmin})
	if err := stub.SetEvent(eventAdminTransferred, raw); err != nil {
		log.Errorf("%s %s : %s", fnTag, errSettingEvent, err.Error())
		return shim.Error(err.Error())
	}
	return shim.Success([]byte(strconv.FormatBool(ok)))
}

func getAdmin(stub shim.ChaincodeStubInterface, args []string) peer.Response {
	admin, err := ledgerRegistry(stub).Admin()
	if err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success([]byte(admin))
}

func getDataCount(stub shim.ChaincodeStubInterface, args []string) peer.Response {
	count, err := ledgerRegistry(stub).DataCount()
	if err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success([]byte(strconv.FormatUint(count, 10)))
}

// errorResponse : registry errors carry their result code as status,
// anything else is an internal failure
func errorResponse(fnTag string, err error) peer.Response {
	var kind ErrorKind
	if errors.As(err, &kind) {
		log.Infof("%s %s :: %s", fnTag, errRegistryRejected, kind.String())
		return peer.Response{Status: kind.Code(), Message: kind.String()}
	}
	log.Errorf("%s %s", fnTag, err.Error())
	return shim.Error(err.Error())
}

// ledgerRegistry : registry for methods touching only own worldstate,
// directories are not consulted
func ledgerRegistry(stub shim.ChaincodeStubInterface) *Registry {
	return NewRegistry(NewStateLedger(stub), txClock{stub: stub}, nil, nil, nil)
}
