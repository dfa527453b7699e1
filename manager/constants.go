package manager

// tags used in log lines
const (
	errPuttingState       = "ERROR_PUTTING_STATE"
	errGettingState       = "ERROR_GETTING_STATE"
	errInvlidArgsCount    = "ERROR_INVALID_ARGUMENT_COUNT"
	errMethodUnsupported  = "ERROR_UNSUPPORTED_METHOD"
	errInvokeChaincode    = "ERROR_INVOKEING_CHAINCODE"
	errBadDirectoryOutput = "ERROR_BAD_DIRECTORY_CC_OUTPUT"
	errBadRequestObject   = "ERROR_BAD_REQUEST_OBJECT"
	errGettingCaller      = "ERROR_GETTING_CALLER"
	errGettingTimestamp   = "ERROR_GETTING_TIMESTAMP"
	errSettingEvent       = "ERROR_SETTING_EVENT"
	errAlreadyInitialized = "ERROR_ALREADY_INITIALIZED"
	errRegistryRejected   = "ERROR_REGISTRY_REJECTED"
	errLoadingDirectories = "ERROR_LOADING_DIRECTORIES"
)

// worldstate keys
const (
	adminKey         = "ADMIN"
	dataIDCounterKey = "DATA_ID_COUNTER"
	configKey        = "CONFIG"
	dataEntryPrefix  = "DATA_ENTRY"
)

// default names of directory chaincodes
const (
	DefaultInstitutionChaincode = "institution-verification"
	DefaultProtocolChaincode    = "protocol-registry"
	DefaultEnrollmentChaincode  = "patient-enrollment"
)

// chaincode events
const (
	eventDataEntryAdded   = "DataEntryAdded"
	eventAdminTransferred = "AdminTransferred"
)
