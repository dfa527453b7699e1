package manager

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// getCaller : msp id and certificate common name of transaction creator
func getCaller(stub shim.ChaincodeStubInterface) (string, string, error) {
	mspId, err := cid.GetMSPID(stub)
	if err != nil {
		return "", "", err
	}
	cert, err := cid.GetX509Certificate(stub)
	if err != nil {
		return "", "", err
	}
	if cert == nil {
		return "", "", fmt.Errorf("creator of msp %s has no x509 certificate", mspId)
	}
	return mspId, cert.Subject.CommonName, nil
}

// callerIdentity : identity used for institutions and admin, mspId::commonName
func callerIdentity(stub shim.ChaincodeStubInterface) (string, error) {
	mspId, commonName, err := getCaller(stub)
	if err != nil {
		return "", err
	}
	return Identity(mspId, commonName), nil
}

// Identity : formats an identity the way callers are recorded
func Identity(mspId, commonName string) string {
	return fmt.Sprintf("%s::%s", mspId, commonName)
}
