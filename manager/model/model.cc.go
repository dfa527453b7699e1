package model

// modeles.cc.go : defines outputs returned by directory chaincodes
// to data collection chaincode

// Protocol : output of protocol directory chaincode getProtocol(protocolId)
// empty payload when protocol is not found
type Protocol struct {
	// Institution : owning institution, mspId::commonName
	Institution string `json:"institution"`
	Title       string `json:"title,omitempty"`
}

// Enrollment : output of enrollment directory chaincode getEnrollment(protocolId, patientId)
// empty payload when patient is not enrolled.
// data collection chaincode only checks presence
type Enrollment struct {
	Institution string `json:"institution,omitempty"`
	Status      string `json:"status"`
}
