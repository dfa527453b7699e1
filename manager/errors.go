package manager

import "fmt"

// ErrorKind : registry failure returned to callers.
// value of each kind is its stable result code
type ErrorKind int32

const (
	ErrNotAdmin ErrorKind = 400 + iota
	ErrNotVerified
	ErrProtocolNotFound
	ErrUnauthorized
	ErrEnrollmentNotFound
	ErrNotFound
)

var errorNames = map[ErrorKind]string{
	ErrNotAdmin:           "ERR_NOT_ADMIN",
	ErrNotVerified:        "ERR_NOT_VERIFIED",
	ErrProtocolNotFound:   "ERR_PROTOCOL_NOT_FOUND",
	ErrUnauthorized:       "ERR_UNAUTHORIZED",
	ErrEnrollmentNotFound: "ERR_ENROLLMENT_NOT_FOUND",
	ErrNotFound:           "ERR_NOT_FOUND",
}

// Code : result code sent to client as peer response status
func (k ErrorKind) Code() int32 {
	return int32(k)
}

func (k ErrorKind) String() string {
	if name, ok := errorNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ERR_UNKNOWN(%d)", int32(k))
}

func (k ErrorKind) Error() string {
	return k.String()
}
