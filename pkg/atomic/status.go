package atomic

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Status holds a gRPC status code that may be set concurrently. Only
// the first error is retained. Its zero value corresponds to
// codes.OK.
type Status struct {
	code Int
}

// SetError stores an error code, but only if no error code has been
// stored before. Later calls are ignored.
func (s *Status) SetError(code codes.Code) {
	s.code.CompareAndSwap(int32(codes.OK), int32(code))
}

// Code returns the error code that was stored, or codes.OK if none.
func (s *Status) Code() codes.Code {
	return codes.Code(s.code.Get())
}

// Err returns the stored error code as an error, or nil if no error
// code has been stored.
func (s *Status) Err() error {
	code := s.Code()
	if code == codes.OK {
		return nil
	}
	return status.Error(code, code.String())
}

// FirstError holds the first non-nil error that was reported to it.
// Subsequent errors are discarded.
type FirstError struct {
	err Pointer[error]
}

// SetError stores an error, but only if no error has been stored
// before. It returns whether the error was stored.
func (e *FirstError) SetError(err error) bool {
	if err == nil {
		return false
	}
	return e.err.CompareAndSwap(nil, &err)
}

// Err returns the error that was stored first, or nil if none.
func (e *FirstError) Err() error {
	if err := e.err.Get(); err != nil {
		return *err
	}
	return nil
}
