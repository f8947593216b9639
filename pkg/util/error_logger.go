package util

// ErrorLogger may be used to report errors that are generated
// asynchronously, meaning they cannot be returned to the caller
// directly. Implementations may decide to log, redirect or discard
// them.
type ErrorLogger interface {
	Log(err error)
}
