package api

import "fmt"

// NetworkError means the transport itself failed: the server was never
// reached. It carries a fixed user-facing message distinct from
// server-reported errors.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UserMessage is the fixed text shown for unreachable-server failures.
func (e *NetworkError) UserMessage() string {
	return "Cannot reach the server, try again later"
}

// RequestError means the server answered with a non-2xx status. Message is
// the server-supplied message field when present, otherwise "HTTP <status>".
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}
