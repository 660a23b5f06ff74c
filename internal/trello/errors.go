package trello

import "fmt"

// DecodeError is returned when Trello answered 200 with a body that is not JSON.
type DecodeError struct {
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode JSON response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RemoteError is returned for any response status other than 200.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("trello API returned status %d: %s", e.StatusCode, e.Body)
}

// TransportError is returned when the request could not be sent or the
// response could not be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to send card request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
