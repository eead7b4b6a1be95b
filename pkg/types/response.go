package types

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// Ack is the body for mutation endpoints that only confirm success.
type Ack struct {
	Msg string `json:"msg"`
}

// CreatedAck confirms a creation and reports the generated identifier.
type CreatedAck struct {
	Msg string `json:"msg"`
	ID  string `json:"id"`
}
