package model

// UnknownErrorMessage is reported when a probe fails with something that is not an error value.
const UnknownErrorMessage = "Unknown error"

// ProbeResult is the outcome of one connectivity probe: either success, or failure with a message.
// The zero value is a failure with an empty message; use ProbeSucceeded and ProbeFailed.
type ProbeResult struct {
	ok      bool
	message string
}

func ProbeSucceeded() ProbeResult {
	return ProbeResult{ok: true}
}

func ProbeFailed(message string) ProbeResult {
	return ProbeResult{message: message}
}

// ProbeFailure builds the failure variant from whatever the probe failed with.
// Errors keep their message, anything else degrades to UnknownErrorMessage.
func ProbeFailure(cause any) ProbeResult {
	if err, ok := cause.(error); ok {
		return ProbeFailed(err.Error())
	}
	return ProbeFailed(UnknownErrorMessage)
}

func (r ProbeResult) OK() bool {
	return r.ok
}

// Message is empty for successful probes.
func (r ProbeResult) Message() string {
	return r.message
}
