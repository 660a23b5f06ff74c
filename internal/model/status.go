package model

// SubmissionStatus represents the lifecycle state of a single idea submission
type SubmissionStatus string

const (
	// SubmissionStatusPending means the submission is queued but not sent
	SubmissionStatusPending SubmissionStatus = "Pending"

	// SubmissionStatusSending means the card request is in flight
	SubmissionStatusSending SubmissionStatus = "Sending"

	// SubmissionStatusCreated means Trello accepted the card
	SubmissionStatusCreated SubmissionStatus = "Created"

	// SubmissionStatusFailed means the request failed or Trello rejected it
	SubmissionStatusFailed SubmissionStatus = "Failed"

	// SubmissionStatusCancelled means the submission was cancelled before completion
	SubmissionStatusCancelled SubmissionStatus = "Cancelled"
)

// String returns the string representation of SubmissionStatus
func (s SubmissionStatus) String() string {
	return string(s)
}

// IsActive returns true if the request is currently in flight
func (s SubmissionStatus) IsActive() bool {
	return s == SubmissionStatusSending
}

// IsFinished returns true if the submission reached a final state (created, failed, or cancelled)
func (s SubmissionStatus) IsFinished() bool {
	return s == SubmissionStatusCreated || s == SubmissionStatusFailed || s == SubmissionStatusCancelled
}

// Outcome classifies how a card creation attempt ended
type Outcome string

const (
	OutcomeCreated        Outcome = "created"
	OutcomeDecodeFailed   Outcome = "decode_failed"
	OutcomeRemoteError    Outcome = "remote_error"
	OutcomeTransportError Outcome = "transport_error"
)
