package models

import (
	"encoding/json"
)

// Status is the tag of a SubmissionState
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// User-facing copy for each state
const (
	SubmittingMessage = "Sending..."
	SuccessMessage    = "Thanks so much! I've received your message and I'll get back to you within 24 hours."
	ErrorMessage      = "Something went wrong. Please try again or email me directly."
)

// SubmissionState is the lifecycle state of one contact form.
// A single tag backs the three flags, so at most one of them is ever true.
type SubmissionState struct {
	Status Status
}

// IdleState is the ready-to-edit state
var IdleState = SubmissionState{Status: StatusIdle}

func (s SubmissionState) Submitting() bool { return s.Status == StatusSubmitting }
func (s SubmissionState) Succeeded() bool  { return s.Status == StatusSuccess }
func (s SubmissionState) Failed() bool     { return s.Status == StatusError }
func (s SubmissionState) IsIdle() bool     { return s.Status == StatusIdle }

// Terminal reports whether the state is the outcome of a settled attempt
func (s SubmissionState) Terminal() bool {
	return s.Status == StatusSuccess || s.Status == StatusError
}

// Message returns the text shown to the visitor, empty while idle
func (s SubmissionState) Message() string {
	switch s.Status {
	case StatusSubmitting:
		return SubmittingMessage
	case StatusSuccess:
		return SuccessMessage
	case StatusError:
		return ErrorMessage
	default:
		return ""
	}
}

func (s SubmissionState) String() string {
	return s.Status.String()
}

// MarshalJSON exposes the flag view used by the page script and the API
func (s SubmissionState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status     string `json:"status"`
		Submitting bool   `json:"submitting"`
		Success    bool   `json:"success"`
		Error      bool   `json:"error"`
		Message    string `json:"message,omitempty"`
	}{
		Status:     s.Status.String(),
		Submitting: s.Submitting(),
		Success:    s.Succeeded(),
		Error:      s.Failed(),
		Message:    s.Message(),
	})
}
