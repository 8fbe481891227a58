package models

// Feedback is a free-form note left from the landing page.
type Feedback struct {
	Email   *string `json:"email"`
	Message string  `json:"message"`
}

// EarlyAccess is a waitlist signup.
type EarlyAccess struct {
	Email     string  `json:"email"`
	UserAgent *string `json:"-"`
}

type SubmissionResponse struct {
	OK     bool   `json:"ok"`
	Stored bool   `json:"stored"`
	Error  string `json:"error,omitempty"`
}
