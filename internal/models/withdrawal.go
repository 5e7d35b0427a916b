package models

// WithdrawalRequest is the payload sent to the account service on submit.
type WithdrawalRequest struct {
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Account string  `json:"account"`
}

// SessionView is what the UI renders after every session event: the current
// field values plus the submission-gate verdict. The submit control is enabled
// iff CanSubmit is true.
type SessionView struct {
	Method       string   `json:"method,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	IsCustom     bool     `json:"is_custom"`
	RequiredGems int      `json:"required_gems"`
	Account      string   `json:"account"`
	AccountLabel string   `json:"account_label,omitempty"`
	Submitting   bool     `json:"submitting"`
	CanSubmit    bool     `json:"can_submit"`
}
