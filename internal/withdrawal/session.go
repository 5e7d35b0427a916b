package withdrawal

import (
	"math"
	"strings"
	"sync"

	"github.com/hubcoin/miniapp/internal/apperrors"
	"github.com/hubcoin/miniapp/internal/models"
	"github.com/hubcoin/miniapp/internal/payment"
)

type State int

const (
	StateIdle State = iota
	StateMethodSelected
	StateAmountSelected
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateMethodSelected:
		return "method_selected"
	case StateAmountSelected:
		return "amount_selected"
	case StateSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

// Session tracks one user's in-progress withdrawal selection. The required
// gem cost is only ever written by the payment calculator, and no field
// changes while a submission is in flight.
type Session struct {
	mu           sync.Mutex
	method       payment.Method
	amount       *float64
	isCustom     bool
	requiredGems int
	account      string
	submitting   bool
}

func NewSession() *Session {
	return &Session{}
}

// SelectMethod switches the payout method and clears everything computed for
// the previous one, so no amount or gem cost leaks across methods.
func (s *Session) SelectMethod(m payment.Method) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return apperrors.ErrSubmissionInFlight
	}
	if _, ok := payment.Lookup(m); !ok {
		return apperrors.ErrUnknownMethod
	}

	s.method = m
	s.amount = nil
	s.isCustom = false
	s.requiredGems = 0
	s.account = ""
	return nil
}

// SelectPreset picks one of the method's fixed withdrawal amounts.
func (s *Session) SelectPreset(amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return apperrors.ErrSubmissionInFlight
	}
	if s.method == "" {
		return apperrors.ErrNoMethodSelected
	}

	gems, err := payment.PresetGems(s.method, amount)
	if err != nil {
		return err
	}

	s.isCustom = false
	s.amount = &amount
	s.requiredGems = gems
	return nil
}

// SelectCustom switches to custom-amount entry. The amount is unset until a
// positive value arrives via EnterCustomAmount.
func (s *Session) SelectCustom() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return apperrors.ErrSubmissionInFlight
	}
	if s.method == "" {
		return apperrors.ErrNoMethodSelected
	}

	s.isCustom = true
	s.amount = nil
	s.requiredGems = 0
	return nil
}

// EnterCustomAmount recomputes the gem cost for a custom value. Non-positive
// values unset the amount and keep the submission gate closed.
func (s *Session) EnterCustomAmount(value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return apperrors.ErrSubmissionInFlight
	}
	if s.method == "" {
		return apperrors.ErrNoMethodSelected
	}
	if !s.isCustom {
		return apperrors.ErrInvalidRequest
	}

	gems, err := payment.CustomGems(s.method, value)
	if err != nil {
		return err
	}

	if value > 0 && !math.IsInf(value, 0) {
		s.amount = &value
	} else {
		s.amount = nil
	}
	s.requiredGems = gems
	return nil
}

// SetAccount stores the free-text destination. The backend validates format.
func (s *Session) SetAccount(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return apperrors.ErrSubmissionInFlight
	}

	s.account = strings.TrimSpace(text)
	return nil
}

// Reset returns the session to idle with all fields cleared.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return
	}
	s.clear()
}

func (s *Session) clear() {
	s.method = ""
	s.amount = nil
	s.isCustom = false
	s.requiredGems = 0
	s.account = ""
}

// CanSubmit reports whether submission is currently allowed: an amount and
// method are chosen, a destination is entered, and the account holds both
// enough balance and enough gems. Balance and gems are checked independently.
func (s *Session) CanSubmit(acc models.Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canSubmit(acc)
}

func (s *Session) canSubmit(acc models.Account) bool {
	if s.amount == nil || s.method == "" || s.account == "" {
		return false
	}
	if acc.Balance < *s.amount {
		return false
	}
	if acc.Gems < s.requiredGems {
		return false
	}
	return true
}

// BeginSubmit closes the session for mutation and returns the request
// snapshot to send. It refuses locally when the gate is closed and rejects
// re-entrant submits while one is already in flight.
func (s *Session) BeginSubmit(acc models.Account) (models.WithdrawalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return models.WithdrawalRequest{}, apperrors.ErrSubmissionInFlight
	}
	if !s.canSubmit(acc) {
		return models.WithdrawalRequest{}, apperrors.ErrSubmissionBlocked
	}

	s.submitting = true
	return models.WithdrawalRequest{
		Amount:  *s.amount,
		Method:  string(s.method),
		Account: s.account,
	}, nil
}

// EndSubmit records the submission outcome. Success clears the session;
// failure preserves every field so the user can retry without re-entering.
func (s *Session) EndSubmit(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
	if success {
		s.clear()
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.submitting:
		return StateSubmitting
	case s.amount != nil:
		return StateAmountSelected
	case s.method != "":
		return StateMethodSelected
	default:
		return StateIdle
	}
}

// View renders the session for the UI, including the gate verdict against
// the given account snapshot.
func (s *Session) View(acc models.Account) models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := models.SessionView{
		Method:       string(s.method),
		IsCustom:     s.isCustom,
		RequiredGems: s.requiredGems,
		Account:      s.account,
		Submitting:   s.submitting,
		CanSubmit:    s.canSubmit(acc),
	}
	if s.amount != nil {
		amount := *s.amount
		view.Amount = &amount
	}
	if s.method != "" {
		view.AccountLabel = payment.AccountLabel(s.method)
	}
	return view
}
