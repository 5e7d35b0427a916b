package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hubcoin/miniapp/internal/apperrors"
	"github.com/hubcoin/miniapp/internal/logger"
	"github.com/hubcoin/miniapp/internal/models"
	"github.com/hubcoin/miniapp/internal/payment"
	"github.com/hubcoin/miniapp/internal/remote"
	"github.com/hubcoin/miniapp/internal/withdrawal"
)

// WithdrawalService applies withdrawal-flow events to the user's session and
// submits completed requests to the account backend. Every mutating call
// returns the post-event view so the UI enable state stays a pure function
// of the response.
type WithdrawalService interface {
	View(userID int64) (models.SessionView, error)
	SelectMethod(userID int64, method string) (models.SessionView, error)
	SelectPreset(userID int64, amount float64) (models.SessionView, error)
	SelectCustom(userID int64) (models.SessionView, error)
	EnterCustomAmount(userID int64, raw string) (models.SessionView, error)
	SetAccount(userID int64, account string) (models.SessionView, error)
	Reset(userID int64) (models.SessionView, error)
	Submit(ctx context.Context, identity models.Identity) (SubmitOutcome, error)
}

// SubmitOutcome carries the backend's confirmation message, the applied
// account snapshot and the reset session view.
type SubmitOutcome struct {
	Message string
	Account models.Account
	Session models.SessionView
}

type withdrawalService struct {
	sessions *withdrawal.Registry
	accounts AccountService
	client   remote.ClientInterface
}

func NewWithdrawalService(sessions *withdrawal.Registry, accounts AccountService, client remote.ClientInterface) WithdrawalService {
	return &withdrawalService{
		sessions: sessions,
		accounts: accounts,
		client:   client,
	}
}

func (s *withdrawalService) View(userID int64) (models.SessionView, error) {
	snapshot, err := s.accounts.Snapshot(userID)
	if err != nil {
		return models.SessionView{}, err
	}
	return s.sessions.Get(userID).View(snapshot), nil
}

func (s *withdrawalService) SelectMethod(userID int64, method string) (models.SessionView, error) {
	return s.apply(userID, func(sess *withdrawal.Session) error {
		return sess.SelectMethod(payment.Method(method))
	})
}

func (s *withdrawalService) SelectPreset(userID int64, amount float64) (models.SessionView, error) {
	return s.apply(userID, func(sess *withdrawal.Session) error {
		return sess.SelectPreset(amount)
	})
}

func (s *withdrawalService) SelectCustom(userID int64) (models.SessionView, error) {
	return s.apply(userID, func(sess *withdrawal.Session) error {
		return sess.SelectCustom()
	})
}

// EnterCustomAmount parses the raw input at the boundary. Values that do not
// parse to a positive finite number fail closed: the amount stays unset and
// the gate stays shut, with no user-facing error.
func (s *withdrawalService) EnterCustomAmount(userID int64, raw string) (models.SessionView, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		value = 0
	}

	return s.apply(userID, func(sess *withdrawal.Session) error {
		return sess.EnterCustomAmount(value)
	})
}

func (s *withdrawalService) SetAccount(userID int64, account string) (models.SessionView, error) {
	return s.apply(userID, func(sess *withdrawal.Session) error {
		return sess.SetAccount(account)
	})
}

func (s *withdrawalService) Reset(userID int64) (models.SessionView, error) {
	return s.apply(userID, func(sess *withdrawal.Session) error {
		sess.Reset()
		return nil
	})
}

func (s *withdrawalService) apply(userID int64, transition func(sess *withdrawal.Session) error) (models.SessionView, error) {
	snapshot, err := s.accounts.Snapshot(userID)
	if err != nil {
		return models.SessionView{}, err
	}

	sess := s.sessions.Get(userID)
	if err := transition(sess); err != nil {
		return models.SessionView{}, err
	}
	return sess.View(snapshot), nil
}

// Submit sends the session snapshot to the backend. It refuses locally when
// the gate is closed, rejects re-entrant submits while one is in flight, and
// on failure leaves every session field untouched for a manual retry. The
// displayed balance and gems always come from the backend's response.
func (s *withdrawalService) Submit(ctx context.Context, identity models.Identity) (SubmitOutcome, error) {
	snapshot, err := s.accounts.Snapshot(identity.UserID)
	if err != nil {
		return SubmitOutcome{}, err
	}

	sess := s.sessions.Get(identity.UserID)
	req, err := sess.BeginSubmit(snapshot)
	if err != nil {
		return SubmitOutcome{}, err
	}

	result, err := s.client.SubmitWithdrawal(ctx, req, identity)
	if err != nil {
		sess.EndSubmit(false)
		logger.Log.Warn("withdrawal submission failed",
			zap.Int64("user", identity.UserID),
			zap.String("method", req.Method),
			zap.Error(err))
		return SubmitOutcome{}, err
	}

	if !result.Success {
		sess.EndSubmit(false)
		message := result.Error
		if message == "" {
			message = result.Message
		}
		if message == "" {
			message = "withdrawal rejected"
		}
		return SubmitOutcome{}, &apperrors.RemoteRejection{Message: message}
	}

	if result.Data != nil {
		s.accounts.Apply(identity.UserID, *result.Data)
		snapshot = *result.Data
	}
	sess.EndSubmit(true)

	logger.Log.Info("withdrawal submitted",
		zap.Int64("user", identity.UserID),
		zap.String("method", req.Method),
		zap.Float64("amount", req.Amount))

	return SubmitOutcome{
		Message: result.Message,
		Account: snapshot,
		Session: sess.View(snapshot),
	}, nil
}
