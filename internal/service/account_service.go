package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/hubcoin/miniapp/internal/apperrors"
	"github.com/hubcoin/miniapp/internal/models"
	"github.com/hubcoin/miniapp/internal/remote"
)

// AccountService keeps the last authoritative account snapshot per user.
// Snapshots only ever come from backend responses; nothing here does
// balance or gem arithmetic of its own.
type AccountService interface {
	Bootstrap(ctx context.Context, identity models.Identity) (*models.Account, error)
	Snapshot(userID int64) (models.Account, error)
	Apply(userID int64, account models.Account)
	ClaimGems(ctx context.Context, identity models.Identity) (string, *models.Account, error)
	Leaderboard(ctx context.Context) (*models.Leaderboard, error)
	ReferralLink(userID int64) string
}

type accountService struct {
	client      remote.ClientInterface
	botUsername string

	mu       sync.RWMutex
	accounts map[int64]models.Account
}

func NewAccountService(client remote.ClientInterface, botUsername string) AccountService {
	return &accountService{
		client:      client,
		botUsername: botUsername,
		accounts:    make(map[int64]models.Account),
	}
}

// Bootstrap fetches the account once at session start. Without it there is
// no account data and no withdrawal flow.
func (s *accountService) Bootstrap(ctx context.Context, identity models.Identity) (*models.Account, error) {
	account, err := s.client.FetchAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	s.Apply(identity.UserID, *account)
	return account, nil
}

func (s *accountService) Snapshot(userID int64) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[userID]
	if !ok {
		return models.Account{}, apperrors.ErrAccountNotLoaded
	}
	return account, nil
}

func (s *accountService) Apply(userID int64, account models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[userID] = account
}

func (s *accountService) ClaimGems(ctx context.Context, identity models.Identity) (string, *models.Account, error) {
	result, err := s.client.ClaimGems(ctx, identity)
	if err != nil {
		return "", nil, err
	}

	if !result.Success {
		return "", nil, &apperrors.RemoteRejection{Message: result.Message}
	}

	s.mu.Lock()
	account, ok := s.accounts[identity.UserID]
	if ok && result.Data != nil {
		account.Gems = result.Data.Gems
		account.UnclaimedGems = result.Data.UnclaimedGems
		s.accounts[identity.UserID] = account
	}
	s.mu.Unlock()

	if !ok {
		return result.Message, nil, nil
	}
	return result.Message, &account, nil
}

func (s *accountService) Leaderboard(ctx context.Context) (*models.Leaderboard, error) {
	return s.client.Leaderboard(ctx)
}

// ReferralLink builds the user's bot invite link.
func (s *accountService) ReferralLink(userID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%d", s.botUsername, userID)
}
