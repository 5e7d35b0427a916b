package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hubcoin/miniapp/internal/apperrors"
	"github.com/hubcoin/miniapp/internal/logger"
	"github.com/hubcoin/miniapp/internal/models"
)

// ClientInterface is the contract of the remote account service, which owns
// the user's true balance, gems and withdrawal ledger.
type ClientInterface interface {
	FetchAccount(ctx context.Context, identity models.Identity) (*models.Account, error)
	SubmitWithdrawal(ctx context.Context, req models.WithdrawalRequest, identity models.Identity) (*models.SubmitResult, error)
	ClaimGems(ctx context.Context, identity models.Identity) (*models.ClaimResult, error)
	Leaderboard(ctx context.Context) (*models.Leaderboard, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) FetchAccount(ctx context.Context, identity models.Identity) (*models.Account, error) {
	body := map[string]any{"username": identity.Username}

	var account models.Account
	if err := c.post(ctx, "/api/user", body, identity, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) SubmitWithdrawal(ctx context.Context, req models.WithdrawalRequest, identity models.Identity) (*models.SubmitResult, error) {
	body := map[string]any{
		"amount":  req.Amount,
		"method":  req.Method,
		"account": req.Account,
	}

	var result models.SubmitResult
	if err := c.post(ctx, "/api/withdrawal", body, identity, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ClaimGems(ctx context.Context, identity models.Identity) (*models.ClaimResult, error) {
	var result models.ClaimResult
	if err := c.post(ctx, "/api/claim-gems", map[string]any{}, identity, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Leaderboard(ctx context.Context) (*models.Leaderboard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/leaderboard", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNetworkFailure, err)
	}
	defer c.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, c.rejection(resp)
	}

	var board models.Leaderboard
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, err
	}
	return &board, nil
}

// post sends a JSON body with the identity blob spliced in, the way the
// original web-view client did on every call. The identity is forwarded
// untouched; only the backend interprets it.
func (c *Client) post(ctx context.Context, endpoint string, body map[string]any, identity models.Identity, out any) error {
	body["user_id"] = identity.UserID
	body["user_data"] = identity.InitData

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Warn("account service call failed",
			zap.String("endpoint", endpoint), zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrNetworkFailure, err)
	}
	defer c.closeBody(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.rejection(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// rejection turns a non-2xx response into a RemoteRejection carrying the
// backend's error message verbatim. Status codes carry no meaning here
// beyond the request having failed.
func (c *Client) rejection(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return &apperrors.RemoteRejection{Message: payload.Error}
	}
	return &apperrors.RemoteRejection{Message: fmt.Sprintf("request failed with status %d", resp.StatusCode)}
}

func (c *Client) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logger.Log.Error("failed to close response body", zap.Error(err))
	}
}
