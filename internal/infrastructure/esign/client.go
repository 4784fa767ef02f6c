package esign

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/usecase/interfaces"
	"kensetsu_match/pkg/logger"

	"github.com/google/uuid"
)

var ErrMissingESignAPIKey = errors.New("missing ESIGN_API_KEY")
var ErrESignProviderNotConfigured = errors.New("e-sign provider not configured")

const defaultRequestTimeout = 15 * time.Second

// Client talks to the external e-signature provider over HTTP.
//
// Env vars:
//   - ESIGN_BASE_URL (default: https://api.cloudsign.jp)
//   - ESIGN_API_KEY
//   - ESIGN_MOCK (any of 1/true/yes/on/mock enables mock mode)
//
// In mock mode no HTTP calls are made: CreateRequest fabricates an external
// id and GetStatus reports every transaction as signed, which is enough for
// local end-to-end runs without provider credentials.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IESignProvider = (*Client)(nil)

func NewClient() (*Client, error) {
	if isESignMockEnabled() {
		logger.L().Infow("esign mock mode enabled")
		return &Client{mockMode: true}, nil
	}

	apiKey := os.Getenv("ESIGN_API_KEY")
	if apiKey == "" {
		logger.L().Errorw("missing ESIGN_API_KEY")
		return nil, ErrMissingESignAPIKey
	}

	baseURL := os.Getenv("ESIGN_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.cloudsign.jp"
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

type createRequestBody struct {
	DocumentRef  string   `json:"document_ref"`
	DocumentType string   `json:"document_type"`
	Title        string   `json:"title"`
	SignerEmails []string `json:"signer_emails"`
}

type createResponseBody struct {
	ID        string `json:"id"`
	ExpiresAt string `json:"expires_at"`
}

type statusSigner struct {
	Email     string `json:"email"`
	HasSigned bool   `json:"has_signed"`
	SignedAt  string `json:"signed_at"`
}

type statusResponseBody struct {
	ID          string         `json:"id"`
	Status      string         `json:"status"`
	Signers     []statusSigner `json:"signers"`
	CompletedAt string         `json:"completed_at"`
}

func (c *Client) CreateRequest(ctx context.Context, req interfaces.ESignCreateRequest) (string, *time.Time, error) {
	if c != nil && c.mockMode {
		id := "mock-" + uuid.NewString()
		expires := time.Now().UTC().Add(14 * 24 * time.Hour)
		logger.L().Infow("esign mock create", "external_request_id", id, "document_type", req.DocumentType)
		return id, &expires, nil
	}

	if c == nil || c.httpClient == nil {
		return "", nil, ErrESignProviderNotConfigured
	}

	body := createRequestBody{
		DocumentRef:  req.DocumentRef,
		DocumentType: string(req.DocumentType),
		Title:        req.Title,
		SignerEmails: req.SignerEmails,
	}
	var out createResponseBody
	if err := c.doJSON(ctx, http.MethodPost, "/v1/sign-requests", body, &out); err != nil {
		logger.L().Errorw("esign create failed", "error", err)
		return "", nil, err
	}

	var expiresAt *time.Time
	if out.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339Nano, out.ExpiresAt)
		if err == nil {
			expiresAt = &t
		}
	}
	logger.L().Infow("esign create success", "external_request_id", out.ID)
	return out.ID, expiresAt, nil
}

func (c *Client) GetStatus(ctx context.Context, externalRequestID string) (interfaces.ESignRequestState, error) {
	if c != nil && c.mockMode {
		now := time.Now().UTC()
		return interfaces.ESignRequestState{
			Status:      entities.SignatureStatusSigned,
			CompletedAt: &now,
		}, nil
	}

	if c == nil || c.httpClient == nil {
		return interfaces.ESignRequestState{}, ErrESignProviderNotConfigured
	}

	var out statusResponseBody
	path := "/v1/sign-requests/" + externalRequestID
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		logger.L().Errorw("esign status failed", "external_request_id", externalRequestID, "error", err)
		return interfaces.ESignRequestState{}, err
	}

	state := interfaces.ESignRequestState{
		Status: mapProviderStatus(out.Status),
	}
	if out.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, out.CompletedAt); err == nil {
			state.CompletedAt = &t
		}
	}
	for _, s := range out.Signers {
		signer := entities.Signer{Email: s.Email, HasSigned: s.HasSigned}
		if s.SignedAt != "" {
			if t, err := time.Parse(time.RFC3339Nano, s.SignedAt); err == nil {
				signer.SignedAt = &t
			}
		}
		state.Signers = append(state.Signers, signer)
	}
	return state, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("esign provider returned %d: %s", resp.StatusCode, string(b))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func mapProviderStatus(s string) entities.SignatureRequestStatus {
	switch strings.ToLower(s) {
	case "signed", "completed":
		return entities.SignatureStatusSigned
	case "declined", "rejected":
		return entities.SignatureStatusDeclined
	case "expired":
		return entities.SignatureStatusExpired
	case "created":
		return entities.SignatureStatusCreated
	default:
		return entities.SignatureStatusSent
	}
}

func isESignMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ESIGN_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
