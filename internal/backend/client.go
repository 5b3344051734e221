// Package backend is the HTTP client for the document-analysis backend. All
// intelligence (PDF parsing, summarization, retrieval-augmented drafting)
// lives behind these endpoints; this package only shapes requests and maps
// responses.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxBodyBytes = 8 << 20

// TokenSource supplies the bearer token for authorized requests. An empty
// string means no Authorization header is sent.
type TokenSource func() string

// Options configures a Client.
type Options struct {
	// Timeout bounds each request. Zero disables the client timeout and the
	// request is limited only by its context.
	Timeout time.Duration

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client

	// Tokens supplies the bearer token for authorized endpoints.
	Tokens TokenSource

	// OnUnauthorized runs whenever an authorized request is rejected with
	// 401, so the session layer can force a logout transition.
	OnUnauthorized func()

	Logger *slog.Logger
}

// Client talks to the analysis backend.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	logger         *slog.Logger
}

// New creates a backend client for the given base URL.
func New(baseURL string, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           httpClient,
		tokens:         opts.Tokens,
		onUnauthorized: opts.OnUnauthorized,
		logger:         logger,
	}
}

// Login exchanges credentials for a token. A 2xx response without a token is
// a failure and carries the backend's message.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var parsed struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &parsed, false)
	if err != nil {
		return "", err
	}
	if parsed.Token == "" {
		message := parsed.Message
		if message == "" {
			message = "login failed"
		}
		return "", &APIError{Status: http.StatusOK, Message: message}
	}
	return parsed.Token, nil
}

// Register creates an account. Mirrors Login: a token on success, a message
// otherwise.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var parsed struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", body, &parsed, false)
	if err != nil {
		return "", err
	}
	if parsed.Token == "" {
		message := parsed.Message
		if message == "" {
			message = "registration failed"
		}
		return "", &APIError{Status: http.StatusOK, Message: message}
	}
	return parsed.Token, nil
}

// Logout invalidates the given token server-side. The token is explicit
// because callers discard their local copy before or regardless of this call.
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling logout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}
	return nil
}

// User fetches the authenticated user's profile.
func (c *Client) User(ctx context.Context) (UserProfile, error) {
	var parsed struct {
		User UserProfile `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/user", nil, &parsed, true); err != nil {
		return UserProfile{}, err
	}
	return parsed.User, nil
}

// Summarize uploads a PDF as multipart form data and returns its structured
// summary. A 2xx payload carrying an error field is surfaced as a failure.
func (c *Client) Summarize(ctx context.Context, filename string, file io.Reader) (*SummaryResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/summarize", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling summarize: %w", err)
	}
	defer resp.Body.Close()

	if unauthorized := c.checkUnauthorized(resp, true); unauthorized != nil {
		return nil, unauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.decodeError(resp)
	}

	var result SummaryResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding summary: %w", err)
	}
	if result.Error != "" {
		return nil, &APIError{Status: resp.StatusCode, Message: result.Error}
	}
	return &result, nil
}

// Chat sends one message within a session and returns the assistant reply.
func (c *Client) Chat(ctx context.Context, message, sessionID string) (string, error) {
	body := map[string]string{"message": message, "session_id": sessionID}
	var parsed struct {
		Response string `json:"response"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/chat", body, &parsed, true); err != nil {
		return "", err
	}
	return parsed.Response, nil
}

// ClearSession tears down server-side conversation state for a session id.
func (c *Client) ClearSession(ctx context.Context, sessionID string) error {
	body := map[string]string{"session_id": sessionID}
	return c.doJSON(ctx, http.MethodPost, "/api/clear-session", body, nil, true)
}

// Documents lists previously analyzed documents.
func (c *Client) Documents(ctx context.Context) ([]DocumentRef, error) {
	var refs []DocumentRef
	if err := c.doJSON(ctx, http.MethodGet, "/api/documents", nil, &refs, true); err != nil {
		return nil, err
	}
	return refs, nil
}

// Document fetches a stored document with its saved summary.
func (c *Client) Document(ctx context.Context, id string) (*StoredDocument, error) {
	var doc StoredDocument
	if err := c.doJSON(ctx, http.MethodGet, "/api/document/"+id, nil, &doc, true); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Health reports drafting-system readiness.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &status, false); err != nil {
		return nil, err
	}
	return &status, nil
}

// Initialize triggers drafting-system initialization. Idempotent unless
// force is set.
func (c *Client) Initialize(ctx context.Context, force bool) error {
	body := map[string]bool{"force": force}
	return c.doJSON(ctx, http.MethodPost, "/api/initialize", body, nil, false)
}

// ContractTypes fetches the drafting corpus catalog.
func (c *Client) ContractTypes(ctx context.Context) (*ContractCatalog, error) {
	var catalog ContractCatalog
	if err := c.doJSON(ctx, http.MethodGet, "/api/contracts", nil, &catalog, false); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Draft submits a free-text drafting query. A response with status "error"
// is surfaced as a failure carrying the embedded error text.
func (c *Client) Draft(ctx context.Context, query string) (*DraftResult, error) {
	body := map[string]string{"query": query}
	var result DraftResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/draft", body, &result, true); err != nil {
		return nil, err
	}
	if result.Status == "error" {
		message := result.Error
		if message == "" {
			message = "error generating legal clause"
		}
		return nil, &APIError{Status: http.StatusOK, Message: message}
	}
	return &result, nil
}

// DownloadPDF renders a summary or draft payload to PDF and returns the bytes.
func (c *Client) DownloadPDF(ctx context.Context, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/download-pdf", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling download-pdf: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.decodeError(resp)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token := c.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// doJSON issues one JSON request and decodes the response into out (when
// non-nil). authorized requests carry the bearer token and report 401s to
// the OnUnauthorized hook.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, authorized bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		c.authorize(req)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
		"request_id", req.Header.Get("X-Request-ID"),
	)

	if unauthorized := c.checkUnauthorized(resp, authorized); unauthorized != nil {
		return unauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) checkUnauthorized(resp *http.Response, authorized bool) error {
	if resp.StatusCode != http.StatusUnauthorized || !authorized {
		return nil
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return c.decodeError(resp)
}

// decodeError extracts a server-provided message from an error body. The
// backend uses both "error" and "message" fields depending on the endpoint;
// an unparsable body falls back to a generic status error.
func (c *Client) decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &parsed); err == nil {
		if parsed.Error != "" {
			return &APIError{Status: resp.StatusCode, Message: parsed.Error}
		}
		if parsed.Message != "" {
			return &APIError{Status: resp.StatusCode, Message: parsed.Message}
		}
	}
	return &APIError{Status: resp.StatusCode}
}
