package opentdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

const (
	kDefaultBaseURL = "https://opentdb.com"

	kHeaderAccept    = "Accept"
	kHeaderUserAgent = "User-Agent"

	kContentTypeApplicationJSON = "application/json"

	kMaxResponseBodyBytes = 4 << 20
	kMaxErrorBodyBytes    = 8 << 10
)

// Client is the public client contract.
type Client interface {
	// FetchQuestions retrieves trivia questions as plain UTF-8 text. It
	// always requests Base64 on the wire and reverses it before returning,
	// so special characters survive regardless of locale.
	FetchQuestions(ctx context.Context, req QuestionRequest) ([]Question, error)

	// FetchQuestionsEncoded retrieves questions with their text still in
	// req.Encoding (HTML entities by default).
	FetchQuestionsEncoded(ctx context.Context, req QuestionRequest) ([]Question, error)

	// CategoryCount retrieves the question inventory of one category
	// (wire ID 9-32).
	CategoryCount(ctx context.Context, categoryID int) (CategoryCount, error)

	// GlobalCount retrieves the site-wide question inventory.
	GlobalCount(ctx context.Context) (GlobalCount, error)

	// RequestToken acquires a session token if none is held yet. Idempotent.
	RequestToken(ctx context.Context) error

	// ResetToken replaces the held session token. It fails with
	// ErrTokenNeverSet if RequestToken never succeeded on this client.
	ResetToken(ctx context.Context) error

	// Token returns the held session token value, if any.
	Token() (string, bool)
}

// QuestionRequest describes one questions query.
type QuestionRequest struct {
	// Amount is the number of questions to retrieve (1-50).
	Amount int

	Category   Category
	Difficulty Difficulty
	Type       QuestionType

	// Encoding is honored by FetchQuestionsEncoded only; FetchQuestions
	// always uses Base64 on the wire.
	Encoding Encoding
}

// HttpClient is an Open Trivia DB client backed by net/http.
//
// A client holds at most one session token. The token narrows every
// questions query so the server never hands out the same question twice
// within the token's lifetime; it is optional and purely additive. The
// client performs no retries and imposes no timeout of its own: callers own
// cancellation through ctx, and the remote enforces a 5-second-per-IP rate
// limit that this client documents but does not replicate.
type HttpClient struct {
	BaseURL   string
	UserAgent string

	Http *http.Client

	// mu serializes token transitions; two concurrent resets must not
	// lose an update.
	mu    sync.Mutex
	token string
	held  bool
}

type HttpClientOptions struct {
	BaseURL   string
	UserAgent string
	Http      *http.Client
}

func NewHttpClient(opts HttpClientOptions) *HttpClient {
	c := &HttpClient{
		BaseURL:   opts.BaseURL,
		UserAgent: opts.UserAgent,
		Http:      opts.Http,
	}
	if c.Http == nil {
		c.Http = http.DefaultClient
	}
	return c
}

func (c *HttpClient) FetchQuestions(ctx context.Context, req QuestionRequest) ([]Question, error) {
	questions, err := c.fetchQuestions(ctx, req, EncodingBase64)
	if err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		decoded, err := DecodeQuestionText(q)
		if err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, nil
}

func (c *HttpClient) FetchQuestionsEncoded(ctx context.Context, req QuestionRequest) ([]Question, error) {
	return c.fetchQuestions(ctx, req, req.Encoding)
}

func (c *HttpClient) fetchQuestions(ctx context.Context, req QuestionRequest, encoding Encoding) ([]Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	token, _ := c.Token()
	endpoint, err := questionsURL(c.baseURL(), req, encoding, token)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return decodeQuestions(body)
}

func (c *HttpClient) CategoryCount(ctx context.Context, categoryID int) (CategoryCount, error) {
	if err := ctx.Err(); err != nil {
		return CategoryCount{}, err
	}

	endpoint, err := categoryCountURL(c.baseURL(), categoryID)
	if err != nil {
		return CategoryCount{}, err
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return CategoryCount{}, err
	}
	return decodeCategoryCount(body)
}

func (c *HttpClient) GlobalCount(ctx context.Context) (GlobalCount, error) {
	if err := ctx.Err(); err != nil {
		return GlobalCount{}, err
	}

	body, err := c.get(ctx, globalCountURL(c.baseURL()))
	if err != nil {
		return GlobalCount{}, err
	}
	return decodeGlobalCount(body)
}

func (c *HttpClient) RequestToken(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.held {
		return nil
	}

	token, err := c.requestFreshToken(ctx)
	if err != nil {
		return err
	}
	c.token = token
	c.held = true
	return nil
}

func (c *HttpClient) ResetToken(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.held {
		return ErrTokenNeverSet
	}

	token, err := c.resetHeldToken(ctx, c.token)
	if errors.Is(err, ErrTokenNotFound) {
		// The held token already expired server-side; a fresh token gives
		// the same outcome as a reset.
		token, err = c.requestFreshToken(ctx)
	}
	if err != nil {
		return err
	}
	c.token = token
	return nil
}

func (c *HttpClient) Token() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token, c.held
}

// requestFreshToken and resetHeldToken are the two token acquisition round
// trips. Both are called with c.mu held.
func (c *HttpClient) requestFreshToken(ctx context.Context) (string, error) {
	body, err := c.get(ctx, tokenRequestURL(c.baseURL()))
	if err != nil {
		return "", err
	}
	return decodeToken(body)
}

func (c *HttpClient) resetHeldToken(ctx context.Context, token string) (string, error) {
	body, err := c.get(ctx, tokenResetURL(c.baseURL(), token))
	if err != nil {
		return "", err
	}
	return decodeToken(body)
}

// get performs one GET round trip and returns the raw body. A non-200 status
// is a transport-level failure carrying a bounded body snippet.
func (c *HttpClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(kHeaderAccept, kContentTypeApplicationJSON)
	if c.UserAgent != "" {
		req.Header.Set(kHeaderUserAgent, c.UserAgent)
	}

	resp, err := c.Http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opentdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, kMaxErrorBodyBytes))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("opentdb: status %d: %s", resp.StatusCode, msg)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, kMaxResponseBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read opentdb response: %w", err)
	}
	return body, nil
}

func (c *HttpClient) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return kDefaultBaseURL
	}
	return base
}
