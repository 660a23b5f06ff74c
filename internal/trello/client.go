package trello

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/idea-submitter/internal/model"
)

// API constants
const (
	DefaultBaseURL = "https://api.trello.com/1"
	CardsPath      = "/cards"
	DefaultTimeout = 10 * time.Second
)

// Query parameter names for card creation
const (
	ParamListID = "idList"
	ParamKey    = "key"
	ParamToken  = "token"
	ParamName   = "name"
)

// Client creates cards through the Trello REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL points the client at a different API root
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout bounds each request; non-positive values keep the default
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new Trello client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateCard posts the idea as a new card on the credentials' list.
//
// The returned result is non-nil whenever a response was received. A
// *DecodeError or *RemoteError accompanies a result that is not a success;
// a *TransportError comes with a nil result.
func (c *Client) CreateCard(ctx context.Context, creds model.Credentials, idea model.IdeaSubmission) (*model.CardCreationResult, error) {
	req, err := c.newCardRequest(ctx, creds, idea)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.logger.Debug("Sending card request",
		zap.String("listID", creds.ListID),
		zap.String("apiKey", model.Mask(creds.APIKey)),
		zap.Int("contentLength", len(idea.Content)))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug("Card request finished",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	return interpretResponse(resp.StatusCode, body)
}

// newCardRequest builds the POST request; parameters travel in the query string and the body is empty
func (c *Client) newCardRequest(ctx context.Context, creds model.Credentials, idea model.IdeaSubmission) (*http.Request, error) {
	query := url.Values{}
	query.Set(ParamListID, creds.ListID)
	query.Set(ParamKey, creds.APIKey)
	query.Set(ParamToken, creds.Token)
	query.Set(ParamName, idea.Content)

	endpoint := c.baseURL + CardsPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create post request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// interpretResponse classifies a received response
func interpretResponse(statusCode int, body []byte) (*model.CardCreationResult, error) {
	result := &model.CardCreationResult{
		StatusCode: statusCode,
		RawBody:    string(body),
	}

	if statusCode != http.StatusOK {
		result.Outcome = model.OutcomeRemoteError
		return result, &RemoteError{StatusCode: statusCode, Body: result.RawBody}
	}

	payload, err := decodePayload(body)
	if err != nil {
		result.Outcome = model.OutcomeDecodeFailed
		return result, &DecodeError{Body: result.RawBody, Err: err}
	}

	result.Success = true
	result.Outcome = model.OutcomeCreated
	result.Payload = payload

	// Payload is usually a card object; anything else leaves Card empty
	var card model.Card
	if json.Unmarshal(body, &card) == nil {
		result.Card = card
	}

	return result, nil
}

// decodePayload parses a single JSON value, keeping numbers as json.Number
func decodePayload(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return payload, nil
}
