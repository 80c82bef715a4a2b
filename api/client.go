// Package api wraps the remote BookReview HTTP service. Every method builds
// one JSON request, attaches the bearer token when one is supplied, and
// normalizes non-2xx responses into *Error values carrying the server's
// message. There are no retries: every call is fire-once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL points at the hosted service; override with NewClient.
const DefaultBaseURL = "https://book143.onrender.com/api"

// Error is a non-2xx response from the service. Message is the server's
// `error` field when the body parsed, or a per-operation fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to one base endpoint. The zero value is not usable; use
// NewClient.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// NewClient returns a client for the service at baseURL. An empty baseURL
// selects DefaultBaseURL.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		log:     log,
	}
}

// do performs one request. token == "" means unauthenticated. fallback is
// the user-facing message when the error body has no parseable `error`
// field.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any, fallback string) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallback
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Str("msg", msg).Msg("api error")
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Login exchanges email + password for a user and bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &creds, "Login failed"); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Signup registers a new account and returns its first session credentials.
func (c *Client) Signup(ctx context.Context, username, email, password string) (*Credentials, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", body, &creds, "Signup failed"); err != nil {
		return nil, err
	}
	return &creds, nil
}

// ListBooks fetches one server-paginated slice of the catalog.
func (c *Client) ListBooks(ctx context.Context, page, limit int) (*BookPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	var bp BookPage
	if err := c.do(ctx, http.MethodGet, "/books?"+q.Encode(), "", nil, &bp, "Failed to fetch books"); err != nil {
		return nil, err
	}
	return &bp, nil
}

// GetBook fetches a single book with its embedded reviews.
func (c *Client) GetBook(ctx context.Context, id string) (*Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(id), "", nil, &b, "Failed to fetch book"); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBook adds a book owned by the token's user.
func (c *Client) CreateBook(ctx context.Context, token string, draft BookDraft) (*Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodPost, "/books", token, draft, &b, "Failed to create book"); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBook replaces the mutable fields of a book. Ownership is enforced
// server-side.
func (c *Client) UpdateBook(ctx context.Context, token, id string, draft BookDraft) (*Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodPut, "/books/"+url.PathEscape(id), token, draft, &b, "Failed to update book"); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBook removes a book and all of its reviews.
func (c *Client) DeleteBook(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(id), token, nil, nil, "Failed to delete book")
}

// CreateReview submits a new review. One review per user per book,
// enforced server-side.
func (c *Client) CreateReview(ctx context.Context, token string, draft ReviewDraft) (*Review, error) {
	var r Review
	if err := c.do(ctx, http.MethodPost, "/reviews", token, draft, &r, "Failed to create review"); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReview rewrites the rating and comment of an existing review.
func (c *Client) UpdateReview(ctx context.Context, token, id string, rating int, comment string) (*Review, error) {
	body := map[string]any{"rating": rating, "comment": comment}
	var r Review
	if err := c.do(ctx, http.MethodPut, "/reviews/"+url.PathEscape(id), token, body, &r, "Failed to update review"); err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteReview removes a review owned by the token's user.
func (c *Client) DeleteReview(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id), token, nil, nil, "Failed to delete review")
}

// GetProfile fetches the authenticated user's aggregated activity.
func (c *Client) GetProfile(ctx context.Context, token string) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/profile", token, nil, &p, "Failed to fetch profile"); err != nil {
		return nil, err
	}
	return &p, nil
}
