// Package client is a Go consumer for the story generator API.
// It speaks the bare-body wire contract and turns {"error": ...} replies
// back into project errors by status code
package client

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

	perr "storyweaver/internal/platform/errors"
)

// Story is the wire shape of a saved story
type Story struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Prompt    string `json:"prompt"`
	Genre     string `json:"genre"`
	CreatedAt string `json:"createdAt"`
}

// CreateStoryInput is the payload for saving a story
type CreateStoryInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Prompt  string `json:"prompt"`
	Genre   string `json:"genre,omitempty"`
}

// GenerateInput is the payload for story generation
type GenerateInput struct {
	Prompt string `json:"prompt"`
	Genre  string `json:"genre,omitempty"`
	Length string `json:"length,omitempty"`
}

// Client talks to a running API instance
type Client struct {
	base string
	hc   *http.Client
}

// Option mutates a Client during construction
type Option func(*Client)

// WithHTTPClient swaps the underlying http client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// New builds a client for the given base URL, e.g. http://localhost:5000
func New(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 150 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ListStories fetches every saved story, newest first
func (c *Client) ListStories(ctx context.Context) ([]Story, error) {
	var out []Story
	if err := c.do(ctx, http.MethodGet, "/api/stories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStory fetches one story by id
func (c *Client) GetStory(ctx context.Context, id string) (Story, error) {
	var out Story
	err := c.do(ctx, http.MethodGet, "/api/stories/"+url.PathEscape(id), nil, &out)
	return out, err
}

// CreateStory persists a story and returns the stored record
func (c *Client) CreateStory(ctx context.Context, in CreateStoryInput) (Story, error) {
	var out Story
	err := c.do(ctx, http.MethodPost, "/api/stories", in, &out)
	return out, err
}

// DeleteStory removes a story by id and returns the confirmation message
func (c *Client) DeleteStory(ctx context.Context, id string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodDelete, "/api/stories/"+url.PathEscape(id), nil, &out)
	return out.Message, err
}

// Generate asks the API for a story and returns the generated text
func (c *Client) Generate(ctx context.Context, in GenerateInput) (string, error) {
	var out struct {
		Story string `json:"story"`
	}
	err := c.do(ctx, http.MethodPost, "/api/generate", in, &out)
	return out.Story, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return perr.JSONErrf("encode request: %v", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "build request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return perr.Unavailablef("%s %s: %v", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return perr.Unavailablef("read response: %v", err)
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return perr.JSONErrf("decode response: %v", err)
	}
	return nil
}

// decodeError maps a failed reply back onto the project error taxonomy
func decodeError(status int, raw []byte) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)
	msg := body.Error
	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", status)
	}

	code := perr.ErrorCodeUnknown
	switch status {
	case http.StatusBadRequest:
		code = perr.ErrorCodeValidation
	case http.StatusUnauthorized:
		code = perr.ErrorCodeProviderAuth
	case http.StatusNotFound:
		code = perr.ErrorCodeNotFound
	case http.StatusTooManyRequests:
		code = perr.ErrorCodeProviderRateLimited
	case http.StatusServiceUnavailable:
		code = perr.ErrorCodeUnavailable
	}
	return perr.New(code, msg)
}
