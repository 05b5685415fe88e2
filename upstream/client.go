// Package upstream translates the stores' logical operations into HTTP
// calls against the school REST backend.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ramp07413/tuition-admin/core"
)

// Error is a non-2xx upstream response. Message carries the backend's
// "message" body field when present, so stores can surface it to the user.
type Error struct {
	StatusCode int
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream: http %d: %s", e.StatusCode, e.Message)
}

func (e *Error) PublicMessage() string { return e.Message }

var _ core.Messager = (*Error)(nil)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(conf *core.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.Upstream.BaseURL, "/"),
		token:   conf.Upstream.Token,
		http:    &http.Client{Timeout: conf.Upstream.Timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encoding "+path)
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return errors.Wrap(err, path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, path)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading "+path)
	}

	if resp.StatusCode/100 != 2 {
		upErr := &Error{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(data, upErr); err != nil || upErr.Message == "" {
			upErr.Message = http.StatusText(resp.StatusCode)
		}
		return upErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "decoding "+path)
		}
	}
	return nil
}
