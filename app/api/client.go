package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// Client is a typed HTTP client for the Mergington school API. All admin
// sections read and write through it; the client holds no state between
// calls.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Error is a non-2xx response from the school API, carrying the
// server-provided detail message.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// NetworkError is a transport or decode failure: the school API could not
// be reached or returned an unreadable body.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

var validate = validator.New()

// message is the confirmation envelope the school API returns on writes.
type message struct {
	Message string `json:"message"`
}

// do issues a request and decodes the JSON response into out (when out is
// non-nil). Non-2xx statuses become *Error with the server detail; any
// transport or decode failure becomes *NetworkError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{Op: method + " " + path, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := struct {
			Detail string `json:"detail"`
		}{}
		if err := json.Unmarshal(data, &detail); err != nil || detail.Detail == "" {
			detail.Detail = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Detail: detail.Detail}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &NetworkError{Op: method + " " + path, Err: err}
		}
	}
	return nil
}

// write validates the payload, issues the request and returns the server's
// confirmation message.
func (c *Client) write(ctx context.Context, method, path string, payload interface{}) (string, error) {
	if payload != nil {
		if err := validate.Struct(payload); err != nil {
			return "", err
		}
	}
	var msg message
	if err := c.do(ctx, method, path, payload, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

// UserMessage maps a client error to the banner text shown to the admin.
// Server rejections surface the backend's detail verbatim.
func UserMessage(err error) string {
	switch e := err.(type) {
	case *Error:
		return e.Detail
	case *NetworkError:
		return "Cannot reach the school API"
	default:
		return err.Error()
	}
}
