package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"reloved-market-client/internal/config"
	"reloved-market-client/internal/domain/shared"
)

// Client issues authenticated and anonymous calls against the marketplace
// REST API. It implements outbound.Gateway.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

type ClientParams struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewClient creates a new REST gateway client
func NewClient(params ClientParams) *Client {
	return &Client{
		baseURL: strings.TrimRight(params.Config.API.BaseURL, "/"),
		http:    &http.Client{Timeout: params.Config.API.Timeout},
		logger:  params.Logger.With().Str("component", "rest_gateway").Logger(),
	}
}

// envelope is the standard { status, data } response wrapper
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// pageData is the nested pagination block list endpoints return
type pageData struct {
	Data        []json.RawMessage `json:"data"`
	CurrentPage int               `json:"current_page"`
	LastPage    int               `json:"last_page"`
}

// getJSON issues a GET and decodes the body into out
func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

// postMultipart issues a POST with a multipart form body and decodes the
// response into out. Fields keep their append order so indexed keys like
// properties[0] stay stable.
func (c *Client) postMultipart(ctx context.Context, path, token string, fields []formField, files []formFile, out interface{}) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", field.name, err)
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile(file.field, file.name)
		if err != nil {
			return fmt.Errorf("failed to create form file %s: %w", file.field, err)
		}
		if _, err := part.Write(file.data); err != nil {
			return fmt.Errorf("failed to write form file %s: %w", file.field, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

// postEmpty issues a POST with no body
func (c *Client) postEmpty(ctx context.Context, path, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", req.URL.Path, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return shared.ErrItemNotFound
	default:
		c.logger.Warn().
			Str("path", req.URL.Path).
			Int("status_code", resp.StatusCode).
			Msg("Backend returned non-OK status")
		return fmt.Errorf("%w: %d from %s", shared.ErrUnexpectedStatus, resp.StatusCode, req.URL.Path)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrMalformedPayload, err)
	}

	return nil
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	field string
	name  string
	data  []byte
}
