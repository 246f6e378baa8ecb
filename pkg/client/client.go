// Package client provides a Go client for the jellybean catalog API along
// with the page state container backing the catalog views.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned when a mutation targets a flavor the service
// does not know.
var ErrNotFound = errors.New("flavor not found")

// Flavor is the wire representation of a catalog entry
type Flavor struct {
	ID        uint64    `json:"id"`
	Flavor    string    `json:"flavor"`
	ImageKey  string    `json:"image_key"`
	DateAdded time.Time `json:"date_added"`
}

// ImageFile carries picture bytes for a create or update call
type ImageFile struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// Config holds client configuration. The read and mutate base URLs are
// separate so the listing endpoint can be served from a different host
// than the mutation endpoints.
type Config struct {
	// ReadURL is the full URL of the listing endpoint
	ReadURL string
	// MutateURL is the full URL of the flavor collection; item operations
	// append /{id}
	MutateURL string
	// HTTPClient overrides the default HTTP client
	HTTPClient *http.Client
}

// Client talks to the catalog service
type Client struct {
	readURL    string
	mutateURL  string
	httpClient *http.Client
}

// New creates a catalog client
func New(cfg Config) (*Client, error) {
	if cfg.ReadURL == "" {
		return nil, errors.New("read URL is required")
	}
	if cfg.MutateURL == "" {
		return nil, errors.New("mutate URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		readURL:    strings.TrimRight(cfg.ReadURL, "/"),
		mutateURL:  strings.TrimRight(cfg.MutateURL, "/"),
		httpClient: httpClient,
	}, nil
}

// createEnvelope mirrors the creation response body
type createEnvelope struct {
	Message   string `json:"message"`
	NewFlavor Flavor `json:"newFlavor"`
}

// updateEnvelope mirrors the update response body
type updateEnvelope struct {
	Message       string `json:"message"`
	UpdatedFlavor Flavor `json:"updatedFlavor"`
}

// List fetches every flavor in the catalog
func (c *Client) List(ctx context.Context) ([]Flavor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.readURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var flavors []Flavor
	if err := json.NewDecoder(resp.Body).Decode(&flavors); err != nil {
		return nil, fmt.Errorf("decoding flavor list: %w", err)
	}
	return flavors, nil
}

// Create adds a new flavor with an optional picture
func (c *Client) Create(ctx context.Context, name string, image *ImageFile) (*Flavor, error) {
	resp, err := c.sendMultipart(ctx, http.MethodPost, c.mutateURL, name, image)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, unexpectedStatus(resp)
	}

	var envelope createEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding create response: %w", err)
	}
	return &envelope.NewFlavor, nil
}

// Update renames a flavor. A nil image keeps the current picture; providing
// one replaces it.
func (c *Client) Update(ctx context.Context, id uint64, name string, image *ImageFile) (*Flavor, error) {
	resp, err := c.sendMultipart(ctx, http.MethodPut, c.itemURL(id), name, image)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var envelope updateEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding update response: %w", err)
	}
	return &envelope.UpdatedFlavor, nil
}

// Delete removes a flavor and its stored picture
func (c *Client) Delete(ctx context.Context, id uint64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.itemURL(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return unexpectedStatus(resp)
	}
}

func (c *Client) itemURL(id uint64) string {
	return c.mutateURL + "/" + strconv.FormatUint(id, 10)
}

// sendMultipart encodes the flavor name and optional picture as a multipart
// form and issues the request.
func (c *Client) sendMultipart(ctx context.Context, method, url, name string, image *ImageFile) (*http.Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("flavor", name); err != nil {
		return nil, err
	}

	if image != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="imageFile"; filename="%s"`, image.Name))
		if image.ContentType != "" {
			header.Set("Content-Type", image.ContentType)
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return nil, fmt.Errorf("encoding image: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.httpClient.Do(req)
}

func unexpectedStatus(resp *http.Response) error {
	return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, resp.Request.URL)
}
