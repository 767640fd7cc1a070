// Package judgeme posts finished reviews to the Judge.me reviews API.
// Failed submissions are recorded in the persistent error log instead of
// being retried.
package judgeme

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lucazevedos/bot-review-shopify/internal/state"
)

var ErrSubmitFailed = errors.New("review submission failed")

// Review is the finished review posted for a product: the generated draft
// plus the synthetic reviewer identity. Immutable once built.
type Review struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Config holds the Judge.me credentials and the error log location.
type Config struct {
	APIToken   string
	ShopDomain string

	// BaseURL defaults to the public API; tests point it at a local server.
	BaseURL string

	// ErrorLogPath is where failed submissions are recorded. Empty disables
	// the log.
	ErrorLogPath string
}

// Client submits reviews to a single store's Judge.me account.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

type submitPayload struct {
	URL    string `json:"url"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Rating int    `json:"rating"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// NewClient creates a Judge.me client. A nil httpClient falls back to a
// default with a 30 second timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://judge.me"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

// Submit posts the review for productID. On transport failure or remote
// rejection it appends an entry to the error log and returns the wrapped
// error; the caller logs it and moves on to the next product.
func (c *Client) Submit(ctx context.Context, productID int64, review Review) error {
	payload := submitPayload{
		URL:    c.cfg.ShopDomain,
		ID:     strconv.FormatInt(productID, 10),
		Name:   review.Name,
		Email:  review.Email,
		Rating: review.Rating,
		Title:  review.Title,
		Body:   review.Content,
	}

	if err := c.post(ctx, payload); err != nil {
		c.logFailure(productID, review, err)
		return fmt.Errorf("submit review for product %d: %w", productID, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, payload submitPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode payload: %w", ErrSubmitFailed, err)
	}

	query := url.Values{}
	query.Set("api_token", c.cfg.APIToken)
	query.Set("shop_domain", c.cfg.ShopDomain)
	endpoint := c.cfg.BaseURL + "/api/v1/reviews?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d: %s", ErrSubmitFailed, resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}

func (c *Client) logFailure(productID int64, review Review, cause error) {
	if c.cfg.ErrorLogPath == "" {
		return
	}
	entry := state.ErrorEntry{
		ProductID: productID,
		Review:    review,
		Error:     cause.Error(),
	}
	if err := state.AppendError(c.cfg.ErrorLogPath, entry); err != nil {
		log.Printf("could not record submission failure for product %d: %v", productID, err)
	}
}
