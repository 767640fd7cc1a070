// Package shopify fetches product data from the Shopify Admin REST API.
// It resolves a collection to product IDs and loads per-product title and
// description, with the description stripped of HTML and truncated so it
// fits in a generation prompt.
package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"
)

const apiVersion = "2023-01"

// descriptionLimit caps how much of the product description is kept for the
// prompt. Longer descriptions are cut and marked with an ellipsis.
const descriptionLimit = 800

var ErrRequestFailed = errors.New("shopify request failed")

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// Product holds the fields of a product the review generator needs.
type Product struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Client talks to the Admin API of a single store.
type Client struct {
	shopDomain  string
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a client for the given store. A nil httpClient falls
// back to a default with a 30 second timeout.
func NewClient(shopDomain, accessToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		shopDomain:  shopDomain,
		accessToken: accessToken,
		baseURL:     "https://" + shopDomain,
		httpClient:  httpClient,
	}
}

// WithBaseURL overrides the API base URL. Used by tests to point the client
// at a local server.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

type productIDList struct {
	Products []struct {
		ID int64 `json:"id"`
	} `json:"products"`
}

type productEnvelope struct {
	Product struct {
		Title    string `json:"title"`
		BodyHTML string `json:"body_html"`
	} `json:"product"`
}

// ListProductIDs returns the IDs of every product in the collection.
// On failure it returns an empty slice along with the error; the caller
// treats that as "nothing to process" rather than aborting.
func (c *Client) ListProductIDs(ctx context.Context, collectionID string) ([]int64, error) {
	url := fmt.Sprintf("%s/admin/api/%s/collections/%s/products.json?fields=id",
		c.baseURL, apiVersion, collectionID)

	var list productIDList
	if err := c.getJSON(ctx, url, &list); err != nil {
		return nil, fmt.Errorf("list products in collection %s: %w", collectionID, err)
	}

	ids := make([]int64, 0, len(list.Products))
	for _, p := range list.Products {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// FetchProduct loads one product's title and cleaned description.
// A nil product signals the caller to skip this ID.
func (c *Client) FetchProduct(ctx context.Context, id int64) (*Product, error) {
	url := fmt.Sprintf("%s/admin/api/%s/products/%d.json", c.baseURL, apiVersion, id)

	var env productEnvelope
	if err := c.getJSON(ctx, url, &env); err != nil {
		return nil, fmt.Errorf("fetch product %d: %w", id, err)
	}

	return &Product{
		ID:          id,
		Title:       env.Product.Title,
		Description: CleanDescription(env.Product.BodyHTML),
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrRequestFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrRequestFailed, err)
	}
	return nil
}

// CleanDescription strips HTML tags from a product description and
// truncates the result to descriptionLimit characters, appending "..."
// when anything was cut.
func CleanDescription(bodyHTML string) string {
	text := htmlTagPattern.ReplaceAllString(bodyHTML, "")
	runes := []rune(text)
	if len(runes) > descriptionLimit {
		return string(runes[:descriptionLimit]) + "..."
	}
	return text
}
