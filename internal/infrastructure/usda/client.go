package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/pantrychef/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the USDA FoodData Central API. It is
// used only by the reference-data refresh, never on the validation path.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new USDA API client
func NewClient(apiKey, baseURL string) *Client {
	// USDA allows 1000 requests per hour
	// rate.Limit is requests per second, so 1000/3600 ≈ 0.278 requests/sec
	limiter := rate.NewLimiter(rate.Limit(0.278), 10) // burst of 10 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait before retrying attempt n:
// 500ms, 1s, 2s, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PantryChef/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUSDAAPIFailure, err)
	}

	return resp, nil
}

// SearchFoods searches for foods in the USDA database. Survey (FNDDS) and
// Foundation records carry the household portion data the refresh needs.
func (c *Client) SearchFoods(ctx context.Context, query string) (*domain.USDASearchResponse, error) {
	if c.debug {
		log.Printf("[USDA] SearchFoods called with query: %q", query)
	}

	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("api_key", c.apiKey)
	params.Add("dataType", "Survey (FNDDS),Foundation")
	params.Add("pageSize", "5")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[USDA] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[USDA] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			if resp.StatusCode == http.StatusNotFound {
				return nil, domain.ErrFoodNotFound
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrUSDAAPIFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var searchResp domain.USDASearchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if len(searchResp.Foods) == 0 {
			return nil, domain.ErrFoodNotFound
		}

		if c.debug {
			log.Printf("[USDA] Found %d foods for query: %q", len(searchResp.Foods), query)
		}
		return &searchResp, nil
	}

	return nil, lastErr
}

// GetFood retrieves a single food record by FDC ID, including its
// foodPortions entries (the search endpoint omits them).
func (c *Client) GetFood(ctx context.Context, fdcID int64) (*domain.USDAFood, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/food/%d", c.baseURL, fdcID)
	params := url.Values{}
	params.Add("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrFoodNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrUSDAAPIFailure, resp.StatusCode, string(body))
	}

	var food domain.USDAFood
	if err := json.NewDecoder(resp.Body).Decode(&food); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &food, nil
}

// LookupPortions implements domain.PortionSource: it searches for the food
// and returns the household portions of the best-ranked record that has any.
func (c *Client) LookupPortions(ctx context.Context, foodName string) ([]domain.FoodPortion, error) {
	searchResp, err := c.SearchFoods(ctx, foodName)
	if err != nil {
		return nil, err
	}

	for _, candidate := range searchResp.Foods {
		portions := MapPortions(&candidate)
		if len(portions) == 0 {
			food, err := c.GetFood(ctx, candidate.FdcID)
			if err != nil {
				continue
			}
			portions = MapPortions(food)
		}
		if len(portions) > 0 {
			return portions, nil
		}
	}

	return nil, domain.ErrFoodNotFound
}
