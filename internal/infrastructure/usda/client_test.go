package usda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/domain"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-key", "https://api.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "test-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("test-key", "https://api.example.com")

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1 * time.Second},
		{3, 2 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, exponentialBackoff(tt.attempt), "attempt %d", tt.attempt)
	}
}

func searchResponse(foods ...domain.USDAFood) domain.USDASearchResponse {
	return domain.USDASearchResponse{
		Foods:       foods,
		TotalHits:   len(foods),
		CurrentPage: 1,
		TotalPages:  1,
	}
}

func TestSearchFoods(t *testing.T) {
	t.Run("successful search", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/foods/search", r.URL.Path)
			assert.Equal(t, "strawberries", r.URL.Query().Get("query"))
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			assert.Equal(t, "Survey (FNDDS),Foundation", r.URL.Query().Get("dataType"))

			resp := searchResponse(domain.USDAFood{
				FdcID:       167762,
				Description: "Strawberries, raw",
				DataType:    "Foundation",
			})
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		result, err := client.SearchFoods(context.Background(), "strawberries")

		require.NoError(t, err)
		require.Len(t, result.Foods, 1)
		assert.Equal(t, int64(167762), result.Foods[0].FdcID)
		assert.Equal(t, "Strawberries, raw", result.Foods[0].Description)
	})

	t.Run("404 maps to ErrFoodNotFound without retrying", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		_, err := client.SearchFoods(context.Background(), "nonexistent")

		assert.ErrorIs(t, err, domain.ErrFoodNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("empty result set maps to ErrFoodNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(searchResponse())
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		_, err := client.SearchFoods(context.Background(), "nothing")

		assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	})

	t.Run("retries transient server errors", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(searchResponse(domain.USDAFood{
				FdcID:       1,
				Description: "Milk",
				DataType:    "Foundation",
			}))
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		result, err := client.SearchFoods(context.Background(), "milk")

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Len(t, result.Foods, 1)
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		_, err := client.SearchFoods(context.Background(), "milk")

		assert.ErrorIs(t, err, domain.ErrUSDAAPIFailure)
		assert.Equal(t, 3, calls)
	})
}

func TestGetFood(t *testing.T) {
	t.Run("returns the food with its portions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/food/167762", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

			json.NewEncoder(w).Encode(domain.USDAFood{
				FdcID:       167762,
				Description: "Strawberries, raw",
				DataType:    "Foundation",
				Portions: []domain.USDAFoodPortion{
					{
						ID:          1,
						Amount:      1,
						GramWeight:  166,
						MeasureUnit: domain.USDAMeasureUnit{ID: 1000, Name: "cup"},
					},
				},
			})
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		food, err := client.GetFood(context.Background(), 167762)

		require.NoError(t, err)
		assert.Equal(t, int64(167762), food.FdcID)
		require.Len(t, food.Portions, 1)
		assert.Equal(t, "cup", food.Portions[0].MeasureUnit.Name)
	})

	t.Run("404 maps to ErrFoodNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		_, err := client.GetFood(context.Background(), 99999)

		assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	})
}

func TestLookupPortions(t *testing.T) {
	t.Run("uses search results directly when they carry portions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/foods/search", r.URL.Path, "detail fetch should not be needed")
			json.NewEncoder(w).Encode(searchResponse(domain.USDAFood{
				FdcID:       1,
				Description: "Strawberries, raw",
				DataType:    "Survey (FNDDS)",
				Portions: []domain.USDAFoodPortion{
					{Amount: 1, GramWeight: 166, MeasureUnit: domain.USDAMeasureUnit{Name: "cup"}},
				},
			}))
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		portions, err := client.LookupPortions(context.Background(), "strawberries")

		require.NoError(t, err)
		require.Len(t, portions, 1)
		assert.Equal(t, "cup", portions[0].MeasureUnit)
		assert.Equal(t, 166.0, portions[0].GramWeight)
	})

	t.Run("falls back to the detail endpoint for bare search hits", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v1/foods/search":
				json.NewEncoder(w).Encode(searchResponse(domain.USDAFood{
					FdcID:       42,
					Description: "Milk, whole",
					DataType:    "Foundation",
				}))
			case "/v1/food/42":
				json.NewEncoder(w).Encode(domain.USDAFood{
					FdcID:       42,
					Description: "Milk, whole",
					DataType:    "Foundation",
					Portions: []domain.USDAFoodPortion{
						{Amount: 1, GramWeight: 244, MeasureUnit: domain.USDAMeasureUnit{Name: "cup"}},
					},
				})
			default:
				t.Errorf("unexpected path %q", r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		portions, err := client.LookupPortions(context.Background(), "milk")

		require.NoError(t, err)
		require.Len(t, portions, 1)
		assert.Equal(t, 244.0, portions[0].GramWeight)
	})

	t.Run("no candidate with portions maps to ErrFoodNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v1/foods/search":
				json.NewEncoder(w).Encode(searchResponse(domain.USDAFood{
					FdcID:       7,
					Description: "Salt",
					DataType:    "Foundation",
				}))
			default:
				json.NewEncoder(w).Encode(domain.USDAFood{FdcID: 7, Description: "Salt", DataType: "Foundation"})
			}
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL)
		_, err := client.LookupPortions(context.Background(), "salt")

		assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	})
}
