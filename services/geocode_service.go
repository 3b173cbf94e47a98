package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/Utkarsh-Jain2199/Meal-Express-Backend/common/errors"
	"github.com/redis/go-redis/v9"
)

const defaultGeocodeBaseURL = "https://api.opencagedata.com/geocode/v1/json"

var errLocationNotFound = apperrors.Upstream("Could not resolve location", nil)

// GeocodeService resolves coordinates to a human-readable address via
// OpenCage. Responses are cached in Redis when a client is configured;
// coordinates for the same building do not change between requests.
type GeocodeService struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cache   *redis.Client
	ttl     time.Duration
}

// NewGeocodeService builds the service. cache may be nil to disable
// caching.
func NewGeocodeService(apiKey string, cache *redis.Client) *GeocodeService {
	return &GeocodeService{
		apiKey:  apiKey,
		baseURL: defaultGeocodeBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		ttl:     24 * time.Hour,
	}
}

type opencageResponse struct {
	Results []struct {
		Components struct {
			Village       string `json:"village"`
			County        string `json:"county"`
			StateDistrict string `json:"state_district"`
			State         string `json:"state"`
			Postcode      string `json:"postcode"`
		} `json:"components"`
	} `json:"results"`
}

// ReverseGeocode formats "village,county,state_district,state\npostcode"
// for the given coordinates, the shape the address picker consumes.
func (s *GeocodeService) ReverseGeocode(ctx context.Context, lat, long string) (string, error) {
	if lat == "" || long == "" {
		return "", apperrors.MalformedInput("Latitude and longitude are required")
	}

	cacheKey := fmt.Sprintf("geo:%s,%s", lat, long)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	query := url.Values{}
	query.Set("q", lat+"+"+long)
	query.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", apperrors.Upstream("Could not resolve location", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", apperrors.Upstream("Could not resolve location", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.Upstream("Could not resolve location",
			fmt.Errorf("geocoder returned status %d", resp.StatusCode))
	}

	var body opencageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", apperrors.Upstream("Could not resolve location", err)
	}
	if len(body.Results) == 0 {
		return "", errLocationNotFound
	}

	c := body.Results[0].Components
	location := fmt.Sprintf("%s,%s,%s,%s\n%s",
		c.Village, c.County, c.StateDistrict, c.State, c.Postcode)

	if s.cache != nil {
		// Cache write failures are ignored; the lookup already succeeded.
		s.cache.Set(ctx, cacheKey, location, s.ttl)
	}
	return location, nil
}
