package geocoder

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/leegyver/land-sub002/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// kakaoAddressResponse is the shape of /v2/local/search/address.json. Kakao
// returns coordinates as strings, x is longitude and y is latitude.
type kakaoAddressResponse struct {
	Documents []struct {
		AddressName string `json:"address_name"`
		X           string `json:"x"`
		Y           string `json:"y"`
	} `json:"documents"`
}

// KakaoClient is a forward-geocoding client for the Kakao Local REST API.
// Lookups are single-attempt: a failed or empty lookup is reported to the
// caller, which degrades to a district centroid instead of retrying.
type KakaoClient struct {
	http   *resty.Client
	logger zerolog.Logger
}

// NewKakaoClient creates a client against baseURL authenticated with the
// given REST API key.
func NewKakaoClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *KakaoClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", "KakaoAK "+apiKey).
		SetHeader("Accept", "application/json")

	return &KakaoClient{http: client, logger: logger}
}

// Forward resolves an address string to a coordinate, taking the first
// matching document. Returns ErrNotFound when Kakao has no match.
func (c *KakaoClient) Forward(ctx context.Context, address string) (models.Coordinate, error) {
	var out kakaoAddressResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", address).
		SetResult(&out).
		Get("/v2/local/search/address.json")
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocoder: kakao request failed: %w", err)
	}
	if resp.IsError() {
		return models.Coordinate{}, fmt.Errorf("geocoder: kakao returned %s", resp.Status())
	}
	if len(out.Documents) == 0 {
		return models.Coordinate{}, ErrNotFound
	}

	doc := out.Documents[0]
	lat, err := strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocoder: kakao returned bad latitude %q: %w", doc.Y, err)
	}
	lng, err := strconv.ParseFloat(doc.X, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocoder: kakao returned bad longitude %q: %w", doc.X, err)
	}

	c.logger.Debug().Str("address", address).Str("matched", doc.AddressName).Msg("kakao geocode hit")
	return models.Coordinate{Lat: lat, Lng: lng}, nil
}
