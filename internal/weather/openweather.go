package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"farecast/internal/types"
)

// DefaultBaseURL is the production OpenWeatherMap endpoint; tests point the
// client at a local server instead.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeather reads current conditions from the OpenWeatherMap API.
type OpenWeather struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewOpenWeather builds a client. A nil httpClient gets a 5 second timeout
// and an empty baseURL selects the production endpoint.
func NewOpenWeather(httpClient *http.Client, apiKey, baseURL string) *OpenWeather {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenWeather{httpClient: httpClient, apiKey: apiKey, baseURL: baseURL}
}

func (c *OpenWeather) Current(ctx context.Context, p types.Point) (Observation, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(p.Lng, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return Observation{}, fmt.Errorf("openweather: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Observation{}, fmt.Errorf("openweather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Observation{}, fmt.Errorf("openweather: status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Observation{}, fmt.Errorf("openweather: decode response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return Observation{}, errors.New("openweather: response carries no conditions")
	}

	return Observation{
		Condition:   payload.Weather[0].Main,
		Description: payload.Weather[0].Description,
		TempC:       payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
	}, nil
}
