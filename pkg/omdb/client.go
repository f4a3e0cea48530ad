package omdb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoPoster means the API answered but has no usable poster for the
// title (OMDb reports "N/A").
var ErrNoPoster = errors.New("no poster available")

const defaultBaseURL = "https://www.omdbapi.com"

// maxPosterBytes bounds how much image data we are willing to cache.
const maxPosterBytes = 5 << 20

// Client fetches movie posters from the OMDb API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type titleResponse struct {
	Poster string `json:"Poster"`
}

// FetchPoster looks the title up on OMDb and returns the poster image as
// a base64 string.
func (c *Client) FetchPoster(ctx context.Context, title string) (string, error) {
	endpoint := fmt.Sprintf("%s/?apikey=%s&t=%s", c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("omdb title lookup: unexpected status %d", resp.StatusCode)
	}

	var payload titleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	// Poster can be "N/A"
	if !strings.HasPrefix(payload.Poster, "http") {
		return "", ErrNoPoster
	}

	return c.downloadAsBase64(ctx, payload.Poster)
}

func (c *Client) downloadAsBase64(ctx context.Context, imgURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imgURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("omdb poster download: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPosterBytes))
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(data), nil
}
