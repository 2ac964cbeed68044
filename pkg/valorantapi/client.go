package valorantapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
)

const (
	defaultBaseURL              = "https://valorant-api.com"
	responseBodyReadLimit int64 = 1024
)

// Client wraps the public valorant-api.com endpoints used for game data.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// NewClient builds the valorant-api.com client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}

	return client
}

// Season is an entry from the seasons endpoint. Acts carry the
// EAresSeasonType::Act type with concrete start and end timestamps.
type Season struct {
	UUID        string     `json:"uuid"`
	DisplayName string     `json:"displayName"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	ParentUUID  string     `json:"parentUuid"`
	AssetPath   string     `json:"assetPath"`
}

// Map is an entry from the maps endpoint.
type Map struct {
	UUID         string `json:"uuid"`
	DisplayName  string `json:"displayName"`
	Coordinates  string `json:"coordinates"`
	Splash       string `json:"splash"`
	ListViewIcon string `json:"listViewIcon"`
}

// Bundle is an entry from the bundles endpoint.
type Bundle struct {
	UUID               string `json:"uuid"`
	DisplayName        string `json:"displayName"`
	Description        string `json:"description"`
	DisplayIcon        string `json:"displayIcon"`
	DisplayIcon2       string `json:"displayIcon2"`
	VerticalPromoImage string `json:"verticalPromoImage"`
}

// WeaponSkin is an entry from the weapon skins endpoint.
type WeaponSkin struct {
	UUID        string       `json:"uuid"`
	DisplayName string       `json:"displayName"`
	DisplayIcon string       `json:"displayIcon"`
	Chromas     []SkinChroma `json:"chromas"`
}

// SkinChroma is a color variant of a weapon skin. The first chroma
// usually carries the full render when the skin itself has no icon.
type SkinChroma struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
	FullRender  string `json:"fullRender"`
}

// Seasons fetches every season and act known to the API.
func (c *Client) Seasons(ctx context.Context) ([]Season, error) {
	var out []Season
	if err := c.get(ctx, "/v1/seasons", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Maps fetches every playable map known to the API.
func (c *Client) Maps(ctx context.Context) ([]Map, error) {
	var out []Map
	if err := c.get(ctx, "/v1/maps", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Bundles fetches every store bundle known to the API.
func (c *Client) Bundles(ctx context.Context) ([]Bundle, error) {
	var out []Bundle
	if err := c.get(ctx, "/v1/bundles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WeaponSkins fetches every weapon skin known to the API.
func (c *Client) WeaponSkins(ctx context.Context) ([]WeaponSkin, error) {
	var out []WeaponSkin
	if err := c.get(ctx, "/v1/weapons/skins", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, data interface{}) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "valorant api client not configured")
	}

	url := c.buildURL(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build valorant api request")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute valorant api request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "valorant api request failed")
	}

	var envelope struct {
		Status int             `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode valorant api response")
	}
	if envelope.Status != http.StatusOK {
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("valorant api returned status %d", envelope.Status))
	}

	if err := json.Unmarshal(envelope.Data, data); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode valorant api payload")
	}
	return nil
}

func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s/%s", trimmed, path)
}
