// Package api implements the REST client for the RentIQ server.
//
// Every protected call carries a bearer credential obtained from the
// CredentialSource; a 401 response notifies the source exactly once per
// request before ErrUnauthorized is returned, so session teardown stays the
// session manager's responsibility. Transient transport failures on
// idempotent GETs are retried with exponential backoff.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/logging"
)

// CredentialSource supplies the bearer credential for outbound requests and
// receives authorization-failure notifications. The session manager is the
// only implementation in the application; tests provide fakes.
type CredentialSource interface {
	// AuthorizationHeader returns the value for the Authorization header
	// and whether a credential is present.
	AuthorizationHeader() (string, bool)

	// HandleUnauthorized is invoked when the server rejects the credential.
	HandleUnauthorized()
}

// Client is the surface of the RentIQ REST API consumed by the services
// layer. Auth endpoints return the raw access token; storing it is the
// caller's concern.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, username, password string) (string, error)
	GoogleAuth(ctx context.Context, code string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)

	SearchProperties(ctx context.Context, query url.Values) ([]models.Property, error)
	GetProperty(ctx context.Context, id int64) (*models.Property, error)

	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error)

	ListFavorites(ctx context.Context) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, propertyID int64) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, favoriteID int64) error
}

// RESTClient is the HTTP implementation of Client.
type RESTClient struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	log     logging.Logger
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient builds a client for the given base URL, e.g.
// "http://localhost:8000/api". The trailing slash is optional.
func NewRESTClient(baseURL string, creds CredentialSource, timeout time.Duration, log logging.Logger) *RESTClient {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &RESTClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log,
	}
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil and the response has a body). Error bodies are expected in the
// server's {"detail": "..."} shape.
func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h, ok := c.creds.AuthorizationHeader(); ok {
		req.Header.Set("Authorization", h)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		c.creds.HandleUnauthorized()
		return ErrUnauthorized

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, readDetail(resp.Body))

	case resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)

	default:
		return &Error{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
}

// getJSON wraps do with retry for idempotent reads. Only ErrUnavailable is
// retried; everything else, including 401, surfaces immediately.
func (c *RESTClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, query, nil, out)
		if errors.Is(err, ErrUnavailable) {
			c.log.Warn(ctx, "retrying request", "path", path, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

func readDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var tok models.Token
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &tok); err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

func (c *RESTClient) Register(ctx context.Context, email, username, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	if username != "" {
		body["username"] = username
	}
	var tok models.Token
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &tok); err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

func (c *RESTClient) GoogleAuth(ctx context.Context, code string) (string, error) {
	var tok models.Token
	if err := c.do(ctx, http.MethodPost, "/auth/google", nil, map[string]string{"code": code}, &tok); err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

func (c *RESTClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.getJSON(ctx, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *RESTClient) SearchProperties(ctx context.Context, query url.Values) ([]models.Property, error) {
	var props []models.Property
	if err := c.getJSON(ctx, "/properties", query, &props); err != nil {
		return nil, err
	}
	return props, nil
}

func (c *RESTClient) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var p models.Property
	if err := c.getJSON(ctx, "/properties/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.getJSON(ctx, "/users/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodPut, "/users/profile", nil, upd, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	var favs []models.Favorite
	if err := c.getJSON(ctx, "/favorites", nil, &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

func (c *RESTClient) AddFavorite(ctx context.Context, propertyID int64) (*models.Favorite, error) {
	body := map[string]int64{"property_id": propertyID}
	var fav models.Favorite
	if err := c.do(ctx, http.MethodPost, "/favorites", nil, body, &fav); err != nil {
		return nil, err
	}
	return &fav, nil
}

func (c *RESTClient) RemoveFavorite(ctx context.Context, favoriteID int64) error {
	return c.do(ctx, http.MethodDelete, "/favorites/"+strconv.FormatInt(favoriteID, 10), nil, nil, nil)
}
