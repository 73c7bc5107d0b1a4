package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nutriveg/nutriveg-cli/cli/session"
	"github.com/nutriveg/nutriveg-cli/pkg/config"
)

// permissionDeniedMessage is the exact 403 payload the platform sends when
// a member calls a nutritionist-only endpoint. Only this payload forces a
// logout; ownership 403s are passed through to the caller.
const permissionDeniedMessage = "Acesso negado! Apenas nutricionistas têm permissão para realizar esta ação."

// Client provides access to the NutriVeg content API. It attaches the
// persisted bearer token to every request and intercepts authorization
// failures centrally.
type Client struct {
	http    *resty.Client
	session *session.Store
	baseURL string

	recipes       *RecipeService
	articles      *ArticleService
	nutritionists *NutritionistService
	users         *UserService
}

// NewClient creates a client for the API at cfg.API.BaseURL.
func NewClient(cfg *config.Config, store *session.Store) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	baseURL, err := validateBaseURL(cfg.API.BaseURL)
	if err != nil {
		return nil, err
	}
	client := &Client{
		http:    buildHTTPClient(cfg, baseURL, store),
		session: store,
		baseURL: baseURL,
	}
	client.recipes = &RecipeService{client: client}
	client.articles = &ArticleService{client: client}
	client.nutritionists = &NutritionistService{client: client}
	client.users = &UserService{client: client}
	return client, nil
}

func validateBaseURL(baseURL string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return "", fmt.Errorf("base URL must be absolute with a host, got: %s", baseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("base URL scheme must be http or https, got: %s", parsed.Scheme)
	}
	return baseURL, nil
}

func buildHTTPClient(cfg *config.Config, baseURL string, store *session.Store) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.API.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(3).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)

	client.AddRetryCondition(retryCondition)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := store.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		return interceptAuthFailure(resp, store)
	})

	if cfg.Runtime.LogLevel == "debug" {
		client.SetDebug(true)
	}
	return client
}

// interceptAuthFailure implements the central 401/403 contract: the token is
// removed from storage before the error is returned, so no request issued
// afterwards can carry the stale credential.
func interceptAuthFailure(resp *resty.Response, store *session.Store) error {
	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		if err := store.Logout(); err != nil {
			return fmt.Errorf("failed to clear expired session: %w", err)
		}
		return &sessionError{cause: ErrSessionExpired}
	case http.StatusForbidden:
		var body errorBody
		if err := json.Unmarshal(resp.Body(), &body); err == nil &&
			body.Message == permissionDeniedMessage {
			if err := store.Logout(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			return &sessionError{cause: ErrPermissionDenied}
		}
	}
	return nil
}

func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		// a session error is final, not transient
		return !errors.Is(err, ErrSessionExpired) && !errors.Is(err, ErrPermissionDenied)
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
}

// Recipes returns the recipe collection service.
func (c *Client) Recipes() *RecipeService { return c.recipes }

// Articles returns the article collection service.
func (c *Client) Articles() *ArticleService { return c.articles }

// Nutritionists returns the nutritionist collection service.
func (c *Client) Nutritionists() *NutritionistService { return c.nutritionists }

// Users returns the account and profile service.
func (c *Client) Users() *UserService { return c.users }

// BaseURL returns the configured API base address.
func (c *Client) BaseURL() string { return c.baseURL }

// apiError converts a non-success response into an *APIError.
func apiError(resp *resty.Response) error {
	var body errorBody
	_ = json.Unmarshal(resp.Body(), &body)
	return &APIError{Status: resp.StatusCode(), Message: body.text()}
}
