package auth

import (
	"context"
	"elite-dashboard/internal/config"
	"elite-dashboard/internal/metrics"
	"elite-dashboard/internal/models"
	"elite-dashboard/internal/version"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/oauth2"
)

const maxResponseBytes = 1 << 20

// DiscordClient talks to the Discord OAuth2 and REST endpoints on behalf of a logging-in user.
type DiscordClient struct {
	cfg          config.DiscordConfig
	logger       *slog.Logger
	oauth2Config *oauth2.Config
	httpClient   *http.Client

	newState func() (string, error)
}

func NewDiscordClient(cfg config.DiscordConfig, logger *slog.Logger) *DiscordClient {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   cfg.AuthorizeURL,
			TokenURL:  cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
		Scopes:      cfg.Scopes,
		RedirectURL: cfg.RedirectURL,
	}

	return &DiscordClient{
		cfg:          cfg,
		logger:       logger,
		oauth2Config: oauth2Config,
		httpClient:   newProviderHTTPClient(cfg.HTTPTimeout),
		newState:     newCSRFToken,
	}
}

// newProviderHTTPClient never follows redirects, so a hostile or misconfigured
// upstream cannot bounce requests carrying credentials to another host.
func newProviderHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// BuildAuthorizeURL returns the Discord consent URL and the CSRF token embedded in it as state.
func (d *DiscordClient) BuildAuthorizeURL() (string, string, error) {
	csrfToken, err := d.newState()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate csrf token: %w", err)
	}

	opts := []oauth2.AuthCodeOption{
		oauth2.SetAuthURLParam("response_type", "code"),
	}
	if d.cfg.Prompt != "" {
		opts = append(opts, oauth2.SetAuthURLParam("prompt", d.cfg.Prompt))
	}

	return d.oauth2Config.AuthCodeURL(csrfToken, opts...), csrfToken, nil
}

func (d *DiscordClient) ExchangeCode(ctx context.Context, code string) (*models.ProviderTokenSet, error) {
	timer := prometheus.NewTimer(metrics.ProviderRequestDuration.WithLabelValues(metrics.ProviderEndpointToken))
	defer timer.ObserveDuration()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, d.httpClient)

	tok, err := d.oauth2Config.Exchange(ctx, code)
	if err != nil {
		metrics.ProviderRequestErrors.WithLabelValues(metrics.ProviderEndpointToken).Inc()

		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			providerErr := &ProviderRequestError{Op: "token exchange", Message: retrieveErr.ErrorCode}
			if retrieveErr.Response != nil {
				providerErr.StatusCode = retrieveErr.Response.StatusCode
			}
			if providerErr.Message == "" {
				providerErr.Message = "token request rejected"
			}
			return nil, providerErr
		}

		return nil, &ProviderRequestError{Op: "token exchange", Message: "request failed", Err: err}
	}

	if tok.AccessToken == "" {
		return nil, &ProviderRequestError{Op: "token exchange", Message: "response has no access token"}
	}

	if tok.RefreshToken == "" {
		return nil, &ProviderRequestError{Op: "token exchange", Message: "response has no refresh token"}
	}

	var expiresIn time.Duration
	switch {
	case tok.ExpiresIn > 0:
		expiresIn = time.Duration(tok.ExpiresIn) * time.Second
	case !tok.Expiry.IsZero():
		expiresIn = time.Until(tok.Expiry)
	default:
		return nil, &ProviderRequestError{Op: "token exchange", Message: "response has no expiry"}
	}

	scope, _ := tok.Extra("scope").(string)

	return &models.ProviderTokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.Type(),
		Scope:        scope,
		ExpiresIn:    expiresIn,
	}, nil
}

// FetchSelfIdentity returns the Discord user that owns accessToken.
func (d *DiscordClient) FetchSelfIdentity(ctx context.Context, accessToken string) (*models.DiscordUser, error) {
	var user models.DiscordUser
	if err := d.getJSON(ctx, metrics.ProviderEndpointSelf, "/users/@me", accessToken, &user); err != nil {
		return nil, err
	}

	if user.ID == "" {
		return nil, &ProviderRequestError{Op: metrics.ProviderEndpointSelf, Message: "response has no user id"}
	}

	return &user, nil
}

// FetchGuildMember returns the caller's membership in the configured guild, or ErrNotMember.
func (d *DiscordClient) FetchGuildMember(ctx context.Context, accessToken string) (*models.GuildMember, error) {
	path := fmt.Sprintf("/users/@me/guilds/%s/member", url.PathEscape(d.cfg.GuildID))

	var member models.GuildMember
	if err := d.getJSON(ctx, metrics.ProviderEndpointMember, path, accessToken, &member); err != nil {
		return nil, err
	}

	return &member, nil
}

func (d *DiscordClient) getJSON(ctx context.Context, endpoint, path, accessToken string, out any) error {
	timer := prometheus.NewTimer(metrics.ProviderRequestDuration.WithLabelValues(endpoint))
	defer timer.ObserveDuration()

	err := d.doGetJSON(ctx, endpoint, path, accessToken, out)
	if err != nil && !errors.Is(err, ErrNotMember) {
		metrics.ProviderRequestErrors.WithLabelValues(endpoint).Inc()
	}

	return err
}

func (d *DiscordClient) doGetJSON(ctx context.Context, endpoint, path, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.cfg.APIURL()+path, nil)
	if err != nil {
		return &ProviderRequestError{Op: endpoint, Message: "failed to build request", Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "DiscordBot (elite-dashboard, "+version.GetVersion()+")")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return &ProviderRequestError{Op: endpoint, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &ProviderRequestError{Op: endpoint, StatusCode: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	if endpoint == metrics.ProviderEndpointMember && resp.StatusCode == http.StatusNotFound {
		return ErrNotMember
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		d.logger.Debug("discord request rejected",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"body", strings.TrimSpace(string(body)))
		return &ProviderRequestError{Op: endpoint, StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ProviderRequestError{Op: endpoint, StatusCode: resp.StatusCode, Message: "malformed response", Err: err}
	}

	return nil
}
