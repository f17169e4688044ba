package marketplace

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	RedirectURL  string
}

// Token is the result of a code exchange or refresh.
type Token struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Scope        string
	UserID       int64
	ExpiresAt    time.Time
}

// OAuth drives the authorization-code flow against the marketplace.
type OAuth struct {
	cfg        *oauth2.Config
	httpClient *http.Client
}

func NewOAuth(cfg OAuthConfig, httpClient *http.Client) *OAuth {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OAuth{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
	}
}

// AuthCodeURL is where the seller is sent to grant access.
func (o *OAuth) AuthCodeURL(state string) string {
	return o.cfg.AuthCodeURL(state)
}

func (o *OAuth) Exchange(ctx context.Context, code string) (Token, error) {
	tok, err := o.cfg.Exchange(o.withClient(ctx), code)
	if err != nil {
		return Token{}, fmt.Errorf("exchange code: %w", mapOAuthError(err))
	}
	return convertToken(tok)
}

// Refresh trades a refresh token for a new pair. The marketplace rotates refresh
// tokens, so the returned RefreshToken must replace the stored one.
func (o *OAuth) Refresh(ctx context.Context, refreshToken string) (Token, error) {
	src := o.cfg.TokenSource(o.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return Token{}, fmt.Errorf("refresh token: %w", mapOAuthError(err))
	}
	if tok.RefreshToken == "" {
		tok.RefreshToken = refreshToken
	}
	return convertToken(tok)
}

func (o *OAuth) withClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
}

func convertToken(tok *oauth2.Token) (Token, error) {
	t := Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		ExpiresAt:    tok.Expiry,
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		t.Scope = scope
	}

	switch v := tok.Extra("user_id").(type) {
	case float64:
		t.UserID = int64(v)
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Token{}, fmt.Errorf("parse user_id %q: %w", v, err)
		}
		t.UserID = id
	}
	return t, nil
}

func mapOAuthError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		switch {
		case re.Response.StatusCode == http.StatusBadRequest || re.Response.StatusCode == http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrUnauthorized, re.ErrorCode)
		case re.Response.StatusCode == http.StatusTooManyRequests:
			return ErrRateLimited
		case re.Response.StatusCode >= 500:
			return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}
	}
	return err
}
