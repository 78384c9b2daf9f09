package api

import (
	"context"

	"golang.org/x/oauth2"
)

// NewTokenSource builds a self-refreshing token source from a previously
// issued token pair. Refreshes go through the backend's token endpoint;
// storage of the pair itself is the caller's concern.
func NewTokenSource(ctx context.Context, cfg Config, accessToken string, refreshToken string) oauth2.TokenSource {
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  cfg.BaseURL + "/refresh/",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	return conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// IsAuthenticated reports whether the client currently holds a usable access
// token. It never performs a network round-trip beyond a token refresh.
func (c *Client) IsAuthenticated() bool {
	if c.tokens == nil {
		return false
	}
	token, err := c.tokens.Token()
	return err == nil && token.Valid()
}
