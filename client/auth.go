package client

import (
	"context"

	"golang.org/x/oauth2"
)

// Endpoint is FreeAgent's production OAuth2 endpoint.
var Endpoint = oauth2.Endpoint{
	AuthURL:  DefaultHost + "/v2/approve_app",
	TokenURL: DefaultHost + "/v2/token_endpoint",
}

// SandboxEndpoint is the OAuth2 endpoint for sandbox companies.
var SandboxEndpoint = oauth2.Endpoint{
	AuthURL:  SandboxHost + "/v2/approve_app",
	TokenURL: SandboxHost + "/v2/token_endpoint",
}

func NewOAuthConfig(clientID, clientSecret, redirectURL string, sandbox bool) *oauth2.Config {
	ep := Endpoint
	if sandbox {
		ep = SandboxEndpoint
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     ep,
	}
}

// NewWithToken returns a Client whose underlying HTTP client injects and
// refreshes the given OAuth2 token. Token lifecycle is entirely the oauth2
// package's concern; retries and timeouts come from RobustHTTPClient.
func NewWithToken(ctx context.Context, cfg *oauth2.Config, tok *oauth2.Token) *Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, RobustHTTPClient())
	host := DefaultHost
	if cfg.Endpoint == SandboxEndpoint {
		host = SandboxHost
	}
	return &Client{
		Client: oauth2.NewClient(ctx, cfg.TokenSource(ctx, tok)),
		Host:   host,
	}
}
