package apiclient

import (
	"context"
	"errors"
	"net/http"
)

// ErrNoToken is returned when authentication succeeds at the HTTP level but
// the response carries no session token.
var ErrNoToken = errors.New("authentication response did not contain a session token")

// TokenResponse is the body of a successful authenticate call.
type TokenResponse struct {
	TokenID    string `json:"tokenId"`
	SuccessURL string `json:"successUrl,omitempty"`
	Realm      string `json:"realm,omitempty"`
}

// Authenticate performs a username/password login against realm and returns
// the session token. The credentials travel in headers, never in the body.
func (c *Client) Authenticate(ctx context.Context, realm, username, password string) (*TokenResponse, error) {
	var resp TokenResponse
	err := c.do(ctx, request{
		method:     http.MethodPost,
		url:        c.baseURL + realmPath(realm) + "/authenticate",
		apiVersion: apiVersionAuthenticate,
		headers: map[string]string{
			"X-OpenAM-Username": username,
			"X-OpenAM-Password": password,
		},
		result: &resp,
	})
	if err != nil {
		return nil, err
	}
	if resp.TokenID == "" {
		return nil, ErrNoToken
	}
	return &resp, nil
}
