package apiclient

import "context"

// Inherited wraps a realm-config value that may be inherited from the
// agent group.
type Inherited[T any] struct {
	Inherited bool `json:"inherited"`
	Value     T    `json:"value"`
}

// CoreOAuth2ClientConfig holds the core OAuth2 client settings.
type CoreOAuth2ClientConfig struct {
	Status          Inherited[string]   `json:"status"`
	ClientType      Inherited[string]   `json:"clientType"`
	ClientName      Inherited[[]string] `json:"clientName"`
	RedirectionURIs Inherited[[]string] `json:"redirectionUris"`
	Scopes          Inherited[[]string] `json:"scopes"`
}

// AdvancedOAuth2ClientConfig holds the advanced OAuth2 client settings.
type AdvancedOAuth2ClientConfig struct {
	GrantTypes              Inherited[[]string] `json:"grantTypes"`
	TokenEndpointAuthMethod Inherited[string]   `json:"tokenEndpointAuthMethod"`
}

// OAuth2Client is an OAuth2 application registration.
type OAuth2Client struct {
	ID       string                     `json:"_id"`
	Rev      string                     `json:"_rev,omitempty"`
	Core     CoreOAuth2ClientConfig     `json:"coreOAuth2ClientConfig"`
	Advanced AdvancedOAuth2ClientConfig `json:"advancedOAuth2ClientConfig"`
}

// ListOAuth2Clients returns every OAuth2 client in realm.
func (c *Client) ListOAuth2Clients(ctx context.Context, realm string) ([]OAuth2Client, error) {
	return queryResources[OAuth2Client](ctx, c,
		realmPath(realm)+"/realm-config/agents/OAuth2Client?_queryFilter=true", apiVersionRealmConfig)
}
