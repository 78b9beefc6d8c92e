package apiclient

import (
	"context"
	"fmt"
	"net/url"
)

// Saml2Provider is the summary of a hosted or remote SAML entity provider.
type Saml2Provider struct {
	ID       string   `json:"_id"`
	EntityID string   `json:"entityId"`
	Location string   `json:"location"`
	Roles    []string `json:"roles,omitempty"`
}

func saml2Path(realm string) string {
	return realmPath(realm) + "/realm-config/saml2"
}

// ListSaml2Providers returns every SAML entity provider in realm.
func (c *Client) ListSaml2Providers(ctx context.Context, realm string) ([]Saml2Provider, error) {
	return queryResources[Saml2Provider](ctx, c, saml2Path(realm)+"?_queryFilter=true", apiVersionSaml2)
}

// FindSaml2Provider returns the provider with the given entity id or an
// error wrapping ErrNotFound.
func (c *Client) FindSaml2Provider(ctx context.Context, realm, entityID string) (*Saml2Provider, error) {
	providers, err := queryResources[Saml2Provider](ctx, c, saml2Path(realm)+"?"+queryFilter("entityId", entityID), apiVersionSaml2)
	if err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("entity provider %q %w in realm %q", entityID, ErrNotFound, realm)
	}
	return &providers[0], nil
}

// GetSaml2Provider returns the full configuration of a provider.
func (c *Client) GetSaml2Provider(ctx context.Context, realm string, p *Saml2Provider) (map[string]any, error) {
	path := fmt.Sprintf("%s/%s/%s", saml2Path(realm), url.PathEscape(p.Location), url.PathEscape(p.ID))
	cfg, err := getResource[map[string]any](ctx, c, path, apiVersionSaml2)
	if err != nil {
		return nil, err
	}
	return *cfg, nil
}
