package apiclient

import (
	"context"
	"net/url"
)

// AgentType identifies the kind of an agent profile.
type AgentType struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

// WebAgent is a web policy agent profile.
type WebAgent struct {
	ID   string    `json:"_id"`
	Rev  string    `json:"_rev,omitempty"`
	Type AgentType `json:"_type"`
}

func webAgentsPath(realm string) string {
	return realmPath(realm) + "/realm-config/agents/WebAgent"
}

// ListWebAgents returns every web agent in realm.
func (c *Client) ListWebAgents(ctx context.Context, realm string) ([]WebAgent, error) {
	return queryResources[WebAgent](ctx, c, webAgentsPath(realm)+"?_queryFilter=true", apiVersionRealmConfig)
}

// DeleteWebAgent deletes the web agent id in realm.
func (c *Client) DeleteWebAgent(ctx context.Context, realm, id string) error {
	return deleteResource(ctx, c, webAgentsPath(realm)+"/"+url.PathEscape(id), apiVersionRealmConfig)
}
