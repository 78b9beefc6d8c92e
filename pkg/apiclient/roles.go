package apiclient

import (
	"context"
	"net/http"
)

// InternalRole is an identity-management internal role.
type InternalRole struct {
	ID          string `json:"_id"`
	Rev         string `json:"_rev,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Privileges  []any  `json:"privileges,omitempty"`
}

// ListInternalRoles returns every internal role. Internal roles live on the
// identity-management side of the tenant and only exist on cloud and
// forgeops deployments.
func (c *Client) ListInternalRoles(ctx context.Context) ([]InternalRole, error) {
	var result queryResult[InternalRole]
	err := c.do(ctx, request{
		method: http.MethodGet,
		url:    c.idmBaseURL() + "/openidm/internal/role?_queryFilter=true",
		result: &result,
	})
	if err != nil {
		return nil, err
	}
	return result.Result, nil
}
