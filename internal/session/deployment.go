package session

import (
	"fmt"
	"strings"
)

// DeploymentType classifies how a tenant is hosted.
type DeploymentType string

const (
	// DeploymentCloud is a vendor-managed cloud tenant.
	DeploymentCloud DeploymentType = "cloud"
	// DeploymentForgeOps is a self-managed container deployment.
	DeploymentForgeOps DeploymentType = "forgeops"
	// DeploymentClassic is a self-managed classic installation.
	DeploymentClassic DeploymentType = "classic"
	// DeploymentUnspecified means the type was neither given nor inferable.
	DeploymentUnspecified DeploymentType = ""
)

// cloudHostSuffixes identify hosts that are always cloud tenants.
var cloudHostSuffixes = []string{
	".forgeblocks.com",
	".forgerock.io",
}

// DeploymentTypes lists the concrete types accepted by --type.
func DeploymentTypes() []DeploymentType {
	return []DeploymentType{DeploymentCloud, DeploymentForgeOps, DeploymentClassic}
}

// ParseDeploymentType parses a --type value. The empty string yields
// DeploymentUnspecified.
func ParseDeploymentType(s string) (DeploymentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DeploymentUnspecified, nil
	case "cloud":
		return DeploymentCloud, nil
	case "forgeops":
		return DeploymentForgeOps, nil
	case "classic":
		return DeploymentClassic, nil
	default:
		return DeploymentUnspecified, fmt.Errorf("invalid deployment type: %q (valid: cloud, forgeops, classic)", s)
	}
}

// String returns the type name, or "unspecified".
func (d DeploymentType) String() string {
	if d == DeploymentUnspecified {
		return "unspecified"
	}
	return string(d)
}

// inferDeploymentType guesses the type from the tenant host name.
func inferDeploymentType(host string) DeploymentType {
	h := strings.ToLower(host)
	if i := strings.Index(h, "://"); i >= 0 {
		h = h[i+3:]
	}
	if i := strings.IndexAny(h, "/:"); i >= 0 {
		h = h[:i]
	}
	for _, suffix := range cloudHostSuffixes {
		if strings.HasSuffix(h, suffix) {
			return DeploymentCloud
		}
	}
	return DeploymentUnspecified
}
