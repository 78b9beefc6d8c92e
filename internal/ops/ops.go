// Package ops implements the remote operations behind each idmctl command:
// listing, describing, deleting, exporting and importing tenant
// configuration. Every operation returns an error instead of printing it;
// reporting is the caller's job.
package ops

import (
	"context"
	"os"
	"time"

	"github.com/marmos91/idmctl/internal/cli/output"
	"github.com/marmos91/idmctl/internal/console"
	"github.com/marmos91/idmctl/pkg/apiclient"
)

// API is the subset of the tenant client the operations use.
type API interface {
	ListWebAgents(ctx context.Context, realm string) ([]apiclient.WebAgent, error)
	DeleteWebAgent(ctx context.Context, realm, id string) error

	ListOAuth2Clients(ctx context.Context, realm string) ([]apiclient.OAuth2Client, error)
	ListRealms(ctx context.Context) ([]apiclient.Realm, error)
	ListInternalRoles(ctx context.Context) ([]apiclient.InternalRole, error)

	ListSaml2Providers(ctx context.Context, realm string) ([]apiclient.Saml2Provider, error)
	FindSaml2Provider(ctx context.Context, realm, entityID string) (*apiclient.Saml2Provider, error)
	GetSaml2Provider(ctx context.Context, realm string, p *apiclient.Saml2Provider) (map[string]any, error)

	ListResourceTypes(ctx context.Context, realm string) ([]apiclient.ResourceType, error)
	GetResourceType(ctx context.Context, realm, id string) (*apiclient.ResourceType, error)
	GetResourceTypeByName(ctx context.Context, realm, name string) (*apiclient.ResourceType, error)
	CreateResourceType(ctx context.Context, realm string, rt *apiclient.ResourceType) (*apiclient.ResourceType, error)
	PutResourceType(ctx context.Context, realm string, rt *apiclient.ResourceType) (*apiclient.ResourceType, error)
	DeleteResourceType(ctx context.Context, realm, id string) error

	ListSocialIdentityProviders(ctx context.Context, realm string) ([]apiclient.SocialIdentityProvider, error)
	PutSocialIdentityProvider(ctx context.Context, realm string, p apiclient.SocialIdentityProvider) (apiclient.SocialIdentityProvider, error)
}

// Config binds a Service to one invocation.
type Config struct {
	Host     string
	Realm    string
	Username string
	Version  string
	// Dir is where --all-separate reads and writes files. Defaults to the
	// working directory.
	Dir     string
	Console *console.Console
	Printer *output.Printer
	Now     func() time.Time
}

// Service runs operations against one tenant realm.
type Service struct {
	api      API
	host     string
	realm    string
	username string
	version  string
	dir      string
	console  *console.Console
	printer  *output.Printer
	now      func() time.Time
}

// New creates a Service.
func New(api API, cfg Config) *Service {
	s := &Service{
		api:      api,
		host:     cfg.Host,
		realm:    cfg.Realm,
		username: cfg.Username,
		version:  cfg.Version,
		dir:      cfg.Dir,
		console:  cfg.Console,
		printer:  cfg.Printer,
		now:      cfg.Now,
	}
	if s.dir == "" {
		if wd, err := os.Getwd(); err == nil {
			s.dir = wd
		}
	}
	if s.console == nil {
		s.console = console.Default()
	}
	if s.printer == nil {
		s.printer = output.NewPrinter(s.console.Out(), output.FormatTable, false)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
