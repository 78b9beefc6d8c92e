package ops

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/marmos91/idmctl/internal/cli/output"
	"github.com/marmos91/idmctl/internal/console"
	"github.com/marmos91/idmctl/pkg/apiclient"
)

// fakeAPI is an in-memory tenant.
type fakeAPI struct {
	agents    []apiclient.WebAgent
	clients   []apiclient.OAuth2Client
	realms    []apiclient.Realm
	roles     []apiclient.InternalRole
	providers []apiclient.Saml2Provider
	samlCfg   map[string]map[string]any
	types     map[string]apiclient.ResourceType
	idps      map[string]apiclient.SocialIdentityProvider

	failDelete map[string]error
	deleted    []string
	put        []string
	created    []string
}

func notFound() error {
	return &apiclient.APIError{StatusCode: 404, Reason: "Not Found", Message: "Not Found"}
}

func (f *fakeAPI) ListWebAgents(context.Context, string) ([]apiclient.WebAgent, error) {
	return f.agents, nil
}

func (f *fakeAPI) DeleteWebAgent(_ context.Context, _, id string) error {
	if err := f.failDelete[id]; err != nil {
		return err
	}
	for _, a := range f.agents {
		if a.ID == id {
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return notFound()
}

func (f *fakeAPI) ListOAuth2Clients(context.Context, string) ([]apiclient.OAuth2Client, error) {
	return f.clients, nil
}

func (f *fakeAPI) ListRealms(context.Context) ([]apiclient.Realm, error) {
	return f.realms, nil
}

func (f *fakeAPI) ListInternalRoles(context.Context) ([]apiclient.InternalRole, error) {
	return f.roles, nil
}

func (f *fakeAPI) ListSaml2Providers(context.Context, string) ([]apiclient.Saml2Provider, error) {
	return f.providers, nil
}

func (f *fakeAPI) FindSaml2Provider(_ context.Context, realm, entityID string) (*apiclient.Saml2Provider, error) {
	for _, p := range f.providers {
		if p.EntityID == entityID {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("entity provider %q %w in realm %q", entityID, apiclient.ErrNotFound, realm)
}

func (f *fakeAPI) GetSaml2Provider(_ context.Context, _ string, p *apiclient.Saml2Provider) (map[string]any, error) {
	return f.samlCfg[p.ID], nil
}

func (f *fakeAPI) ListResourceTypes(context.Context, string) ([]apiclient.ResourceType, error) {
	out := make([]apiclient.ResourceType, 0, len(f.types))
	for _, k := range sortedKeys(f.types) {
		out = append(out, f.types[k])
	}
	return out, nil
}

func (f *fakeAPI) GetResourceType(_ context.Context, _, id string) (*apiclient.ResourceType, error) {
	rt, ok := f.types[id]
	if !ok {
		return nil, notFound()
	}
	return &rt, nil
}

func (f *fakeAPI) GetResourceTypeByName(_ context.Context, realm, name string) (*apiclient.ResourceType, error) {
	for _, rt := range f.types {
		if rt.Name == name {
			return &rt, nil
		}
	}
	return nil, fmt.Errorf("resource type %q %w in realm %q", name, apiclient.ErrNotFound, realm)
}

func (f *fakeAPI) CreateResourceType(_ context.Context, _ string, rt *apiclient.ResourceType) (*apiclient.ResourceType, error) {
	f.created = append(f.created, rt.UUID)
	f.types[rt.UUID] = *rt
	return rt, nil
}

func (f *fakeAPI) PutResourceType(_ context.Context, _ string, rt *apiclient.ResourceType) (*apiclient.ResourceType, error) {
	if _, ok := f.types[rt.UUID]; !ok {
		return nil, notFound()
	}
	f.put = append(f.put, rt.UUID)
	f.types[rt.UUID] = *rt
	return rt, nil
}

func (f *fakeAPI) DeleteResourceType(_ context.Context, _, id string) error {
	if err := f.failDelete[id]; err != nil {
		return err
	}
	if _, ok := f.types[id]; !ok {
		return notFound()
	}
	delete(f.types, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) ListSocialIdentityProviders(context.Context, string) ([]apiclient.SocialIdentityProvider, error) {
	out := make([]apiclient.SocialIdentityProvider, 0, len(f.idps))
	for _, k := range sortedKeys(f.idps) {
		out = append(out, f.idps[k])
	}
	return out, nil
}

func (f *fakeAPI) PutSocialIdentityProvider(_ context.Context, _ string, p apiclient.SocialIdentityProvider) (apiclient.SocialIdentityProvider, error) {
	f.put = append(f.put, p.ID())
	f.idps[p.ID()] = p
	return p, nil
}

type fixture struct {
	api     *fakeAPI
	svc     *Service
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	dir     string
	printer *output.Printer
}

func newFixture(t *testing.T, format output.Format) *fixture {
	t.Helper()
	f := &fixture{
		api: &fakeAPI{
			types: map[string]apiclient.ResourceType{},
			idps:  map[string]apiclient.SocialIdentityProvider{},
		},
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		dir:    t.TempDir(),
	}
	c := console.New(f.out, f.errOut, console.Options{Debug: true})
	f.printer = output.NewPrinter(f.out, format, false)
	f.svc = New(f.api, Config{
		Host:     "https://tenant.example.com/am",
		Realm:    "alpha",
		Username: "amadmin",
		Version:  "1.2.3",
		Dir:      f.dir,
		Console:  c,
		Printer:  f.printer,
		Now:      func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) },
	})
	return f
}
