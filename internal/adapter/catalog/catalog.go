// Package catalog serves audiences and templates from a YAML document. A
// default catalog is compiled into the binary.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/port"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the document layout of a catalog file.
type Catalog struct {
	Audiences []domain.Audience `yaml:"audiences"`
	Templates []domain.Template `yaml:"templates"`
}

// Validate rejects entries without an id, duplicate ids and negative sizes.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{})
	for i, a := range c.Audiences {
		if strings.TrimSpace(a.ID) == "" {
			return errors.Newf("audience #%d has no id", i+1)
		}
		if a.Size < 0 {
			return errors.Newf("audience %q has a negative size", a.ID)
		}
		if _, dup := seen[a.ID]; dup {
			return errors.Newf("duplicate audience %q", a.ID)
		}
		seen[a.ID] = struct{}{}
	}
	seen = make(map[string]struct{})
	for i, t := range c.Templates {
		if strings.TrimSpace(t.ID) == "" {
			return errors.Newf("template #%d has no id", i+1)
		}
		if _, dup := seen[t.ID]; dup {
			return errors.Newf("duplicate template %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// Decode reads a catalog document from r.
func Decode(r io.Reader) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, errors.Wrap(err, "decode catalog")
	}
	for i := range c.Templates {
		c.Templates[i].CampaignType = domain.ParseCampaignType(string(c.Templates[i].CampaignType))
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() Catalog {
	c, err := Decode(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads a catalog from path. An empty path yields Default.
func LoadFile(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, errors.Wrap(err, "open catalog")
	}
	defer f.Close()
	return Decode(f)
}

// Provider is an in-memory AudienceProvider and TemplateProvider.
type Provider struct {
	mu        sync.RWMutex
	audiences map[string]domain.Audience
	templates map[string]domain.Template
	order     Catalog
}

var (
	_ port.AudienceProvider = (*Provider)(nil)
	_ port.TemplateProvider = (*Provider)(nil)
)

// NewProvider serves the entries of c.
func NewProvider(c Catalog) *Provider {
	p := &Provider{}
	p.Replace(c)
	return p
}

// Replace swaps the served catalog.
func (p *Provider) Replace(c Catalog) {
	audiences := make(map[string]domain.Audience, len(c.Audiences))
	for _, a := range c.Audiences {
		audiences[a.ID] = a
	}
	templates := make(map[string]domain.Template, len(c.Templates))
	for _, t := range c.Templates {
		templates[t.ID] = t
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.audiences = audiences
	p.templates = templates
	p.order = Catalog{Audiences: slices.Clone(c.Audiences), Templates: slices.Clone(c.Templates)}
}

func (p *Provider) GetAudience(_ context.Context, id string) (domain.Audience, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	a, ok := p.audiences[id]
	if !ok {
		return domain.Audience{}, errors.Wrapf(port.ErrUnknownAudience, "%q", id)
	}
	return a, nil
}

func (p *Provider) ListAudiences(_ context.Context) ([]domain.Audience, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.order.Audiences), nil
}

func (p *Provider) GetTemplate(_ context.Context, id string) (domain.Template, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	t, ok := p.templates[id]
	if !ok {
		return domain.Template{}, errors.Wrapf(port.ErrUnknownTemplate, "%q", id)
	}
	return t, nil
}

func (p *Provider) ListTemplates(_ context.Context) ([]domain.Template, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.order.Templates), nil
}
