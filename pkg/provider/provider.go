package provider

import (
	"context"
	"errors"
	"strings"

	"banner-chat-be/internal/entity"
)

// ErrUnsupported signals a provider name the factory does not know.
// Fatal to the requesting invocation only.
var ErrUnsupported = errors.New("provider not supported")

// Candidate is one normalized record produced by Transform.
type Candidate struct {
	ExternalID int
	URL        string
}

// Provider is a pluggable source of external images. The job runner
// executes the three steps in strict sequence: Fetch has no side
// effects, Transform filters out records already stored locally,
// Persist creates one row per remaining candidate.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) (map[string]interface{}, error)
	Transform(ctx context.Context, data map[string]interface{}) ([]Candidate, error)
	Persist(ctx context.Context, candidates []Candidate) (int, error)
}

// ImageStore is the persistence surface a provider needs.
type ImageStore interface {
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, externalID int) (bool, error)
	Create(ctx context.Context, image *entity.ExternalImage) error
}

// Attacher downloads and attaches the local image file before the first save.
type Attacher interface {
	Attach(ctx context.Context, image *entity.ExternalImage)
}

// Factory resolves providers by case-insensitive name.
type Factory struct {
	providers map[string]Provider
}

func NewFactory(providers ...Provider) *Factory {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[strings.ToLower(p.Name())] = p
	}
	return &Factory{providers: byName}
}

func (f *Factory) Get(name string) (Provider, error) {
	p, ok := f.providers[strings.ToLower(name)]
	if !ok {
		return nil, ErrUnsupported
	}
	return p, nil
}
