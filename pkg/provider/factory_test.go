package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	name string
}

func (p stubProvider) Name() string { return p.name }
func (p stubProvider) Fetch(ctx context.Context) (map[string]interface{}, error) {
	return nil, nil
}
func (p stubProvider) Transform(ctx context.Context, data map[string]interface{}) ([]Candidate, error) {
	return nil, nil
}
func (p stubProvider) Persist(ctx context.Context, candidates []Candidate) (int, error) {
	return 0, nil
}

func TestFactoryGet(t *testing.T) {
	factory := NewFactory(stubProvider{name: "sling_academy"})

	p, err := factory.Get("sling_academy")
	assert.NoError(t, err)
	assert.Equal(t, "sling_academy", p.Name())
}

func TestFactoryGet_CaseInsensitive(t *testing.T) {
	factory := NewFactory(stubProvider{name: "Sling_Academy"})

	p, err := factory.Get("SLING_ACADEMY")
	assert.NoError(t, err)
	assert.NotNil(t, p)
}

func TestFactoryGet_Unknown(t *testing.T) {
	factory := NewFactory(stubProvider{name: "sling_academy"})

	_, err := factory.Get("unsplash")
	assert.ErrorIs(t, err, ErrUnsupported)
}
