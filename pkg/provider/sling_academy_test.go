package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/pkg/httpclient"

	"github.com/stretchr/testify/assert"
)

type fakeImageStore struct {
	count     int64
	existing  map[int]bool
	created   []*entity.ExternalImage
	createErr error
}

func (s *fakeImageStore) Count(ctx context.Context) (int64, error) {
	return s.count, nil
}

func (s *fakeImageStore) Exists(ctx context.Context, externalID int) (bool, error) {
	return s.existing[externalID], nil
}

func (s *fakeImageStore) Create(ctx context.Context, image *entity.ExternalImage) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, image)
	return nil
}

type noopAttacher struct{}

func (noopAttacher) Attach(ctx context.Context, image *entity.ExternalImage) {}

func TestSlingAcademyFetch_PagesByStoredCount(t *testing.T) {
	var gotOffset, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOffset = r.URL.Query().Get("offset")
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"photos": [{"id": 43, "url": "https://example.com/43.jpeg"}]}`))
	}))
	defer srv.Close()

	store := &fakeImageStore{count: 42}
	p := NewSlingAcademy(store, httpclient.New(logger.NewNoopLogger()), srv.URL, noopAttacher{}, logger.NewNoopLogger())

	data, err := p.Fetch(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "42", gotOffset)
	assert.Equal(t, "10", gotLimit)
	assert.NotNil(t, data["photos"])
}

func TestSlingAcademyTransform(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]interface{}
		existing map[int]bool
		want     []Candidate
	}{
		{
			name: "skips stored ids",
			data: map[string]interface{}{
				"photos": []interface{}{
					map[string]interface{}{"id": float64(1), "url": "https://example.com/1.jpeg"},
					map[string]interface{}{"id": float64(2), "url": "https://example.com/2.jpeg"},
				},
			},
			existing: map[int]bool{1: true},
			want:     []Candidate{{ExternalID: 2, URL: "https://example.com/2.jpeg"}},
		},
		{
			name:     "missing photos key",
			data:     map[string]interface{}{"success": true},
			existing: nil,
			want:     []Candidate{},
		},
		{
			name: "malformed entries are skipped",
			data: map[string]interface{}{
				"photos": []interface{}{
					"not a photo",
					map[string]interface{}{"url": "no-id.jpeg"},
					map[string]interface{}{"id": float64(7), "url": "https://example.com/7.jpeg"},
				},
			},
			existing: nil,
			want:     []Candidate{{ExternalID: 7, URL: "https://example.com/7.jpeg"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeImageStore{existing: tt.existing}
			p := NewSlingAcademy(store, nil, "", noopAttacher{}, logger.NewNoopLogger())

			got, err := p.Transform(context.Background(), tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlingAcademyTransform_RerunIsIdempotent(t *testing.T) {
	data := map[string]interface{}{
		"photos": []interface{}{
			map[string]interface{}{"id": float64(1), "url": "https://example.com/1.jpeg"},
		},
	}

	store := &fakeImageStore{existing: map[int]bool{}}
	p := NewSlingAcademy(store, nil, "", noopAttacher{}, logger.NewNoopLogger())

	first, err := p.Transform(context.Background(), data)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	// Same page arrives again after the row was stored.
	store.existing[1] = true
	second, err := p.Transform(context.Background(), data)
	assert.NoError(t, err)
	assert.Empty(t, second)
}

func TestSlingAcademyPersist(t *testing.T) {
	store := &fakeImageStore{}
	p := NewSlingAcademy(store, nil, "", noopAttacher{}, logger.NewNoopLogger())

	created, err := p.Persist(context.Background(), []Candidate{
		{ExternalID: 5, URL: "https://example.com/5.jpeg"},
		{ExternalID: 6, URL: "https://example.com/6.jpeg"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Len(t, store.created, 2)
	assert.Equal(t, 5, store.created[0].ExternalId)
	assert.NotEqual(t, store.created[0].Id, store.created[1].Id)
}

func TestSlingAcademyPersist_StopsOnError(t *testing.T) {
	store := &fakeImageStore{createErr: errors.New("duplicate key")}
	p := NewSlingAcademy(store, nil, "", noopAttacher{}, logger.NewNoopLogger())

	created, err := p.Persist(context.Background(), []Candidate{
		{ExternalID: 5, URL: "https://example.com/5.jpeg"},
	})
	assert.Error(t, err)
	assert.Equal(t, 0, created)
}
