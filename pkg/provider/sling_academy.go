package provider

import (
	"context"
	"net/url"
	"strconv"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/pkg/httpclient"

	"github.com/google/uuid"
)

const (
	slingAcademyName = "sling_academy"
	// pageSize is fixed; the offset is the running count of stored
	// images, so successive runs page forward monotonically.
	pageSize = 10
)

type SlingAcademy struct {
	store    ImageStore
	client   *httpclient.Client
	baseURL  string
	attacher Attacher
	logger   logger.ILogger
}

func NewSlingAcademy(store ImageStore, client *httpclient.Client, baseURL string, attacher Attacher, log logger.ILogger) *SlingAcademy {
	return &SlingAcademy{
		store:    store,
		client:   client,
		baseURL:  baseURL,
		attacher: attacher,
		logger:   log,
	}
}

func (p *SlingAcademy) Name() string {
	return slingAcademyName
}

func (p *SlingAcademy) Fetch(ctx context.Context) (map[string]interface{}, error) {
	offset, err := p.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("offset", strconv.FormatInt(offset, 10))
	params.Set("limit", strconv.Itoa(pageSize))

	return p.client.GetJSON(ctx, p.baseURL, params)
}

// Transform extracts the photos list and emits a candidate for every
// entry whose external id is not stored yet. The pre-filter keeps the
// common case away from the uniqueness constraint; a concurrent insert
// can still surface as a duplicate-key error in Persist.
func (p *SlingAcademy) Transform(ctx context.Context, data map[string]interface{}) ([]Candidate, error) {
	photos, _ := data["photos"].([]interface{})

	candidates := make([]Candidate, 0, len(photos))
	for _, raw := range photos {
		photo, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		id, ok := photo["id"].(float64)
		if !ok {
			continue
		}
		photoURL, _ := photo["url"].(string)

		externalID := int(id)
		exists, err := p.store.Exists(ctx, externalID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		candidates = append(candidates, Candidate{ExternalID: externalID, URL: photoURL})
	}
	return candidates, nil
}

func (p *SlingAcademy) Persist(ctx context.Context, candidates []Candidate) (int, error) {
	created := 0
	for _, c := range candidates {
		image := &entity.ExternalImage{
			Id:         uuid.New(),
			ExternalId: c.ExternalID,
			URL:        c.URL,
		}
		p.attacher.Attach(ctx, image)
		if err := p.store.Create(ctx, image); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
