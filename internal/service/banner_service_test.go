package service

import (
	"context"
	"errors"
	"testing"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/internal/repository/contract"
	"banner-chat-be/internal/repository/specification"
	"banner-chat-be/internal/repository/unitofwork"
	"banner-chat-be/pkg/imagecache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// In-memory fakes for the repository surface the banner workflow touches.

type fakeChatRepo struct {
	chats []*entity.Chat
}

func (r *fakeChatRepo) Create(ctx context.Context, chat *entity.Chat) error { return nil }
func (r *fakeChatRepo) CreateInBatches(ctx context.Context, chats []*entity.Chat, batchSize int) error {
	return nil
}
func (r *fakeChatRepo) SoftDeleteByIDs(ctx context.Context, ids []uuid.UUID) error { return nil }
func (r *fakeChatRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	return nil, nil
}
func (r *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	activeOnly := false
	for _, s := range specs {
		if _, ok := s.(specification.ActiveOnly); ok {
			activeOnly = true
		}
	}
	if !activeOnly {
		return r.chats, nil
	}
	active := make([]*entity.Chat, 0, len(r.chats))
	for _, c := range r.chats {
		if !c.IsDeleted {
			active = append(active, c)
		}
	}
	return active, nil
}
func (r *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.chats)), nil
}

type fakeMessageRepo struct {
	created   []*entity.Message
	createErr error
	batchSize int
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error { return nil }
func (r *fakeMessageRepo) CreateInBatches(ctx context.Context, messages []*entity.Message, batchSize int) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, messages...)
	r.batchSize = batchSize
	return nil
}
func (r *fakeMessageRepo) SoftDeleteByIDs(ctx context.Context, ids []uuid.UUID) error { return nil }
func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	return nil, nil
}
func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	return r.created, nil
}
func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.created)), nil
}

type fakeImageRepo struct {
	markedSent []uuid.UUID
	markErr    error
}

func (r *fakeImageRepo) Create(ctx context.Context, image *entity.ExternalImage) error { return nil }
func (r *fakeImageRepo) ExistsByExternalID(ctx context.Context, externalID int) (bool, error) {
	return false, nil
}
func (r *fakeImageRepo) MarkSent(ctx context.Context, id uuid.UUID) error {
	if r.markErr != nil {
		return r.markErr
	}
	r.markedSent = append(r.markedSent, id)
	return nil
}
func (r *fakeImageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExternalImage, error) {
	return nil, nil
}
func (r *fakeImageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExternalImage, error) {
	return nil, nil
}
func (r *fakeImageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeUnitOfWork struct {
	chats    *fakeChatRepo
	messages *fakeMessageRepo
	images   *fakeImageRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }
func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return nil
}
func (u *fakeUnitOfWork) ChatRepository() contract.ChatRepository {
	return u.chats
}
func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository {
	return u.messages
}
func (u *fakeUnitOfWork) ExternalImageRepository() contract.ExternalImageRepository {
	return u.images
}

type fakeUowFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeBannerCache struct {
	image      *imagecache.CachedImage
	consumeErr error
	length     int64
}

func (c *fakeBannerCache) Consume(ctx context.Context, key string) (*imagecache.CachedImage, error) {
	if c.consumeErr != nil {
		return nil, c.consumeErr
	}
	return c.image, nil
}

func (c *fakeBannerCache) Len(ctx context.Context, key string) (int64, error) {
	return c.length, nil
}

type fakeRefillPublisher struct {
	published []string
	err       error
}

func (p *fakeRefillPublisher) PublishRefill(ctx context.Context, cacheKey string) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, cacheKey)
	return nil
}

func newBannerFixture() (*fakeUnitOfWork, *fakeBannerCache, *fakeRefillPublisher, IBannerService) {
	uow := &fakeUnitOfWork{
		chats:    &fakeChatRepo{},
		messages: &fakeMessageRepo{},
		images:   &fakeImageRepo{},
	}
	cache := &fakeBannerCache{length: 10}
	refill := &fakeRefillPublisher{}
	svc := NewBannerService(&fakeUowFactory{uow: uow}, cache, refill, "available_banner_images", 500, logger.NewNoopLogger())
	return uow, cache, refill, svc
}

func TestSendBanners_NoImageAvailable(t *testing.T) {
	uow, cache, _, svc := newBannerFixture()
	cache.image = nil
	uow.chats.chats = []*entity.Chat{{Id: uuid.New()}}

	err := svc.SendBanners(context.Background(), "Hello")
	assert.ErrorIs(t, err, ErrNoImageAvailable)
	assert.Empty(t, uow.messages.created)
}

func TestSendBanners_OneMessagePerActiveChat(t *testing.T) {
	uow, cache, _, svc := newBannerFixture()

	imageID := uuid.New()
	cache.image = &imagecache.CachedImage{
		Id:         imageID,
		ExternalId: 42,
		ImagePath:  "images/42.jpeg",
	}

	active1 := &entity.Chat{Id: uuid.New()}
	active2 := &entity.Chat{Id: uuid.New()}
	deleted := &entity.Chat{Id: uuid.New(), IsDeleted: true}
	uow.chats.chats = []*entity.Chat{active1, active2, deleted}

	err := svc.SendBanners(context.Background(), "Hello")
	assert.NoError(t, err)

	assert.Len(t, uow.messages.created, 2)
	assert.Equal(t, 500, uow.messages.batchSize)
	chatIDs := []uuid.UUID{uow.messages.created[0].ChatId, uow.messages.created[1].ChatId}
	assert.ElementsMatch(t, []uuid.UUID{active1.Id, active2.Id}, chatIDs)
	for _, msg := range uow.messages.created {
		assert.Equal(t, "Hello", msg.Content)
		assert.Equal(t, "images/42.jpeg", msg.ImagePath)
	}

	assert.Equal(t, []uuid.UUID{imageID}, uow.images.markedSent)
}

func TestSendBanners_NoActiveChatsStillMarksSent(t *testing.T) {
	uow, cache, _, svc := newBannerFixture()

	imageID := uuid.New()
	cache.image = &imagecache.CachedImage{Id: imageID, ImagePath: "images/1.jpeg"}
	uow.chats.chats = []*entity.Chat{{Id: uuid.New(), IsDeleted: true}}

	err := svc.SendBanners(context.Background(), "Hello")
	assert.NoError(t, err)
	assert.Empty(t, uow.messages.created)
	assert.Equal(t, []uuid.UUID{imageID}, uow.images.markedSent)
}

func TestSendBanners_BulkInsertFailure(t *testing.T) {
	uow, cache, _, svc := newBannerFixture()

	cache.image = &imagecache.CachedImage{Id: uuid.New(), ImagePath: "images/1.jpeg"}
	uow.chats.chats = []*entity.Chat{{Id: uuid.New()}}
	uow.messages.createErr = errors.New("insert failed")

	err := svc.SendBanners(context.Background(), "Hello")
	assert.ErrorIs(t, err, ErrSendBannersFailed)
	// The image stays unsent so a retry can pick it up.
	assert.Empty(t, uow.images.markedSent)
}

func TestSendBanners_ConsumeFailure(t *testing.T) {
	uow, cache, _, svc := newBannerFixture()
	cache.consumeErr = errors.New("redis exploded")

	err := svc.SendBanners(context.Background(), "Hello")
	assert.ErrorIs(t, err, ErrSendBannersFailed)
	assert.Empty(t, uow.messages.created)
}

func TestSendBanners_RefillTriggeredBelowThreshold(t *testing.T) {
	uow, cache, refill, svc := newBannerFixture()

	cache.image = &imagecache.CachedImage{Id: uuid.New(), ImagePath: "images/1.jpeg"}
	cache.length = imagecache.RefillThreshold - 1
	uow.chats.chats = []*entity.Chat{{Id: uuid.New()}}

	err := svc.SendBanners(context.Background(), "Hello")
	assert.NoError(t, err)
	assert.Equal(t, []string{"available_banner_images"}, refill.published)
}

func TestSendBanners_NoRefillAtThreshold(t *testing.T) {
	uow, cache, refill, svc := newBannerFixture()

	cache.image = &imagecache.CachedImage{Id: uuid.New(), ImagePath: "images/1.jpeg"}
	cache.length = imagecache.RefillThreshold
	uow.chats.chats = []*entity.Chat{{Id: uuid.New()}}

	err := svc.SendBanners(context.Background(), "Hello")
	assert.NoError(t, err)
	assert.Empty(t, refill.published)
}

func TestSendBanners_RefillFailureIsSwallowed(t *testing.T) {
	uow, cache, refill, svc := newBannerFixture()

	cache.image = &imagecache.CachedImage{Id: uuid.New(), ImagePath: "images/1.jpeg"}
	cache.length = 0
	refill.err = errors.New("bus is down")
	uow.chats.chats = []*entity.Chat{{Id: uuid.New()}}

	err := svc.SendBanners(context.Background(), "Hello")
	assert.NoError(t, err)
	assert.Len(t, uow.messages.created, 1)
}
