package service

import (
	"context"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/repository/specification"
	"banner-chat-be/internal/repository/unitofwork"
	"banner-chat-be/pkg/imagecache"
	"banner-chat-be/pkg/provider"
)

// Adapters exposing the external-image repository behind the narrow
// interfaces pkg/provider and pkg/imagecache consume.

type providerImageStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProviderImageStore(uowFactory unitofwork.RepositoryFactory) provider.ImageStore {
	return &providerImageStore{uowFactory: uowFactory}
}

func (s *providerImageStore) Count(ctx context.Context) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ExternalImageRepository().Count(ctx)
}

func (s *providerImageStore) Exists(ctx context.Context, externalID int) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ExternalImageRepository().ExistsByExternalID(ctx, externalID)
}

func (s *providerImageStore) Create(ctx context.Context, image *entity.ExternalImage) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ExternalImageRepository().Create(ctx, image)
}

type cacheImageSource struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCacheImageSource(uowFactory unitofwork.RepositoryFactory) imagecache.ImageSource {
	return &cacheImageSource{uowFactory: uowFactory}
}

func (s *cacheImageSource) ListUnsent(ctx context.Context, limit int) ([]*entity.ExternalImage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ExternalImageRepository().FindAll(ctx,
		specification.NotSent{},
		specification.OrderBy{Field: "external_id"},
		specification.Pagination{Limit: limit},
	)
}

func (s *cacheImageSource) FirstUnsent(ctx context.Context) (*entity.ExternalImage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ExternalImageRepository().FindOne(ctx,
		specification.NotSent{},
		specification.OrderBy{Field: "external_id"},
	)
}
