package implementation

import (
	"context"
	"errors"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/mapper"
	"banner-chat-be/internal/model"
	"banner-chat-be/internal/repository/contract"
	"banner-chat-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExternalImageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ExternalImageMapper
}

func NewExternalImageRepository(db *gorm.DB) contract.ExternalImageRepository {
	return &ExternalImageRepositoryImpl{
		db:     db,
		mapper: mapper.NewExternalImageMapper(),
	}
}

func (r *ExternalImageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExternalImageRepositoryImpl) Create(ctx context.Context, image *entity.ExternalImage) error {
	m := r.mapper.ToModel(image)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*image = *r.mapper.ToEntity(m)
	return nil
}

func (r *ExternalImageRepositoryImpl) ExistsByExternalID(ctx context.Context, externalID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ExternalImage{}).
		Where("external_id = ?", externalID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ExternalImageRepositoryImpl) MarkSent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.ExternalImage{}).
		Where("id = ?", id).
		Update("was_sent", true).Error
}

func (r *ExternalImageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExternalImage, error) {
	var m model.ExternalImage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ExternalImageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExternalImage, error) {
	var models []*model.ExternalImage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ExternalImageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ExternalImage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
