package mapper

import (
	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/model"
)

type ExternalImageMapper struct{}

func NewExternalImageMapper() *ExternalImageMapper {
	return &ExternalImageMapper{}
}

func (m *ExternalImageMapper) ToEntity(img *model.ExternalImage) *entity.ExternalImage {
	if img == nil {
		return nil
	}

	return &entity.ExternalImage{
		Id:         img.Id,
		ExternalId: img.ExternalId,
		URL:        img.URL,
		ImagePath:  img.ImagePath,
		WasSent:    img.WasSent,
		CreatedAt:  img.CreatedAt,
		UpdatedAt:  optionalTime(img.UpdatedAt),
	}
}

func (m *ExternalImageMapper) ToModel(img *entity.ExternalImage) *model.ExternalImage {
	if img == nil {
		return nil
	}

	mod := &model.ExternalImage{
		Id:         img.Id,
		ExternalId: img.ExternalId,
		URL:        img.URL,
		ImagePath:  img.ImagePath,
		WasSent:    img.WasSent,
		CreatedAt:  img.CreatedAt,
	}
	if img.UpdatedAt != nil {
		mod.UpdatedAt = *img.UpdatedAt
	}
	return mod
}

func (m *ExternalImageMapper) ToEntities(models []*model.ExternalImage) []*entity.ExternalImage {
	entities := make([]*entity.ExternalImage, len(models))
	for i, mod := range models {
		entities[i] = m.ToEntity(mod)
	}
	return entities
}
