package mapper

import (
	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:           u.Id,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		IsStaff:      u.IsStaff,
		IsSuperuser:  u.IsSuperuser,
		Permissions:  []string(u.Permissions),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    optionalTime(u.UpdatedAt),
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	mod := &model.User{
		Id:           u.Id,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		IsStaff:      u.IsStaff,
		IsSuperuser:  u.IsSuperuser,
		Permissions:  datatypes.NewJSONSlice(u.Permissions),
		CreatedAt:    u.CreatedAt,
	}
	if u.UpdatedAt != nil {
		mod.UpdatedAt = *u.UpdatedAt
	}
	return mod
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, len(models))
	for i, mod := range models {
		entities[i] = m.ToEntity(mod)
	}
	return entities
}
