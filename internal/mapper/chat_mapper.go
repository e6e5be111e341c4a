package mapper

import (
	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/model"
)

type ChatMapper struct {
	userMapper *UserMapper
}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{userMapper: NewUserMapper()}
}

func (m *ChatMapper) ToEntity(c *model.Chat) *entity.Chat {
	if c == nil {
		return nil
	}

	return &entity.Chat{
		Id:        c.Id,
		UserId:    c.UserId,
		User:      m.userMapper.ToEntity(c.User),
		CreatedAt: c.CreatedAt,
		UpdatedAt: optionalTime(c.UpdatedAt),
		IsDeleted: c.IsDeleted,
		DeletedAt: c.DeletedAt,
	}
}

func (m *ChatMapper) ToModel(c *entity.Chat) *model.Chat {
	if c == nil {
		return nil
	}

	mod := &model.Chat{
		Id:        c.Id,
		UserId:    c.UserId,
		IsDeleted: c.IsDeleted,
		DeletedAt: c.DeletedAt,
		CreatedAt: c.CreatedAt,
	}
	if c.UpdatedAt != nil {
		mod.UpdatedAt = *c.UpdatedAt
	}
	return mod
}

func (m *ChatMapper) ToEntities(models []*model.Chat) []*entity.Chat {
	entities := make([]*entity.Chat, len(models))
	for i, mod := range models {
		entities[i] = m.ToEntity(mod)
	}
	return entities
}

func (m *ChatMapper) ToModels(chats []*entity.Chat) []*model.Chat {
	models := make([]*model.Chat, len(chats))
	for i, c := range chats {
		models[i] = m.ToModel(c)
	}
	return models
}
