package mapper

import (
	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/model"
)

type MessageMapper struct {
	chatMapper *ChatMapper
}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{chatMapper: NewChatMapper()}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Chat:      m.chatMapper.ToEntity(msg.Chat),
		Content:   msg.Content,
		ImagePath: msg.ImagePath,
		CreatedAt: msg.CreatedAt,
		UpdatedAt: optionalTime(msg.UpdatedAt),
		IsDeleted: msg.IsDeleted,
		DeletedAt: msg.DeletedAt,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	mod := &model.Message{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Content:   msg.Content,
		ImagePath: msg.ImagePath,
		IsDeleted: msg.IsDeleted,
		DeletedAt: msg.DeletedAt,
		CreatedAt: msg.CreatedAt,
	}
	if msg.UpdatedAt != nil {
		mod.UpdatedAt = *msg.UpdatedAt
	}
	return mod
}

func (m *MessageMapper) ToEntities(models []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(models))
	for i, mod := range models {
		entities[i] = m.ToEntity(mod)
	}
	return entities
}

func (m *MessageMapper) ToModels(msgs []*entity.Message) []*model.Message {
	models := make([]*model.Message, len(msgs))
	for i, msg := range msgs {
		models[i] = m.ToModel(msg)
	}
	return models
}
