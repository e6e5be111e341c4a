package service

import (
	"context"

	"banner-chat-be/internal/dto"
	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/internal/repository/specification"
	"banner-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMessageAdminService interface {
	List(ctx context.Context, page, perPage int, filter dto.MessageListFilter) (*dto.ListMessagesResponse, error)
	DeleteSelected(ctx context.Context, ids []uuid.UUID) error
}

type messageAdminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewMessageAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IMessageAdminService {
	return &messageAdminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *messageAdminService) List(ctx context.Context, page, perPage int, filter dto.MessageListFilter) (*dto.ListMessagesResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}

	filters := []specification.Specification{}
	if filter.ChatId != nil {
		filters = append(filters, specification.Filter("chat_id", *filter.ChatId))
	}
	if filter.IsDeleted != nil {
		filters = append(filters, specification.Filter("is_deleted", *filter.IsDeleted))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.MessageRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	messages, err := uow.MessageRepository().FindAll(ctx, append(filters,
		specification.WithChatUser{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MessageListItem, len(messages))
	for i, msg := range messages {
		item := dto.MessageListItem{
			Id:        msg.Id,
			Content:   msg.Content,
			ImagePath: msg.ImagePath,
			CreatedAt: msg.CreatedAt,
			UpdatedAt: msg.UpdatedAt,
			IsDeleted: msg.IsDeleted,
		}
		if msg.Chat != nil && msg.Chat.User != nil {
			item.Username = msg.Chat.User.Username
		}
		items[i] = item
	}

	return &dto.ListMessagesResponse{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func (s *messageAdminService) DeleteSelected(ctx context.Context, ids []uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MessageRepository().SoftDeleteByIDs(ctx, ids); err != nil {
		return err
	}
	s.logger.Info("admin", "Messages soft deleted", map[string]interface{}{"count": len(ids)})
	return nil
}
