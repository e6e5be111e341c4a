package service

import (
	"context"

	"banner-chat-be/internal/dto"
	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/internal/repository/specification"
	"banner-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IChatAdminService interface {
	List(ctx context.Context, page, perPage int, filter dto.ChatListFilter) (*dto.ListChatsResponse, error)
	DeleteSelected(ctx context.Context, ids []uuid.UUID) error
}

type chatAdminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewChatAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IChatAdminService {
	return &chatAdminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *chatAdminService) List(ctx context.Context, page, perPage int, filter dto.ChatListFilter) (*dto.ListChatsResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}

	filters := []specification.Specification{}
	if filter.UserId != nil {
		filters = append(filters, specification.ByUserID{UserID: *filter.UserId})
	}
	if filter.IsDeleted != nil {
		filters = append(filters, specification.Filter("is_deleted", *filter.IsDeleted))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ChatRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	chats, err := uow.ChatRepository().FindAll(ctx, append(filters,
		specification.WithUser{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChatListItem, len(chats))
	for i, chat := range chats {
		item := dto.ChatListItem{
			Id:        chat.Id,
			CreatedAt: chat.CreatedAt,
			UpdatedAt: chat.UpdatedAt,
			IsDeleted: chat.IsDeleted,
		}
		if chat.User != nil {
			item.Username = chat.User.Username
		}
		items[i] = item
	}

	return &dto.ListChatsResponse{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func (s *chatAdminService) DeleteSelected(ctx context.Context, ids []uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatRepository().SoftDeleteByIDs(ctx, ids); err != nil {
		return err
	}
	s.logger.Info("admin", "Chats soft deleted", map[string]interface{}{"count": len(ids)})
	return nil
}
