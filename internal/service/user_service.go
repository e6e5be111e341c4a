package service

import (
	"context"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/repository/specification"
	"banner-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
}
