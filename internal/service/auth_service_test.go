package service

import (
	"context"
	"testing"

	"banner-chat-be/internal/dto"
	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/repository/contract"
	"banner-chat-be/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) CreateInBatches(ctx context.Context, users []*entity.User, batchSize int) error {
	return nil
}
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, s := range specs {
		if byName, ok := s.(specification.ByUsername); ok {
			return r.byUsername[byName.Username], nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type authUnitOfWork struct {
	*fakeUnitOfWork
	users *fakeUserRepo
}

func (u *authUnitOfWork) UserRepository() contract.UserRepository {
	return u.users
}

func newAuthFixture(t *testing.T) (*fakeUserRepo, IAuthService) {
	t.Helper()
	users := &fakeUserRepo{byUsername: map[string]*entity.User{}}
	uow := &authUnitOfWork{
		fakeUnitOfWork: &fakeUnitOfWork{
			chats:    &fakeChatRepo{},
			messages: &fakeMessageRepo{},
			images:   &fakeImageRepo{},
		},
		users: users,
	}
	return users, NewAuthService(&fakeUowFactory{uow: uow}, "test-secret")
}

func addUser(t *testing.T, repo *fakeUserRepo, username, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	user := &entity.User{
		Id:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
	}
	repo.byUsername[username] = user
	return user
}

func TestLogin_Success(t *testing.T) {
	users, svc := newAuthFixture(t)
	user := addUser(t, users, "admin", "secret")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "secret"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.Id.String(), claims["user_id"])
}

func TestLogin_WrongPassword(t *testing.T) {
	users, svc := newAuthFixture(t)
	addUser(t, users, "admin", "secret")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
