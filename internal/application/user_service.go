package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/photocards/internal/domain/entity"
	repo "github.com/oksasatya/photocards/internal/domain/repository"
	"github.com/oksasatya/photocards/pkg/apperror"
	"github.com/oksasatya/photocards/pkg/helpers"
	"github.com/oksasatya/photocards/pkg/validation"
)

const (
	msgInvalidData        = "invalid data passed"
	msgInvalidID          = "invalid id passed"
	msgInvalidCredentials = "incorrect email or password"
	msgEmailTaken         = "a user with this email is already registered"
	msgUserNotFound       = "user with the given id not found"
)

type UserService struct {
	Repo       repo.UserRepository
	JWT        *helpers.JWTManager
	BcryptCost int
	Logger     logrus.FieldLogger
}

func NewUserService(repo repo.UserRepository, jwt *helpers.JWTManager, bcryptCost int, logger logrus.FieldLogger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, BcryptCost: bcryptCost, Logger: logger}
}

type CreateUserInput struct {
	Name     string
	About    string
	Avatar   string
	Email    string
	Password string
}

// userError maps repository failures shared by the user read/update paths
func userError(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return apperror.NotFound(msgUserNotFound)
	case errors.Is(err, repo.ErrInvalidID):
		return apperror.BadRequest(msgInvalidID, nil)
	case errors.Is(err, repo.ErrInvalidDocument):
		return apperror.BadRequest(msgInvalidData, nil)
	default:
		return apperror.Internal(err)
	}
}

// CreateUser registers a profile and returns it without the password.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	u := &entity.User{Name: in.Name, About: in.About, Avatar: in.Avatar, Email: in.Email}
	u.ApplyDefaults()
	if err := validation.Struct(u); err != nil {
		return nil, apperror.BadRequest(msgInvalidData, validation.ToDetails(err))
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if errors.Is(err, helpers.ErrPasswordTooLong) {
		// multi-byte passwords can pass a rune-count limit and still exceed bcrypt's byte limit
		return nil, apperror.BadRequest(msgInvalidData, map[string]string{
			"password": fmt.Sprintf("must be at most %d bytes long", helpers.MaxPasswordBytes),
		})
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	u.Password = hash

	if err := s.Repo.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, apperror.Conflict(msgEmailTaken)
		case errors.Is(err, repo.ErrInvalidDocument):
			return nil, apperror.BadRequest(msgInvalidData, nil)
		default:
			return nil, apperror.Internal(err)
		}
	}
	if s.Logger != nil {
		helpers.LogInfo(s.Logger, "user registered", helpers.UserFields(u.ID, ""))
	}
	own := u.Own()
	return &own, nil
}

// Authenticate validates email/password. Unknown email and wrong password
// produce the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, apperror.Internal(err)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}
	return u, nil
}

// Login authenticates and issues a bearer token
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	token, _, err := s.JWT.IssueToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			helpers.LogError(s.Logger, "issue token failed", err, helpers.UserFields(u.ID, ""))
		}
		return "", apperror.Internal(err)
	}
	return token, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, userError(err)
	}
	return u, nil
}

// GetSelf returns the caller's own profile, email included
func (s *UserService) GetSelf(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetOwn(ctx, userID)
	if err != nil {
		return nil, userError(err)
	}
	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID, name, about string) (*entity.User, error) {
	probe := entity.User{Name: name, About: about, Avatar: entity.DefaultUserAvatar}
	if err := validation.Struct(probe); err != nil {
		return nil, apperror.BadRequest(msgInvalidData, validation.ToDetails(err))
	}
	u, err := s.Repo.UpdateProfile(ctx, userID, name, about)
	if err != nil {
		return nil, userError(err)
	}
	return u, nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatar string) (*entity.User, error) {
	if !validation.URLPattern.MatchString(avatar) {
		return nil, apperror.BadRequest(msgInvalidData, map[string]string{"avatar": "must be a valid URL"})
	}
	u, err := s.Repo.UpdateAvatar(ctx, userID, avatar)
	if err != nil {
		return nil, userError(err)
	}
	return u, nil
}
