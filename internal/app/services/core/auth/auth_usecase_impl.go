package auth

import (
	"context"
	"sync"

	"audit-service/internal/app/config"
	"audit-service/internal/app/contracts"
	"audit-service/internal/app/models"
	"audit-service/internal/pkg/dto/requests"
	"audit-service/internal/pkg/dto/responses"
	"audit-service/internal/pkg/exceptions"
	"audit-service/internal/pkg/utils"

	"github.com/google/uuid"
)

const defaultUserRole = "auditor"

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			InternalConfig: internalConfig,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.UserRepository.FindByEmailOrUsername(ctx, request.Email, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Email == request.Email {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Username: request.Username,
		Password: hashedPassword,
		Role:     defaultUserRole,
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Register{
		UserID:   userID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}
	if err := uc.SessionService.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return exceptions.ErrSessionNotFound(nil)
	}
	return uc.SessionService.DeleteSession(ctx, sessionID)
}
