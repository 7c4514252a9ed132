package session

import (
	"context"
	"fmt"
	"time"

	"audit-service/internal/app/config"
	"audit-service/internal/app/contracts"
	"audit-service/internal/app/models"
	"audit-service/internal/pkg/constvars"
	"audit-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	ttl := time.Duration(s.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	return s.RedisRepository.Set(ctx, key, session, ttl)
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	data, err := s.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	return s.RedisRepository.Delete(ctx, key)
}
