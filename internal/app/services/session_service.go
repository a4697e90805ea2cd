package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/gpacalc/internal/app/repositories"
	"github.com/yigit/gpacalc/internal/pkg/auth"
)

// SessionToken is the handle a client uses to reach its session
type SessionToken struct {
	SessionID uuid.UUID
	Token     string
	ExpiresIn int
}

// SessionService defines the interface for session lifecycle operations
type SessionService interface {
	StartSession(ctx context.Context) (*SessionToken, error)
	EndSession(ctx context.Context, sessionID uuid.UUID) error
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	sessionRepo *repositories.SessionRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(sessionRepo *repositories.SessionRepository, jwtService *auth.JWTService, lgr zerolog.Logger) SessionService {
	return &sessionServiceImpl{
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		logger:      lgr,
	}
}

// StartSession creates an empty ledger and a token bound to it
func (s *sessionServiceImpl) StartSession(ctx context.Context) (*SessionToken, error) {
	sessionID, err := s.sessionRepo.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	token, expiresIn, err := s.jwtService.GenerateSessionToken(sessionID)
	if err != nil {
		// Do not leave an unreachable session behind
		_ = s.sessionRepo.Delete(ctx, sessionID)
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	s.logger.Info().Str("sessionID", sessionID.String()).Int("activeSessions", s.sessionRepo.Count()).Msg("Session started")
	return &SessionToken{
		SessionID: sessionID,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// EndSession discards the session and its ledger
func (s *sessionServiceImpl) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info().Str("sessionID", sessionID.String()).Msg("Session ended")
	return nil
}
