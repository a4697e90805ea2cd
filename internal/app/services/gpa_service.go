package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/gpacalc/internal/app/repositories"
	"github.com/yigit/gpacalc/internal/domain/grading"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// SubjectInput is a subject as received from an input collector
type SubjectInput struct {
	Name     string
	Grade    string
	Units    int
	IsRetake bool
}

// PriorRecord is the externally supplied record of earlier semesters
type PriorRecord struct {
	GPA   float64
	Units int
}

// GPAService defines the interface for ledger and calculation operations
// scoped to a session
type GPAService interface {
	GradeScale() *grading.GradeScale
	ListSubjects(ctx context.Context, sessionID uuid.UUID) ([]grading.Subject, error)
	AddSubject(ctx context.Context, sessionID uuid.UUID, input SubjectInput) (grading.Subject, error)
	RemoveSubject(ctx context.Context, sessionID uuid.UUID, subjectID grading.SubjectID) (remaining int, err error)
	CalculateGPA(ctx context.Context, sessionID uuid.UUID, prior PriorRecord) (grading.GPAResult, error)
	LastResult(ctx context.Context, sessionID uuid.UUID) (grading.GPAResult, error)
}

// gpaServiceImpl implements the GPAService interface
type gpaServiceImpl struct {
	sessionRepo *repositories.SessionRepository
	scale       *grading.GradeScale
	logger      zerolog.Logger
}

// NewGPAService creates a new GPA service instance
func NewGPAService(sessionRepo *repositories.SessionRepository, scale *grading.GradeScale, lgr zerolog.Logger) GPAService {
	return &gpaServiceImpl{
		sessionRepo: sessionRepo,
		scale:       scale,
		logger:      lgr,
	}
}

// GradeScale returns the scale every session ledger uses
func (s *gpaServiceImpl) GradeScale() *grading.GradeScale {
	return s.scale
}

// ListSubjects returns the session's subjects in entry order
func (s *gpaServiceImpl) ListSubjects(ctx context.Context, sessionID uuid.UUID) ([]grading.Subject, error) {
	var subjects []grading.Subject
	err := s.sessionRepo.WithSession(ctx, sessionID, func(session *repositories.Session) error {
		subjects = session.Ledger.Subjects()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// AddSubject appends a subject to the session ledger
func (s *gpaServiceImpl) AddSubject(ctx context.Context, sessionID uuid.UUID, input SubjectInput) (grading.Subject, error) {
	var subject grading.Subject
	err := s.sessionRepo.WithSession(ctx, sessionID, func(session *repositories.Session) error {
		var err error
		subject, err = session.Ledger.AddSubject(input.Name, input.Grade, input.Units, input.IsRetake)
		return err
	})
	if err != nil {
		if vErr, ok := apperrors.AsValidationError(err); ok {
			s.logger.Debug().Str("sessionID", sessionID.String()).Str("field", vErr.Field).Str("reason", string(vErr.Reason)).Msg("Subject rejected")
			return grading.Subject{}, err
		}
		return grading.Subject{}, fmt.Errorf("error adding subject: %w", err)
	}

	s.logger.Debug().
		Str("sessionID", sessionID.String()).
		Int64("subjectID", int64(subject.ID)).
		Str("grade", subject.Grade).
		Int("units", subject.Units).
		Bool("retake", subject.IsRetake).
		Msg("Subject added")
	return subject, nil
}

// RemoveSubject removes a subject if present and returns how many remain.
// Emptying the ledger also clears the last result.
func (s *gpaServiceImpl) RemoveSubject(ctx context.Context, sessionID uuid.UUID, subjectID grading.SubjectID) (int, error) {
	remaining := 0
	err := s.sessionRepo.WithSession(ctx, sessionID, func(session *repositories.Session) error {
		if session.Ledger.RemoveSubject(subjectID) {
			s.logger.Debug().Str("sessionID", sessionID.String()).Int64("subjectID", int64(subjectID)).Msg("Subject removed")
		}
		if session.Ledger.IsEmpty() {
			session.LastResult = nil
		}
		remaining = session.Ledger.Len()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

// CalculateGPA computes the session's GPA and remembers it as the last result
func (s *gpaServiceImpl) CalculateGPA(ctx context.Context, sessionID uuid.UUID, prior PriorRecord) (grading.GPAResult, error) {
	var result grading.GPAResult
	err := s.sessionRepo.WithSession(ctx, sessionID, func(session *repositories.Session) error {
		var err error
		result, err = session.Ledger.CalculateGPA(prior.GPA, prior.Units)
		if err != nil {
			return err
		}
		stored := result
		session.LastResult = &stored
		return nil
	})
	if err != nil {
		return grading.GPAResult{}, err
	}

	s.logger.Info().
		Str("sessionID", sessionID.String()).
		Int("semesterUnits", result.SemesterUnits).
		Int("totalUnits", result.TotalUnits).
		Float64("semesterGpa", result.SemesterGPA).
		Float64("cumulativeGpa", result.CumulativeGPA).
		Msg("GPA calculated")
	return result, nil
}

// LastResult returns the most recent calculation for the session
func (s *gpaServiceImpl) LastResult(ctx context.Context, sessionID uuid.UUID) (grading.GPAResult, error) {
	var result grading.GPAResult
	err := s.sessionRepo.WithSession(ctx, sessionID, func(session *repositories.Session) error {
		if session.LastResult == nil {
			return apperrors.ErrNoResult
		}
		result = *session.LastResult
		return nil
	})
	return result, err
}
