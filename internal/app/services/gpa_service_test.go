package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gpacalc/internal/app/repositories"
	"github.com/yigit/gpacalc/internal/domain/grading"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
	"github.com/yigit/gpacalc/internal/pkg/auth"
	"github.com/yigit/gpacalc/internal/pkg/logger"
)

type fixture struct {
	repo     *repositories.SessionRepository
	gpa      GPAService
	sessions SessionService
	jwt      *auth.JWTService
}

func newFixture() *fixture {
	repo := repositories.NewSessionRepository(grading.DefaultScale())
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", TokenExp: time.Hour, TokenIssuer: "test"})
	return &fixture{
		repo:     repo,
		gpa:      NewGPAService(repo, grading.DefaultScale(), logger.Nop()),
		sessions: NewSessionService(repo, jwtService, logger.Nop()),
		jwt:      jwtService,
	}
}

func (f *fixture) start(t *testing.T) uuid.UUID {
	t.Helper()
	token, err := f.sessions.StartSession(context.Background())
	require.NoError(t, err)
	return token.SessionID
}

func TestStartSessionIssuesValidToken(t *testing.T) {
	f := newFixture()

	token, err := f.sessions.StartSession(context.Background())
	require.NoError(t, err)

	sessionID, err := f.jwt.ValidateSessionToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, token.SessionID, sessionID)
	assert.Equal(t, 3600, token.ExpiresIn)
	assert.Equal(t, 1, f.repo.Count())
}

func TestEndSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.start(t)

	require.NoError(t, f.sessions.EndSession(ctx, id))

	_, err := f.gpa.ListSubjects(ctx, id)
	assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))
}

func TestAddListRemoveSubjects(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.start(t)

	math, err := f.gpa.AddSubject(ctx, id, SubjectInput{Name: "Math", Grade: "AA", Units: 3})
	require.NoError(t, err)
	_, err = f.gpa.AddSubject(ctx, id, SubjectInput{Name: "Art", Grade: "CC", Units: 2, IsRetake: true})
	require.NoError(t, err)

	subjects, err := f.gpa.ListSubjects(ctx, id)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Math", subjects[0].Name)
	assert.True(t, subjects[1].IsRetake)

	remaining, err := f.gpa.RemoveSubject(ctx, id, math.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	remaining, err = f.gpa.RemoveSubject(ctx, id, math.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestAddSubjectValidationError(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.start(t)

	_, err := f.gpa.AddSubject(ctx, id, SubjectInput{Name: "Math", Grade: "XX", Units: 3})

	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.FieldGrade, vErr.Field)

	subjects, _ := f.gpa.ListSubjects(ctx, id)
	assert.Empty(t, subjects)
}

func TestCalculateStoresLastResult(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.start(t)

	_, err := f.gpa.LastResult(ctx, id)
	assert.True(t, errors.Is(err, apperrors.ErrNoResult))

	_, _ = f.gpa.AddSubject(ctx, id, SubjectInput{Name: "Databases", Grade: "BB", Units: 3})
	_, _ = f.gpa.AddSubject(ctx, id, SubjectInput{Name: "Networks", Grade: "CC", Units: 3})

	result, err := f.gpa.CalculateGPA(ctx, id, PriorRecord{GPA: 3.0, Units: 30})
	require.NoError(t, err)
	assert.Equal(t, 2.5, result.SemesterGPA)
	assert.Equal(t, 36, result.TotalUnits)

	last, err := f.gpa.LastResult(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, result, last)
}

func TestCalculateFailureKeepsPreviousResult(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.start(t)
	_, _ = f.gpa.AddSubject(ctx, id, SubjectInput{Name: "Math", Grade: "AA", Units: 3})
	first, err := f.gpa.CalculateGPA(ctx, id, PriorRecord{})
	require.NoError(t, err)

	_, err = f.gpa.CalculateGPA(ctx, id, PriorRecord{GPA: 4.5})
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.FieldPreviousGPA, vErr.Field)

	last, err := f.gpa.LastResult(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, first, last)
}

func TestRemovingLastSubjectClearsResult(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.start(t)
	subject, _ := f.gpa.AddSubject(ctx, id, SubjectInput{Name: "Math", Grade: "AA", Units: 3})
	_, err := f.gpa.CalculateGPA(ctx, id, PriorRecord{})
	require.NoError(t, err)

	remaining, err := f.gpa.RemoveSubject(ctx, id, subject.ID)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	_, err = f.gpa.LastResult(ctx, id)
	assert.True(t, errors.Is(err, apperrors.ErrNoResult))

	_, err = f.gpa.CalculateGPA(ctx, id, PriorRecord{})
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ReasonEmptyLedger, vErr.Reason)
}

func TestUnknownSessionIsReported(t *testing.T) {
	f := newFixture()

	_, err := f.gpa.AddSubject(context.Background(), uuid.New(), SubjectInput{Name: "Math", Grade: "AA", Units: 3})

	assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))
}
