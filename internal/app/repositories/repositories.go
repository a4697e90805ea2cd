package repositories

import (
	"github.com/yigit/gpacalc/internal/domain/grading"
)

// Repositories holds all the repository instances
type Repositories struct {
	SessionRepository *SessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(scale *grading.GradeScale) *Repositories {
	return &Repositories{
		SessionRepository: NewSessionRepository(scale),
	}
}
