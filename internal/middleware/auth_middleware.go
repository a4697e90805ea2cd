package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
	"github.com/yigit/gpacalc/internal/pkg/auth"
)

// ContextKeySessionID holds the authenticated session id in the gin context
const ContextKeySessionID = "sessionID"

// SessionMiddleware authenticates requests by their session token
type SessionMiddleware struct {
	jwtService *auth.JWTService
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(jwtService *auth.JWTService) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService: jwtService,
	}
}

// SessionAuth requires a valid session token in the Authorization header
func (m *SessionMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			if errors.Is(err, apperrors.ErrInvalidFormat) {
				errorDetail = errorDetail.WithDetails("Invalid token format")
			} else {
				errorDetail = errorDetail.WithDetails("Authorization header missing")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		sessionID, err := m.jwtService.ValidateSessionToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"

			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			} else if errors.Is(err, apperrors.ErrInvalidFormat) {
				errorDetails = "Invalid token format"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed").WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// SessionIDFrom returns the session id set by SessionAuth
func SessionIDFrom(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextKeySessionID)
	if !exists {
		return uuid.Nil, false
	}
	sessionID, ok := value.(uuid.UUID)
	return sessionID, ok
}
