package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/app/services"
	"github.com/yigit/gpacalc/internal/middleware"
)

// SessionController handles session lifecycle endpoints
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// StartSession creates a new empty ledger
// @Summary Start a session
// @Description Creates an empty subject ledger and returns the token that addresses it
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.SessionResponse} "Session started"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	token, err := c.sessionService.StartSession(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.SessionResponse{
		SessionID: token.SessionID.String(),
		Token:     token.Token,
		TokenType: "Bearer",
		ExpiresIn: token.ExpiresIn,
	}))
}

// EndSession discards the caller's ledger
// @Summary End a session
// @Description Discards the session ledger and its last result
// @Tags sessions
// @Security BearerAuth
// @Success 204 "Session ended"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions [delete]
func (c *SessionController) EndSession(ctx *gin.Context) {
	sessionID, ok := middleware.SessionIDFrom(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	if err := c.sessionService.EndSession(ctx.Request.Context(), sessionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func respondUnauthorized(ctx *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
