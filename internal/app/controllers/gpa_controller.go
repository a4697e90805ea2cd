package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/app/services"
	"github.com/yigit/gpacalc/internal/domain/grading"
	"github.com/yigit/gpacalc/internal/middleware"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
	"github.com/yigit/gpacalc/internal/pkg/i18n"
)

// GPAController handles subject ledger and GPA endpoints
type GPAController struct {
	gpaService services.GPAService
	catalog    *i18n.Catalog
}

// NewGPAController creates a new GPAController
func NewGPAController(gpaService services.GPAService, catalog *i18n.Catalog) *GPAController {
	return &GPAController{
		gpaService: gpaService,
		catalog:    catalog,
	}
}

// GetGradeScale lists the grade scale
// @Summary Get the grade scale
// @Description Lists every grade symbol with its point value in display order
// @Tags grading
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.GradeScaleResponse} "Grade scale"
// @Router /grade-scale [get]
func (c *GPAController) GetGradeScale(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewGradeScaleResponse(c.gpaService.GradeScale())))
}

// ListSubjects returns the session's subject table
// @Summary List subjects
// @Description Returns the subjects of the current session in entry order
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param lang query string false "Label language" Enums(en-US, ar)
// @Success 200 {object} dto.APIResponse{data=dto.SubjectListResponse} "Subjects retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /subjects [get]
func (c *GPAController) ListSubjects(ctx *gin.Context) {
	sessionID, ok := middleware.SessionIDFrom(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	subjects, err := c.gpaService.ListSubjects(ctx.Request.Context(), sessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.NewSubjectListResponse(subjects, c.gpaService.GradeScale(), c.catalog, middleware.LocaleFrom(ctx)),
	))
}

// AddSubject appends a subject to the session ledger
// @Summary Add a subject
// @Description Validates and appends a subject; its points are grade points times units
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lang query string false "Label language" Enums(en-US, ar)
// @Param request body dto.AddSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=dto.SubjectResponse} "Subject added"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /subjects [post]
func (c *GPAController) AddSubject(ctx *gin.Context) {
	sessionID, ok := middleware.SessionIDFrom(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.AddSubjectRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	units, err := grading.ParseUnits(req.Units.String())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	subject, err := c.gpaService.AddSubject(ctx.Request.Context(), sessionID, services.SubjectInput{
		Name:     req.Name,
		Grade:    req.Grade,
		Units:    units,
		IsRetake: req.IsRetake,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(
		dto.NewSubjectResponse(subject, c.gpaService.GradeScale(), c.catalog, middleware.LocaleFrom(ctx)),
	))
}

// RemoveSubject deletes a subject from the session ledger
// @Summary Remove a subject
// @Description Removes the subject with the given id; unknown ids are ignored
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=dto.RemoveSubjectResponse} "Subject removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /subjects/{id} [delete]
func (c *GPAController) RemoveSubject(ctx *gin.Context) {
	sessionID, ok := middleware.SessionIDFrom(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Subject ID must be a valid number"))
		return
	}

	remaining, err := c.gpaService.RemoveSubject(ctx.Request.Context(), sessionID, grading.SubjectID(id))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RemoveSubjectResponse{
		Remaining: remaining,
		Empty:     remaining == 0,
	}))
}

// CalculateGPA computes semester and cumulative GPA
// @Summary Calculate GPA
// @Description Computes the semester GPA of the ledger and the cumulative GPA including the prior record
// @Tags gpa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lang query string false "Label language" Enums(en-US, ar)
// @Param request body dto.CalculateGPARequest false "Prior record; missing values count as zero"
// @Success 200 {object} dto.APIResponse{data=dto.GPAResultResponse} "GPA calculated"
// @Failure 400 {object} dto.ErrorResponse "Invalid prior record or empty ledger"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /gpa [post]
func (c *GPAController) CalculateGPA(ctx *gin.Context) {
	sessionID, ok := middleware.SessionIDFrom(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CalculateGPARequest
	if !middleware.BindOptionalAndValidate(ctx, &req) {
		return
	}

	prior := services.PriorRecord{}
	if req.PreviousGPA != nil {
		prior.GPA = *req.PreviousGPA
	}
	units, err := grading.ParsePriorUnits(req.PreviousUnits.String())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	prior.Units = units

	result, err := c.gpaService.CalculateGPA(ctx.Request.Context(), sessionID, prior)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewGPAResultResponse(result, c.catalog, middleware.LocaleFrom(ctx))))
}

// GetLastResult returns the most recent calculation
// @Summary Get the last GPA result
// @Description Returns the most recent successful calculation of the session
// @Tags gpa
// @Produce json
// @Security BearerAuth
// @Param lang query string false "Label language" Enums(en-US, ar)
// @Success 200 {object} dto.APIResponse{data=dto.GPAResultResponse} "Last result"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Session not found or nothing calculated yet"
// @Router /gpa [get]
func (c *GPAController) GetLastResult(ctx *gin.Context) {
	sessionID, ok := middleware.SessionIDFrom(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	result, err := c.gpaService.LastResult(ctx.Request.Context(), sessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewGPAResultResponse(result, c.catalog, middleware.LocaleFrom(ctx))))
}
