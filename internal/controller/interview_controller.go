package controller

import (
	"errors"

	"github.com/Dhanushraagav/ai-interview-platform/internal/service"
	"github.com/Dhanushraagav/ai-interview-platform/internal/util"

	"github.com/gin-gonic/gin"
)

type InterviewController struct {
	InterviewService *service.InterviewService
}

func NewInterviewController(interviewService *service.InterviewService) *InterviewController {
	return &InterviewController{InterviewService: interviewService}
}

// swagger:model StartInterviewRequest
type StartInterviewRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// swagger:model AnswerRequest
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// GetTopics godoc
// @Summary List interview topics
// @Tags interview
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "OK"
// @Router /api/topics [get]
func (c *InterviewController) GetTopics(ctx *gin.Context) {
	util.Success(ctx, gin.H{"topics": c.InterviewService.Topics()})
}

// StartInterview godoc
// @Summary Start an interview session
// @Description Create a session for the chosen topic and return its first question
// @Tags interview
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body StartInterviewRequest true "Interview topic"
// @Success 201 {object} util.Response{data=service.StartResult} "Created"
// @Failure 400 {object} util.Response "Unknown topic"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/interviews [post]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	var req StartInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.InterviewService.Start(claims.Username, req.Topic)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Score the answer to the session's current question and advance it
// @Tags interview
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path string        true "Session ID"
// @Param   body body AnswerRequest true "Answer text"
// @Success 200 {object} util.Response{data=service.SubmitResult} "OK"
// @Failure 400 {object} util.Response "Interview already completed"
// @Failure 403 {object} util.Response "Session belongs to another user"
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/interviews/{id}/answers [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.InterviewService.Submit(claims.Username, ctx.Param("id"), req.Answer)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// GetStatus godoc
// @Summary Session status
// @Tags interview
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Session ID"
// @Success 200 {object} util.Response{data=service.Status} "OK"
// @Failure 403 {object} util.Response "Session belongs to another user"
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/interviews/{id}/status [get]
func (c *InterviewController) GetStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	status, err := c.InterviewService.GetStatus(claims.Username, ctx.Param("id"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, status)
}

// GetReport godoc
// @Summary Final interview report
// @Description Full question/answer/score breakdown of a completed session
// @Tags interview
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Session ID"
// @Success 200 {object} util.Response{data=service.Report} "OK"
// @Failure 400 {object} util.Response "Interview not yet completed"
// @Failure 403 {object} util.Response "Session belongs to another user"
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/interviews/{id}/report [get]
func (c *InterviewController) GetReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	report, err := c.InterviewService.GetReport(claims.Username, ctx.Param("id"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// ListSessions godoc
// @Summary List own sessions
// @Tags interview
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "OK"
// @Router /api/interviews [get]
func (c *InterviewController) ListSessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	util.Success(ctx, gin.H{"sessions": c.InterviewService.ListSessions(claims.Username)})
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags interview
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Session ID"
// @Success 200 {object} util.Response "OK"
// @Failure 403 {object} util.Response "Session belongs to another user"
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/interviews/{id} [delete]
func (c *InterviewController) DeleteSession(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.InterviewService.DeleteSession(claims.Username, ctx.Param("id")); err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// renderError maps the domain's sentinel errors onto HTTP status codes.
func (c *InterviewController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrSessionAccessDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrUnknownTopic),
		errors.Is(err, util.ErrEmptyQuestionList),
		errors.Is(err, util.ErrSessionCompleted),
		errors.Is(err, util.ErrNoCurrentQuestion),
		errors.Is(err, util.ErrReportNotReady):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
