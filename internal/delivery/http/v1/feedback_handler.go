package v1

import (
	"net/http"

	"go-hiretrack-backend/internal/delivery/http/middleware"
	"go-hiretrack-backend/internal/delivery/http/response"
	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackUC domain.FeedbackUsecase
}

func NewFeedbackHandler(r *gin.RouterGroup, feedbackUC domain.FeedbackUsecase) {
	handler := &FeedbackHandler{feedbackUC: feedbackUC}

	feedback := r.Group("/feedback")
	{
		feedback.GET("", handler.List)
		feedback.GET("/:id", handler.GetByID)
		feedback.GET("/interview/:interviewId", handler.ListByInterview)

		evaluator := middleware.RequireRoles(domain.RoleAdmin, domain.RoleInterviewer)
		feedback.POST("", evaluator, handler.Create)
		feedback.PUT("/:id", evaluator, handler.Update)
		feedback.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), handler.Delete)
	}
}

type CreateFeedbackRequest struct {
	InterviewID    string  `json:"interviewId" binding:"required"`
	EvaluatorID    string  `json:"evaluatorId" binding:"required"`
	EvaluatorName  string  `json:"evaluatorName" binding:"required"`
	OverallRating  int     `json:"overallRating" binding:"required"`
	Recommendation string  `json:"recommendation" binding:"required"`
	Strengths      string  `json:"strengths"`
	Weaknesses     *string `json:"weaknesses"`
	Notes          *string `json:"notes"`
}

// List godoc
// @Summary      List feedback
// @Tags         feedback
// @Produce      json
// @Success      200  {array}  domain.Feedback
// @Router       /feedback [get]
// @Security     BearerAuth
func (h *FeedbackHandler) List(c *gin.Context) {
	feedback, err := h.feedbackUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, feedback)
}

// ListByInterview godoc
// @Summary      List feedback for an interview
// @Tags         feedback
// @Produce      json
// @Param        interviewId  path     string  true  "Interview ID"
// @Success      200          {array}  domain.Feedback
// @Router       /feedback/interview/{interviewId} [get]
// @Security     BearerAuth
func (h *FeedbackHandler) ListByInterview(c *gin.Context) {
	feedback, err := h.feedbackUC.ListByInterview(c.Request.Context(), c.Param("interviewId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, feedback)
}

// GetByID godoc
// @Summary      Get feedback
// @Tags         feedback
// @Produce      json
// @Param        id   path      string  true  "Feedback ID"
// @Success      200  {object}  domain.Feedback
// @Failure      404  {object}  response.ErrorBody
// @Router       /feedback/{id} [get]
// @Security     BearerAuth
func (h *FeedbackHandler) GetByID(c *gin.Context) {
	feedback, err := h.feedbackUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, feedback)
}

// Create godoc
// @Summary      Submit feedback (admin or interviewer)
// @Description  Submitting feedback marks the interview Completed
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        feedback  body      CreateFeedbackRequest  true  "Feedback JSON"
// @Success      201       {object}  domain.Feedback
// @Failure      400       {object}  response.ErrorBody
// @Failure      404       {object}  response.ErrorBody
// @Router       /feedback [post]
// @Security     BearerAuth
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	feedback := &domain.Feedback{
		InterviewID:    req.InterviewID,
		EvaluatorID:    req.EvaluatorID,
		EvaluatorName:  req.EvaluatorName,
		OverallRating:  req.OverallRating,
		Recommendation: req.Recommendation,
		Strengths:      req.Strengths,
		Weaknesses:     req.Weaknesses,
		Notes:          req.Notes,
	}

	if err := h.feedbackUC.Create(c.Request.Context(), feedback); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, feedback)
}

// Update godoc
// @Summary      Update feedback (admin or interviewer)
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id        path      string                 true  "Feedback ID"
// @Param        feedback  body      domain.FeedbackUpdate  true  "Fields to update"
// @Success      200       {object}  domain.Feedback
// @Failure      404       {object}  response.ErrorBody
// @Router       /feedback/{id} [put]
// @Security     BearerAuth
func (h *FeedbackHandler) Update(c *gin.Context) {
	var upd domain.FeedbackUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	feedback, err := h.feedbackUC.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, feedback)
}

// Delete godoc
// @Summary      Delete feedback (admin only)
// @Tags         feedback
// @Param        id  path  string  true  "Feedback ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /feedback/{id} [delete]
// @Security     BearerAuth
func (h *FeedbackHandler) Delete(c *gin.Context) {
	if err := h.feedbackUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
