package v1

import (
	"net/http"

	"go-hiretrack-backend/internal/delivery/http/middleware"
	"go-hiretrack-backend/internal/delivery/http/response"
	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/interviews")
	{
		interviews.GET("", handler.List)
		interviews.GET("/:id", handler.GetByID)
		interviews.GET("/candidate/:candidateId", handler.ListByCandidate)

		scheduler := middleware.RequireRoles(domain.RoleAdmin, domain.RoleInterviewer)
		interviews.POST("", scheduler, handler.Create)
		interviews.PUT("/:id", scheduler, handler.Update)
		interviews.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), handler.Delete)
	}
}

type CreateInterviewRequest struct {
	CandidateID   string   `json:"candidateId" binding:"required"`
	CandidateName string   `json:"candidateName" binding:"required"`
	Position      string   `json:"position" binding:"required"`
	Type          string   `json:"type" binding:"required"`
	Status        string   `json:"status" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	StartTime     string   `json:"startTime" binding:"required"`
	EndTime       string   `json:"endTime" binding:"required"`
	Interviewers  []string `json:"interviewers" binding:"required"`
	Location      *string  `json:"location"`
	VideoLink     *string  `json:"videoLink"`
	Notes         *string  `json:"notes"`
	TimeZone      *string  `json:"timeZone"`
}

// List godoc
// @Summary      List interviews
// @Tags         interviews
// @Produce      json
// @Success      200  {array}  domain.Interview
// @Router       /interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) List(c *gin.Context) {
	interviews, err := h.interviewUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, interviews)
}

// ListByCandidate godoc
// @Summary      List a candidate's interviews
// @Tags         interviews
// @Produce      json
// @Param        candidateId  path     string  true  "Candidate ID"
// @Success      200          {array}  domain.Interview
// @Router       /interviews/candidate/{candidateId} [get]
// @Security     BearerAuth
func (h *InterviewHandler) ListByCandidate(c *gin.Context) {
	interviews, err := h.interviewUC.ListByCandidate(c.Request.Context(), c.Param("candidateId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, interviews)
}

// GetByID godoc
// @Summary      Get an interview with its feedback
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  domain.InterviewDetails
// @Failure      404  {object}  response.ErrorBody
// @Router       /interviews/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetByID(c *gin.Context) {
	interview, err := h.interviewUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, interview)
}

// Create godoc
// @Summary      Schedule an interview (admin or interviewer)
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      CreateInterviewRequest  true  "Interview JSON"
// @Success      201        {object}  domain.Interview
// @Failure      400        {object}  response.ErrorBody
// @Failure      404        {object}  response.ErrorBody
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Create(c *gin.Context) {
	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	interview := &domain.Interview{
		CandidateID:   req.CandidateID,
		CandidateName: req.CandidateName,
		Position:      req.Position,
		Type:          req.Type,
		Status:        req.Status,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Interviewers:  req.Interviewers,
		Location:      req.Location,
		VideoLink:     req.VideoLink,
		Notes:         req.Notes,
		TimeZone:      req.TimeZone,
	}

	if err := h.interviewUC.Create(c.Request.Context(), interview); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, interview)
}

// Update godoc
// @Summary      Update an interview (admin or interviewer)
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id         path      string                  true  "Interview ID"
// @Param        interview  body      domain.InterviewUpdate  true  "Fields to update"
// @Success      200        {object}  domain.Interview
// @Failure      404        {object}  response.ErrorBody
// @Router       /interviews/{id} [put]
// @Security     BearerAuth
func (h *InterviewHandler) Update(c *gin.Context) {
	var upd domain.InterviewUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	interview, err := h.interviewUC.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, interview)
}

// Delete godoc
// @Summary      Delete an interview (admin only)
// @Tags         interviews
// @Param        id  path  string  true  "Interview ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /interviews/{id} [delete]
// @Security     BearerAuth
func (h *InterviewHandler) Delete(c *gin.Context) {
	if err := h.interviewUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
