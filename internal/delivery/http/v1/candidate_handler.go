package v1

import (
	"net/http"

	"go-hiretrack-backend/internal/delivery/http/middleware"
	"go-hiretrack-backend/internal/delivery/http/response"
	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.GetByID)

		adminOnly := middleware.RequireRoles(domain.RoleAdmin)
		candidates.POST("", adminOnly, handler.Create)
		candidates.PUT("/:id", adminOnly, handler.Update)
		candidates.DELETE("/:id", adminOnly, handler.Delete)
	}
}

type SkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type CreateCandidateRequest struct {
	FirstName   string         `json:"firstName" binding:"required"`
	LastName    string         `json:"lastName" binding:"required"`
	Email       string         `json:"email" binding:"required,email"`
	Phone       *string        `json:"phone"`
	Status      string         `json:"status" binding:"required"`
	Position    string         `json:"position" binding:"required"`
	Department  *string        `json:"department"`
	Source      *string        `json:"source"`
	AppliedDate string         `json:"appliedDate"`
	Skills      []SkillRequest `json:"skills"`
}

// List godoc
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Success      200  {array}  domain.Candidate
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidates)
}

// GetByID godoc
// @Summary      Get a candidate with skills, interviews and offers
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  domain.CandidateDetails
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetByID(c *gin.Context) {
	candidate, err := h.candidateUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidate)
}

// Create godoc
// @Summary      Create a candidate (admin only)
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CreateCandidateRequest  true  "Candidate JSON"
// @Success      201        {object}  domain.Candidate
// @Failure      400        {object}  response.ErrorBody
// @Failure      409        {object}  response.ErrorBody
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	skills := make([]domain.Skill, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, domain.Skill{Name: s.Name, Category: s.Category})
	}

	candidate := &domain.Candidate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      req.Status,
		Position:    req.Position,
		Department:  req.Department,
		Source:      req.Source,
		AppliedDate: req.AppliedDate,
		Skills:      skills,
	}

	if err := h.candidateUC.Create(c.Request.Context(), candidate); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, candidate)
}

// Update godoc
// @Summary      Update a candidate (admin only)
// @Description  Partial update; a provided skills array replaces the whole set
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      string                  true  "Candidate ID"
// @Param        candidate  body      domain.CandidateUpdate  true  "Fields to update"
// @Success      200        {object}  domain.Candidate
// @Failure      404        {object}  response.ErrorBody
// @Router       /candidates/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	var upd domain.CandidateUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidate)
}

// Delete godoc
// @Summary      Delete a candidate (admin only)
// @Tags         candidates
// @Param        id  path  string  true  "Candidate ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidates/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
