package v1

import (
	"net/http"

	"go-hiretrack-backend/internal/delivery/http/middleware"
	"go-hiretrack-backend/internal/delivery/http/response"
	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	offerUC domain.OfferUsecase
}

func NewOfferHandler(r *gin.RouterGroup, offerUC domain.OfferUsecase) {
	handler := &OfferHandler{offerUC: offerUC}

	offers := r.Group("/offers")
	{
		offers.GET("", handler.List)
		offers.GET("/:id", handler.GetByID)
		offers.GET("/candidate/:candidateId", handler.ListByCandidate)

		adminOnly := middleware.RequireRoles(domain.RoleAdmin)
		offers.POST("", adminOnly, handler.Create)
		offers.PUT("/:id", adminOnly, handler.Update)
		offers.DELETE("/:id", adminOnly, handler.Delete)
	}
}

type CreateOfferRequest struct {
	CandidateID    string  `json:"candidateId" binding:"required"`
	CandidateName  string  `json:"candidateName" binding:"required"`
	Position       string  `json:"position" binding:"required"`
	Department     string  `json:"department" binding:"required"`
	Status         string  `json:"status" binding:"required"`
	Salary         float64 `json:"salary" binding:"required"`
	StartDate      *string `json:"startDate"`
	ExpirationDate string  `json:"expirationDate" binding:"required"`
	Notes          *string `json:"notes"`
}

// List godoc
// @Summary      List offers
// @Tags         offers
// @Produce      json
// @Success      200  {array}  domain.Offer
// @Router       /offers [get]
// @Security     BearerAuth
func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.offerUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, offers)
}

// ListByCandidate godoc
// @Summary      List a candidate's offers
// @Tags         offers
// @Produce      json
// @Param        candidateId  path     string  true  "Candidate ID"
// @Success      200          {array}  domain.Offer
// @Router       /offers/candidate/{candidateId} [get]
// @Security     BearerAuth
func (h *OfferHandler) ListByCandidate(c *gin.Context) {
	offers, err := h.offerUC.ListByCandidate(c.Request.Context(), c.Param("candidateId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, offers)
}

// GetByID godoc
// @Summary      Get an offer
// @Tags         offers
// @Produce      json
// @Param        id   path      string  true  "Offer ID"
// @Success      200  {object}  domain.Offer
// @Failure      404  {object}  response.ErrorBody
// @Router       /offers/{id} [get]
// @Security     BearerAuth
func (h *OfferHandler) GetByID(c *gin.Context) {
	offer, err := h.offerUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, offer)
}

// Create godoc
// @Summary      Extend an offer (admin only)
// @Description  Creating an offer moves the candidate into the Offer stage
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        offer  body      CreateOfferRequest  true  "Offer JSON"
// @Success      201    {object}  domain.Offer
// @Failure      400    {object}  response.ErrorBody
// @Failure      404    {object}  response.ErrorBody
// @Router       /offers [post]
// @Security     BearerAuth
func (h *OfferHandler) Create(c *gin.Context) {
	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	offer := &domain.Offer{
		CandidateID:    req.CandidateID,
		CandidateName:  req.CandidateName,
		Position:       req.Position,
		Department:     req.Department,
		Status:         req.Status,
		Salary:         req.Salary,
		StartDate:      req.StartDate,
		ExpirationDate: req.ExpirationDate,
		Notes:          req.Notes,
	}

	if err := h.offerUC.Create(c.Request.Context(), offer); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, offer)
}

// Update godoc
// @Summary      Update an offer (admin only)
// @Description  Accepting an offer marks the candidate Hired
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        id     path      string              true  "Offer ID"
// @Param        offer  body      domain.OfferUpdate  true  "Fields to update"
// @Success      200    {object}  domain.Offer
// @Failure      404    {object}  response.ErrorBody
// @Router       /offers/{id} [put]
// @Security     BearerAuth
func (h *OfferHandler) Update(c *gin.Context) {
	var upd domain.OfferUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	offer, err := h.offerUC.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, offer)
}

// Delete godoc
// @Summary      Delete an offer (admin only)
// @Tags         offers
// @Param        id  path  string  true  "Offer ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /offers/{id} [delete]
// @Security     BearerAuth
func (h *OfferHandler) Delete(c *gin.Context) {
	if err := h.offerUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
