package v1

import (
	"net/http"

	"go-hiretrack-backend/internal/delivery/http/middleware"
	"go-hiretrack-backend/internal/delivery/http/response"
	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := r.Group("/users")
	{
		adminOnly := middleware.RequireRoles(domain.RoleAdmin)
		users.GET("", adminOnly, handler.List)
		users.POST("", adminOnly, handler.Create)
		users.DELETE("/:id", adminOnly, handler.Delete)

		// A user can view and manage their own profile; admins can manage any
		selfOrAdmin := middleware.SelfOrAdmin("id")
		users.GET("/:id", selfOrAdmin, handler.GetByID)
		users.PUT("/:id", selfOrAdmin, handler.Update)
		users.POST("/:id/change-password", selfOrAdmin, handler.ChangePassword)
	}
}

type CreateUserRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required"`
	FirstName  string  `json:"firstName" binding:"required"`
	LastName   string  `json:"lastName" binding:"required"`
	Role       string  `json:"role" binding:"required"`
	Department *string `json:"department"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      403  {object}  response.ErrorBody
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// GetByID godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Create godoc
// @Summary      Create a user (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      CreateUserRequest  true  "User JSON"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  response.ErrorBody
// @Failure      409   {object}  response.ErrorBody
// @Router       /users [post]
// @Security     BearerAuth
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	user := &domain.User{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       req.Role,
		Department: req.Department,
	}

	if err := h.userUC.Create(c.Request.Context(), user, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, user)
}

// Update godoc
// @Summary      Update a user
// @Description  Partial update; unset fields are left unchanged
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        user  body      domain.UserUpdate  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  response.ErrorBody
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	var upd domain.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.userUC.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// ChangePassword godoc
// @Summary      Change a user's password
// @Description  Requires proof of the current password regardless of role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id        path      string                 true  "User ID"
// @Param        password  body      ChangePasswordRequest  true  "Passwords"
// @Success      200       {object}  map[string]string
// @Failure      401       {object}  response.ErrorBody
// @Router       /users/{id}/change-password [post]
// @Security     BearerAuth
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Current password and new password are required"))
		return
	}

	if err := h.userUC.ChangePassword(c.Request.Context(), c.Param("id"), req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// Delete godoc
// @Summary      Delete a user (admin only)
// @Tags         users
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
