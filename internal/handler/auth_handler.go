package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/edu-admin-api/internal/models"
	"github.com/edupanel/edu-admin-api/internal/service"
	appErrors "github.com/edupanel/edu-admin-api/pkg/errors"
	"github.com/edupanel/edu-admin-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Check godoc
// @Summary Report whether an admin exists
// @Description The frontend shows the registration form only when no admin is registered
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/check [get]
func (h *AuthHandler) Check(c *gin.Context) {
	exists, err := h.service.AdminExists(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"exists": exists})
}

// Register godoc
// @Summary Register an admin
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.RegisterRequest true "Register payload"
// @Success 201 {object} models.Admin
// @Failure 400
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid register payload"))
		return
	}

	admin, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, admin)
}

// Login godoc
// @Summary Authenticate the admin
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} models.LoginResponse
// @Failure 400
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}
