package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/server/http/dto"
	"github.com/maropko/parceltrack/internal/server/http/middleware"
)

// AuthHandler processes staff login.
type AuthHandler struct {
	facade   AdminFacade
	validate *validatorv10.Validate
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AdminFacade, validate *validatorv10.Validate) *AuthHandler {
	return &AuthHandler{facade: facade, validate: validate}
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := dto.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	admin, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Admin: toAdminResponse(*admin)})
}
