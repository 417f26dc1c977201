package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/server/http/dto"
)

// AdminHandler manages staff account endpoints.
type AdminHandler struct {
	facade   AdminFacade
	validate *validatorv10.Validate
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade, validate *validatorv10.Validate) *AdminHandler {
	return &AdminHandler{facade: facade, validate: validate}
}

// Create handles POST /api/admin/users.
func (h *AdminHandler) Create(c *gin.Context) {
	var req dto.AdminCreateRequest
	if err := dto.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	admin, err := h.facade.CreateAdmin(c.Request.Context(), req.Email, req.Password, req.Name, model.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toAdminResponse(*admin))
}

// List handles GET /api/admin/users.
func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.facade.Admins(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.AdminResponse, 0, len(admins))
	for _, a := range admins {
		response = append(response, toAdminResponse(a))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/admin/users/:id.
func (h *AdminHandler) Get(c *gin.Context) {
	admin, err := h.facade.Admin(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toAdminResponse(*admin))
}

// Update handles PUT /api/admin/users/:id.
func (h *AdminHandler) Update(c *gin.Context) {
	var req dto.AdminUpdateRequest
	if err := dto.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	patch := model.AdminPatch{Email: req.Email, Name: req.Name}
	if req.Role != nil {
		role := model.Role(*req.Role)
		patch.Role = &role
	}
	password := ""
	if req.Password != nil {
		password = *req.Password
	}

	admin, err := h.facade.UpdateAdmin(c.Request.Context(), c.Param("id"), patch, password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toAdminResponse(*admin))
}

// Delete handles DELETE /api/admin/users/:id.
func (h *AdminHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == CurrentAdminID(c) {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot delete own account"})
		return
	}

	if err := h.facade.DeleteAdmin(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
