package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/ports"
)

type contactRequest struct {
	Name           string `json:"name"            validate:"required,min=3,max=100"`
	Faculty        string `json:"faculty"         validate:"required,min=2,max=100"`
	Role           string `json:"role"            validate:"required,min=3,max=50"`
	Department     string `json:"department"      validate:"omitempty,max=100"`
	Email          string `json:"email"           validate:"omitempty,email,max=100"`
	Phone          string `json:"phone"           validate:"omitempty,e164"`
	Facebook       string `json:"facebook"        validate:"omitempty,max=100"`
	Line           string `json:"line"            validate:"omitempty,max=100"`
	ProfilePicture string `json:"profile_picture" validate:"omitempty,max=500"`
}

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// List returns the staff directory, name-sorted, optionally filtered by
// faculty. Public.
//
// @Summary      List staff contacts
// @Tags         contacts
// @Produce      json
// @Param        faculty  query     string  false  "Filter by faculty"
// @Success      200      {array}   domain.Contact
// @Router       /v1/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.service.List(c.Request().Context(), c.QueryParam("faculty"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

// Get returns a single directory entry. Public.
//
// @Summary      Get a staff contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  domain.Contact
// @Failure      404  {object}  errorResponse
// @Router       /v1/contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	contact, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// Create adds a directory entry. Admin only.
//
// @Summary      Create a staff contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact"
// @Success      201   {object}  domain.Contact
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.service.Create(c.Request().Context(), toContact(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contact)
}

// Update replaces a directory entry. Admin only.
//
// @Summary      Update a staff contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Contact ID"
// @Param        body  body      contactRequest  true  "Contact"
// @Success      200   {object}  domain.Contact
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.service.Update(c.Request().Context(), c.Param("id"), toContact(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete removes a directory entry. Admin only.
//
// @Summary      Delete a staff contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "contact deleted"})
}

func toContact(req contactRequest) domain.Contact {
	return domain.Contact{
		Name:           req.Name,
		Faculty:        req.Faculty,
		Role:           req.Role,
		Department:     req.Department,
		Email:          req.Email,
		Phone:          req.Phone,
		Facebook:       req.Facebook,
		Line:           req.Line,
		ProfilePicture: req.ProfilePicture,
	}
}
