package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/campus-portal/internal/core/ports"
)

type AnnouncementHandler struct {
	service ports.AnnouncementService
}

func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// List returns all announcements, newest first. Public.
//
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Success      200   {array}   domain.Announcement
// @Router       /v1/announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcements)
}

// Get returns a single announcement. Public.
//
// @Summary      Get an announcement
// @Tags         announcements
// @Produce      json
// @Param        id   path      string  true  "Announcement ID"
// @Success      200  {object}  domain.Announcement
// @Failure      404  {object}  errorResponse
// @Router       /v1/announcements/{id} [get]
func (h *AnnouncementHandler) Get(c echo.Context) error {
	announcement, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcement)
}

// ListBookmarked returns the authenticated user's bookmarked announcements.
//
// @Summary      List bookmarked announcements
// @Tags         announcements
// @Produce      json
// @Success      200   {array}   domain.Announcement
// @Failure      401   {object}  errorResponse
// @Router       /v1/announcements/bookmarked [get]
func (h *AnnouncementHandler) ListBookmarked(c echo.Context) error {
	info, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	announcements, err := h.service.ListBookmarked(c.Request().Context(), info.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcements)
}

// Create publishes a new announcement authored by the admin making the
// request. Admin only.
//
// @Summary      Create an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        body  body      announcementRequest  true  "Announcement"
// @Success      201   {object}  domain.Announcement
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	info, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	announcement, err := h.service.Create(c.Request().Context(), info.UserID, ports.AnnouncementInput{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, announcement)
}

// Update edits an announcement. Admin only.
//
// @Summary      Update an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Announcement ID"
// @Param        body  body      announcementRequest  true  "Announcement"
// @Success      200   {object}  domain.Announcement
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	announcement, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.AnnouncementInput{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcement)
}

// Delete removes an announcement. Admin only.
//
// @Summary      Delete an announcement
// @Tags         announcements
// @Produce      json
// @Param        id   path      string  true  "Announcement ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "announcement deleted"})
}

// Bookmark adds the announcement to the user's bookmarks. Idempotent.
//
// @Summary      Bookmark an announcement
// @Tags         announcements
// @Produce      json
// @Param        id   path      string  true  "Announcement ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/announcements/{id}/bookmark [post]
func (h *AnnouncementHandler) Bookmark(c echo.Context) error {
	info, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Bookmark(c.Request().Context(), c.Param("id"), info.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "bookmarked"})
}

// Unbookmark removes the announcement from the user's bookmarks. Idempotent.
//
// @Summary      Remove a bookmark
// @Tags         announcements
// @Produce      json
// @Param        id   path      string  true  "Announcement ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/announcements/{id}/bookmark [delete]
func (h *AnnouncementHandler) Unbookmark(c echo.Context) error {
	info, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Unbookmark(c.Request().Context(), c.Param("id"), info.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "bookmark removed"})
}
