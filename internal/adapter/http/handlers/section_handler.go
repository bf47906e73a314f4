package handlers

import (
	"errors"
	"log"
	"net/http"

	request "hopebridge/internal/adapter/http/dto/request"
	response "hopebridge/internal/adapter/http/dto/response"
	"hopebridge/internal/usecase"
	"hopebridge/pkg"

	"github.com/gin-gonic/gin"
)

// SectionHandler handles HTTP requests for content sections: public reads
// for the site and authenticated saves for the admin dashboard.

type SectionHandler struct {
	usecase usecase.ISectionUseCase
}

func NewSectionHandler(uc usecase.ISectionUseCase) *SectionHandler {
	return &SectionHandler{usecase: uc}
}

// GetPublicSection serves a section document for public pages and the
// purpose catalog.
//
// @Summary      Get a content section
// @Tags         sections
// @Produce      json
// @Param        slug  path      string  true  "section slug"
// @Success      200   {object}  response.SectionResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /api/public/sections/{slug} [get]
func (h *SectionHandler) GetPublicSection(c *gin.Context) {
	slug := c.Param("slug")

	s, err := h.usecase.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		appErr := mapSectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSection(s))
}

// GetAdminSection serves a section document to the admin editing screens.
//
// @Summary      Get a content section (admin)
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        slug  path      string  true  "section slug"
// @Success      200   {object}  response.SectionResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /api/admin/sections/{slug} [get]
func (h *SectionHandler) GetAdminSection(c *gin.Context) {
	h.GetPublicSection(c)
}

// SaveSection replaces a section document from the admin dashboard.
//
// @Summary      Save a content section
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        slug     path      string                      true  "section slug"
// @Param        section  body      request.SectionSaveRequest  true  "section document"
// @Success      200      {object}  response.SectionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /api/admin/sections/{slug} [put]
func (h *SectionHandler) SaveSection(c *gin.Context) {
	slug := c.Param("slug")

	var payload request.SectionSaveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SECTION_INPUT", "Invalid section payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	s, err := h.usecase.Save(c.Request.Context(), slug, payload.Content)
	if err != nil {
		log.Printf("[section][handler] save failed slug=%s err=%v", slug, err)
		appErr := mapSectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[section][handler] save success slug=%s", slug)

	c.JSON(http.StatusOK, response.FromSection(s))
}

func mapSectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSectionSlug), errors.Is(err, usecase.ErrInvalidSectionContent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSectionNotFound):
		return pkg.NewDomainErrorSimple("SECTION_NOT_FOUND", "Section not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
