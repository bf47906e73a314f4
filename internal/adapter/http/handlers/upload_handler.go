package handlers

import (
	"io"
	"log"
	"net/http"

	response "hopebridge/internal/adapter/http/dto/response"
	"hopebridge/internal/usecase/interfaces"
	"hopebridge/pkg"

	"github.com/gin-gonic/gin"
)

// 10 MiB, matching the upload limit the admin dashboard enforces client-side.
const maxUploadBytes = 10 << 20

// UploadHandler stores admin media uploads in the remote object store.

type UploadHandler struct {
	store interfaces.IUploadStore
}

func NewUploadHandler(store interfaces.IUploadStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts a multipart file and returns its public URL.
//
// @Summary      Upload a media file
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        file  formData  file  true  "file to store"
// @Success      200   {object}  response.UploadResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /api/admin/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Missing file field", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if fileHeader.Size > maxUploadBytes {
		appErr := pkg.NewDomainErrorSimple("UPLOAD_TOO_LARGE", "File exceeds the upload limit", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.store.Upload(c.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		log.Printf("[upload][handler] store failed filename=%s err=%v", fileHeader.Filename, err)
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Failed to store the file", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UploadResponse{URL: url})
}
