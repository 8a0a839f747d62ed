package handlers

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VetCareServices/vetclinic-api/internal/audit"
	"github.com/VetCareServices/vetclinic-api/internal/authz"
	"github.com/VetCareServices/vetclinic-api/internal/dto"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/httpresp"
	"github.com/VetCareServices/vetclinic-api/internal/logger"
	"github.com/VetCareServices/vetclinic-api/internal/models"
	"github.com/VetCareServices/vetclinic-api/internal/storage"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type MediaHandler struct {
	db    *gorm.DB
	blobs storage.BlobStore
	audit *audit.Dispatcher
}

func NewMediaHandler(db *gorm.DB, blobs storage.BlobStore, ad *audit.Dispatcher) *MediaHandler {
	return &MediaHandler{db: db, blobs: blobs, audit: ad}
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Upload stores the binary, derives a webp thumbnail next to it and creates
// the media record. FilePath is system-generated, never caller-supplied.
func (h *MediaHandler) Upload(c *gin.Context) {
	caller := callerFrom(c)
	if err := authz.Allow(caller, authz.ActionCreate, authz.ResourceMedia, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.WriteError(c, httperr.Validation("file", "must not be null"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.WriteError(c, httperr.Validation("file", "must not exceed 10 MiB"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := contentTypes[ext]
	if !ok {
		httperr.WriteError(c, httperr.Validation("file", "unsupported file type"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_upload", "could not read upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		httperr.Internal(c, "failed_to_read_upload", "could not read upload")
		return
	}

	key := "media/" + uuid.New().String() + ext
	path, err := h.blobs.Put(c.Request.Context(), key, bytes.NewReader(data), contentType)
	if err != nil {
		httperr.Internal(c, "failed_to_store_upload", "could not store upload")
		return
	}

	// Thumbnail failure is not fatal; the original is already durable.
	if thumb, err := storage.Thumbnail(bytes.NewReader(data)); err == nil {
		thumbKey := strings.TrimSuffix(key, ext) + "_thumb.webp"
		if _, err := h.blobs.Put(c.Request.Context(), thumbKey, bytes.NewReader(thumb), "image/webp"); err != nil {
			logger.L().Warn("thumbnail store failed", zap.Error(err))
		}
	} else {
		logger.L().Warn("thumbnail encode failed", zap.Error(err))
	}

	media := models.Media{
		FilePath:  path,
		UpdatedAt: time.Now(),
	}
	if err := h.db.Create(&media).Error; err != nil {
		httperr.Internal(c, "failed_to_create_media", "could not create media")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "media_uploaded",
		Entity:   "media",
		EntityID: &media.ID,
	})

	httpresp.Created(c, dto.NewMediaRead(&media))
}

func (h *MediaHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var media models.Media
	if err := h.db.First(&media, id).Error; err != nil {
		httperr.WriteError(c, httperr.NotFoundError{Resource: "media", ID: id})
		return
	}

	httpresp.OK(c, dto.NewMediaRead(&media))
}
