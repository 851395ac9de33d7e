package attachment

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/ticket/usecases"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type AttachmentHandler struct {
	uploadUC    usecases.UploadAttachmentExecutor
	downloadUC  usecases.DownloadAttachmentExecutor
	maxSizeByte int64
	logger      logger.Interface
}

func NewAttachmentHandler(
	uploadUC usecases.UploadAttachmentExecutor,
	downloadUC usecases.DownloadAttachmentExecutor,
	maxSizeBytes int64,
) *AttachmentHandler {
	return &AttachmentHandler{
		uploadUC:    uploadUC,
		downloadUC:  downloadUC,
		maxSizeByte: maxSizeBytes,
		logger:      logger.NewLogger(),
	}
}

// Upload handles POST /api/tickets/:id/attachments
func (h *AttachmentHandler) Upload(c *gin.Context) {
	ticketID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || ticketID == 0 {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid ticket id"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file field is required"))
		return
	}
	if fileHeader.Size > h.maxSizeByte {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file exceeds the maximum allowed size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "filename", fileHeader.Filename, "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.uploadUC.Execute(c.Request.Context(), usecases.UploadAttachmentCommand{
		TicketID: uint(ticketID),
		Filename: fileHeader.Filename,
		Content:  file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded successfully")
}

// Download handles GET /api/attachments/:id/download
func (h *AttachmentHandler) Download(c *gin.Context) {
	attachmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || attachmentID == 0 {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid attachment id"))
		return
	}

	result, err := h.downloadUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		AttachmentID: uint(attachmentID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer result.Content.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Header("Content-Type", "application/octet-stream")
	if _, err := io.Copy(c.Writer, result.Content); err != nil {
		h.logger.Warnw("attachment stream interrupted", "attachment_id", attachmentID, "error", err)
	}
}
