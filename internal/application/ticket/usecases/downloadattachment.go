package usecases

import (
	"context"
	"io"

	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type DownloadAttachmentQuery struct {
	AttachmentID uint
}

// DownloadAttachmentResult carries an open reader; the caller owns closing
// it after streaming.
type DownloadAttachmentResult struct {
	Filename string
	Content  io.ReadCloser
}

type DownloadAttachmentUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	store          AttachmentStore
	logger         logger.Interface
}

func NewDownloadAttachmentUseCase(
	attachmentRepo ticket.AttachmentRepository,
	store AttachmentStore,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error) {
	attachment, err := uc.attachmentRepo.FindByID(ctx, query.AttachmentID)
	if err != nil {
		return nil, err
	}

	content, err := uc.store.Open(attachment.StoragePath())
	if err != nil {
		// Row exists but the blob is gone; report not found rather than
		// leaking the storage path.
		uc.logger.Errorw("failed to open attachment blob", "attachment_id", attachment.ID(), "error", err)
		return nil, errors.NewNotFoundError("attachment not found")
	}

	return &DownloadAttachmentResult{
		Filename: attachment.Filename(),
		Content:  content,
	}, nil
}
