package usecases

import (
	"context"
	"io"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/infrastructure/storage"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type UploadAttachmentCommand struct {
	TicketID uint
	Filename string
	Content  io.Reader
}

type UploadAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	store          AttachmentStore
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	store AttachmentStore,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentDTO, error) {
	if cmd.Filename == "" {
		return nil, errors.NewValidationError("filename is required")
	}
	if !storage.AllowedExtension(cmd.Filename) {
		return nil, errors.NewValidationError("file extension is not allowed")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	storedName, path, err := uc.store.Save(cmd.Filename, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to store attachment blob", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to store attachment")
	}

	attachment, err := ticket.NewAttachment(t.ID(), storedName, path)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		// The metadata row is the source of truth; drop the orphaned blob.
		if removeErr := uc.store.Remove(path); removeErr != nil {
			uc.logger.Warnw("failed to remove orphaned blob", "path", path, "error", removeErr)
		}
		uc.logger.Errorw("failed to save attachment", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment uploaded", "ticket_id", t.ID(), "attachment_id", attachment.ID(), "filename", storedName)

	result := dto.FromAttachment(attachment)
	return &result, nil
}
