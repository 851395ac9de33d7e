package usecases

import (
	"context"

	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/shared/db"
	"campusdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

// DeleteTicketUseCase removes a ticket and cascades to its comments and
// attachments. Dependent rows are deleted before the parent inside one
// transaction; blob removal happens after commit, best effort.
type DeleteTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	store          AttachmentStore
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	store AttachmentStore,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	var blobPaths []string

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		attachments, err := uc.attachmentRepo.FindByTicketID(txCtx, t.ID())
		if err != nil {
			return err
		}
		for _, a := range attachments {
			blobPaths = append(blobPaths, a.StoragePath())
		}

		if err := uc.commentRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		if err := uc.attachmentRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if err != nil {
		return err
	}

	for _, path := range blobPaths {
		if err := uc.store.Remove(path); err != nil {
			uc.logger.Warnw("failed to remove attachment blob", "path", path, "error", err)
		}
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
