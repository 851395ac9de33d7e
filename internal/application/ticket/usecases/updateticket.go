package usecases

import (
	"context"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID   uint
	Status     *string
	AssigneeID *uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	notifier   Notifier
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.Status == nil && cmd.AssigneeID == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	resolvedNow := false
	if cmd.Status != nil {
		newStatus, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		resolvedNow = newStatus.IsResolved() && !t.Status().IsResolved()
		if err := t.ChangeStatus(newStatus); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.AssigneeID != nil {
		// The assignee's role is deliberately not checked; any user id
		// is accepted, matching the current product behavior.
		if err := t.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "status", t.Status().String())

	if resolvedNow {
		uc.notifyResolved(ctx, t)
	}

	result := dto.FromTicket(t)
	return &result, nil
}

// notifyResolved mails the creator. Best effort: failures are logged, never
// surfaced.
func (uc *UpdateTicketUseCase) notifyResolved(ctx context.Context, t *ticket.Ticket) {
	creator, err := uc.userRepo.FindByID(ctx, t.CreatorID())
	if err != nil {
		uc.logger.Warnw("failed to load creator for resolved notification", "ticket_id", t.ID(), "error", err)
		return
	}

	if err := uc.notifier.SendTicketResolved(creator.Email().String(), creator.Name(), t.ID()); err != nil {
		uc.logger.Warnw("failed to send ticket resolved notification", "ticket_id", t.ID(), "error", err)
	}
}
