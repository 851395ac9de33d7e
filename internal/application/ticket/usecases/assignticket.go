package usecases

import (
	"context"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewAssignTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee_id is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.AssignTo(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "assignee_id", cmd.AssigneeID)

	result := dto.FromTicket(t)
	return &result, nil
}
