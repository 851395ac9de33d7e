package usecases

import (
	"context"
	"strings"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	CreatorID   uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	notifier   Notifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	title := strings.TrimSpace(cmd.Title)
	description := strings.TrimSpace(cmd.Description)

	if title == "" || description == "" {
		return nil, errors.NewValidationError("title and description are required")
	}
	if cmd.CreatorID == 0 {
		return nil, errors.NewValidationError("creator ID is required")
	}

	creator, err := uc.userRepo.FindByID(ctx, cmd.CreatorID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket creator", "user_id", cmd.CreatorID, "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(title, description, creator.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "creator_id", creator.ID())

	// Best effort: a mail failure never fails the operation.
	if err := uc.notifier.SendTicketReceived(creator.Email().String(), creator.Name(), newTicket.ID()); err != nil {
		uc.logger.Warnw("failed to send ticket received notification", "ticket_id", newTicket.ID(), "error", err)
	}

	result := dto.FromTicket(newTicket)
	return &result, nil
}
