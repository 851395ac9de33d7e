package usecases

import (
	"context"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	vo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status   *string
	OnlyMine bool
	CallerID uint
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{}

	if query.Status != nil && *query.Status != "" {
		status, err := vo.NewTicketStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.OnlyMine {
		callerID := query.CallerID
		filter.CreatorID = &callerID
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	result := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, dto.FromTicket(t))
	}

	return &ListTicketsResult{Tickets: result}, nil
}
