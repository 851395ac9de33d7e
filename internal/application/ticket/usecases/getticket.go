package usecases

import (
	"context"

	"campusdesk/internal/application/ticket/dto"
	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.FindByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	attachments, err := uc.attachmentRepo.FindByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	commentDTOs, err := commentsWithAuthors(ctx, uc.userRepo, comments)
	if err != nil {
		return nil, err
	}

	attachmentDTOs := make([]dto.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		attachmentDTOs = append(attachmentDTOs, dto.FromAttachment(a))
	}

	return &dto.TicketDetailDTO{
		TicketDTO:   dto.FromTicket(t),
		Comments:    commentDTOs,
		Attachments: attachmentDTOs,
	}, nil
}

// commentsWithAuthors resolves each comment's author profile, deduplicating
// lookups per user. A missing author degrades to a nil profile instead of
// failing the read.
func commentsWithAuthors(
	ctx context.Context,
	userRepo user.Repository,
	comments []*ticket.Comment,
) ([]dto.CommentDTO, error) {
	authors := make(map[uint]*user.User)

	result := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		author, seen := authors[c.UserID()]
		if !seen {
			u, err := userRepo.FindByID(ctx, c.UserID())
			if err != nil && !errors.IsNotFoundError(err) {
				return nil, err
			}
			author = u
			authors[c.UserID()] = u
		}
		result = append(result, dto.FromComment(c, author))
	}

	return result, nil
}
