package ticket

import (
	"context"

	vo "campusdesk/internal/domain/ticket/valueobjects"
)

type TicketFilter struct {
	Status    *vo.TicketStatus
	CreatorID *uint
}

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	Count(ctx context.Context) (int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	FindByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	FindByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	FindByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
