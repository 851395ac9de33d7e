package usecases

import (
	"context"
	"io"

	"campusdesk/internal/application/ticket/dto"
)

// Notifier delivers best-effort mail. Callers log and swallow failures;
// notification delivery is never part of a ticket operation's guarantee.
type Notifier interface {
	SendTicketReceived(to, name string, ticketID uint) error
	SendTicketResolved(to, name string, ticketID uint) error
}

// AttachmentStore persists attachment blobs under sanitized, collision-safe
// names.
type AttachmentStore interface {
	Save(filename string, content io.Reader) (storedName string, path string, err error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error)
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentDTO, error)
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}
