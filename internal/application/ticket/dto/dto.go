package dto

import (
	"fmt"
	"time"

	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
)

// UserSummaryDTO is the public profile embedded in comment payloads.
type UserSummaryDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TicketDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatorID   uint      `json:"creator_id"`
	AssigneeID  *uint     `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TicketDetailDTO is a ticket with its comments and attachments.
type TicketDetailDTO struct {
	TicketDTO
	Comments    []CommentDTO    `json:"comments"`
	Attachments []AttachmentDTO `json:"attachments"`
}

type CommentDTO struct {
	ID        uint            `json:"id"`
	TicketID  uint            `json:"ticket_id"`
	UserID    uint            `json:"user_id"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	User      *UserSummaryDTO `json:"user,omitempty"`
}

type AttachmentDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func FromTicket(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func FromUser(u *user.User) *UserSummaryDTO {
	if u == nil {
		return nil
	}
	return &UserSummaryDTO{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().String(),
		Role:  u.Role().String(),
	}
}

func FromComment(c *ticket.Comment, author *user.User) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
		User:      FromUser(author),
	}
}

// FromAttachment renders attachment metadata. The path is the API download
// location, never the on-disk storage path.
func FromAttachment(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		Filename:   a.Filename(),
		Path:       fmt.Sprintf("/api/attachments/%d/download", a.ID()),
		UploadedAt: a.UploadedAt(),
	}
}
