package usecases

import (
	"testing"
	"time"

	"campusdesk/internal/domain/ticket"
	ticketvo "campusdesk/internal/domain/ticket/valueobjects"
	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/authorization"
)

func testUser(t *testing.T, id uint, email string, role authorization.UserRole) *user.User {
	t.Helper()

	emailVO, err := uservo.NewEmail(email)
	if err != nil {
		t.Fatalf("invalid test email %s: %v", email, err)
	}

	u, err := user.ReconstructUser(id, emailVO, "Test User", "$2a$12$hash", role, time.Now())
	if err != nil {
		t.Fatalf("failed to build test user: %v", err)
	}
	return u
}

func testTicket(t *testing.T, id uint, status ticketvo.TicketStatus, creatorID uint) *ticket.Ticket {
	t.Helper()

	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, "Projector broken", "Room 204 projector will not power on", status, creatorID, nil, now, now)
	if err != nil {
		t.Fatalf("failed to build test ticket: %v", err)
	}
	return tk
}

func testComment(t *testing.T, id, ticketID, userID uint) *ticket.Comment {
	t.Helper()

	c, err := ticket.ReconstructComment(id, ticketID, userID, "Looked at it, needs a new lamp", time.Now())
	if err != nil {
		t.Fatalf("failed to build test comment: %v", err)
	}
	return c
}

func testAttachment(t *testing.T, id, ticketID uint) *ticket.Attachment {
	t.Helper()

	a, err := ticket.ReconstructAttachment(id, ticketID, "error.log", "/uploads/error.log", time.Now())
	if err != nil {
		t.Fatalf("failed to build test attachment: %v", err)
	}
	return a
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }
