package ticket

import (
	"fmt"
	"time"
)

// Attachment is the metadata row for an uploaded file. The blob itself lives
// in the attachment store under StoragePath.
type Attachment struct {
	id          uint
	ticketID    uint
	filename    string
	storagePath string
	uploadedAt  time.Time
}

func NewAttachment(ticketID uint, filename string, storagePath string) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(filename) == 0 {
		return nil, fmt.Errorf("filename is required")
	}
	if len(storagePath) == 0 {
		return nil, fmt.Errorf("storage path is required")
	}

	return &Attachment{
		ticketID:    ticketID,
		filename:    filename,
		storagePath: storagePath,
		uploadedAt:  time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	filename string,
	storagePath string,
	uploadedAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:          id,
		ticketID:    ticketID,
		filename:    filename,
		storagePath: storagePath,
		uploadedAt:  uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) StoragePath() string {
	return a.storagePath
}

func (a *Attachment) UploadedAt() time.Time {
	return a.uploadedAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
