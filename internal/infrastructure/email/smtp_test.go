package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketNotificationBodies(t *testing.T) {
	assert.Equal(t,
		"Hello Newton Student, your ticket #42 was created and is OPEN.",
		ticketReceivedBody("Newton Student", 42))

	assert.Equal(t,
		"Hello Newton Student, your ticket #42 has been RESOLVED.",
		ticketResolvedBody("Newton Student", 42))
}

func TestNewSMTPNotifier(t *testing.T) {
	notifier := NewSMTPNotifier(SMTPConfig{
		Host:        "smtp.campus.test",
		Port:        587,
		FromAddress: "helpdesk@campus.test",
		FromName:    "Campus Help Desk",
	})

	assert.NotNil(t, notifier)
	assert.NotNil(t, notifier.dialer)
}
