package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/ticket/usecases"
	"campusdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		CreatorID:   creatorID,
	}
}

type UpdateTicketRequest struct {
	Status     *string `json:"status"`
	AssigneeID *uint   `json:"assignee_id"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:   ticketID,
		Status:     r.Status,
		AssigneeID: r.AssigneeID,
	}
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid ticket id")
	}
	return uint(id), nil
}
