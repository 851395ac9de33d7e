package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/user/usecases"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type UserHandler struct {
	listUsersUC usecases.ListUsersExecutor
	logger      logger.Interface
}

func NewUserHandler(listUsersUC usecases.ListUsersExecutor) *UserHandler {
	return &UserHandler{
		listUsersUC: listUsersUC,
		logger:      logger.NewLogger(),
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	query := usecases.ListUsersQuery{}
	if role := c.Query("role"); role != "" {
		query.Role = &role
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Users)
}
