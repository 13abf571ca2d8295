package v1

import (
	"errors"
	"net/http"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the interview email endpoint. Its wire contract
// predates the response envelope and is kept as-is for the dashboard:
// 200 {"success":true,"messageId":...} on dispatch, otherwise
// {"success":false,"error":...} with the matching status code.
type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

func NewNotificationHandler(r *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	r.POST("/notifications/interview", handler.SendInterviewEmail)
	r.OPTIONS("/notifications/interview", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

// SendInterviewEmail godoc
// @Summary      Send an interview invitation or reminder email
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request  body  domain.InterviewEmailRequest  true  "Interview email payload"
// @Success      200  {object}  map[string]interface{}  "{success, messageId}"
// @Failure      400  {object}  map[string]interface{}  "{success, error}"
// @Failure      503  {object}  map[string]interface{}  "{success, error}"
// @Router       /notifications/interview [post]
func (h *NotificationHandler) SendInterviewEmail(c *gin.Context) {
	var req domain.InterviewEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Corps de requête invalide"})
		return
	}

	result, err := h.notificationUC.SendInterviewEmail(c.Request.Context(), &req)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Une erreur inattendue est survenue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messageId": result.MessageID})
}
