package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

type ContactHandler struct {
	submitContactUseCase *contactUC.SubmitContactUseCase
	contactStatusUseCase *contactUC.ContactStatusUseCase
	listMessagesUseCase  *contactUC.ListMessagesUseCase
}

func NewContactHandler(
	submitUC *contactUC.SubmitContactUseCase,
	statusUC *contactUC.ContactStatusUseCase,
	listUC *contactUC.ListMessagesUseCase,
) *ContactHandler {
	return &ContactHandler{
		submitContactUseCase: submitUC,
		contactStatusUseCase: statusUC,
		listMessagesUseCase:  listUC,
	}
}

func (h *ContactHandler) GetStatus(c *gin.Context) {
	output, err := h.contactStatusUseCase.Execute(c.Request.Context(), contactUC.ContactStatusInput{
		ClientID: GetClientIDFromGinContext(c),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToContactStatusDTO(output))
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.submitContactUseCase.Execute(c.Request.Context(), contactUC.SubmitContactInput{
		ClientID:   GetClientIDFromGinContext(c),
		Submission: req.ToSubmission(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message_id": output.MessageID, "submitted": true})
}

// ListMessages serves the admin inbox.
func (h *ContactHandler) ListMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	output, err := h.listMessagesUseCase.Execute(c.Request.Context(), contactUC.ListMessagesInput{Page: page, Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ContactMessageDTO, len(output.Messages))
	for i, m := range output.Messages {
		dtos[i] = ToContactMessageDTO(m)
	}
	c.JSON(http.StatusOK, gin.H{"data": dtos, "page": output.Page, "limit": output.Limit})
}
