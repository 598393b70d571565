package handler

import (
	"net/http"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
}

// MessageHandler serves student-vendor conversations.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
}

func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{messageUC: params.MessageUC}
}

// SendMessageRequest addresses the counterpart by vendorId (from students) or studentId (from vendors).
type SendMessageRequest struct {
	VendorID              string              `json:"vendorId" validate:"omitempty,uuid"`
	StudentID             string              `json:"studentId" validate:"omitempty,uuid"`
	ThreadID              string              `json:"threadId" validate:"omitempty,uuid"`
	Subject               string              `json:"subject" validate:"max=200"`
	Body                  string              `json:"body" validate:"required,max=2000"`
	Priority              string              `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Attachments           []entity.Attachment `json:"attachments" validate:"max=5"`
	RelatedSubscriptionID string              `json:"relatedSubscriptionId" validate:"omitempty,uuid"`
	RelatedOrderID        string              `json:"relatedOrderId" validate:"omitempty,uuid"`
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	counterpartField, counterpart := "vendorId", req.VendorID
	if principal.Role == entity.RoleVendor {
		counterpartField, counterpart = "studentId", req.StudentID
	}

	counterpartID, err := optionalID(counterpartField, counterpart)
	if err != nil {
		return err
	}
	if counterpartID == nil {
		return domainerrors.NewValidationError("").Add(counterpartField, "is required")
	}

	threadID, err := optionalID("threadId", req.ThreadID)
	if err != nil {
		return err
	}

	subscriptionID, err := optionalID("relatedSubscriptionId", req.RelatedSubscriptionID)
	if err != nil {
		return err
	}

	orderID, err := optionalID("relatedOrderId", req.RelatedOrderID)
	if err != nil {
		return err
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), principal, usecase.SendMessageInput{
		CounterpartID:         *counterpartID,
		ThreadID:              threadID,
		Subject:               req.Subject,
		Body:                  req.Body,
		Priority:              entity.MessagePriority(req.Priority),
		Attachments:           req.Attachments,
		RelatedSubscriptionID: subscriptionID,
		RelatedOrderID:        orderID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}

// ListThreads returns one summary per conversation, most recent first.
func (h *MessageHandler) ListThreads(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	threads, err := h.messageUC.ListThreads(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, threads)
}

func (h *MessageHandler) GetThread(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	threadID, err := pathID(c, "threadId")
	if err != nil {
		return err
	}

	messages, err := h.messageUC.GetThread(c.Request().Context(), principal, threadID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages)
}

func (h *MessageHandler) MarkMessageRead(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.messageUC.MarkMessageRead(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message marked as read")
}
