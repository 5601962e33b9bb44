package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vitahires/internal/model"
	"github.com/iliyamo/vitahires/internal/repository"
)

// MessageHandler serves the internal messaging endpoints. Any
// authenticated user may message any other; recipients control only
// their own inbox.
type MessageHandler struct {
	Messages *repository.MessageRepo
	Users    userFinder
}

func NewMessageHandler(m *repository.MessageRepo, u userFinder) *MessageHandler {
	return &MessageHandler{Messages: m, Users: u}
}

type sendMessageReq struct {
	RecipientID uint64 `json:"recipient_id"`
	Subject     string `json:"subject"`
	Content     string `json:"content"`
}

// Send: POST /v1/messages.
func (h *MessageHandler) Send(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req sendMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.RecipientID == 0 || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "recipient_id/content required"})
	}
	if req.RecipientID == uid {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot message yourself"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Users.GetByID(ctx, req.RecipientID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "recipient not found"})
	}

	m := model.Message{
		SenderID:    uid,
		RecipientID: req.RecipientID,
		Subject:     strings.TrimSpace(req.Subject),
		Content:     req.Content,
	}
	if err := h.Messages.Create(ctx, &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "send failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": m.ID, "sent_at": m.SentAt})
}

// Inbox: GET /v1/messages. Received messages, newest first.
func (h *MessageHandler) Inbox(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, err := h.Messages.ListInbox(ctx, uid, 0)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if rows == nil {
		rows = []repository.InboxRow{}
	}
	return c.JSON(http.StatusOK, echo.Map{"messages": rows, "count": len(rows)})
}

// MarkRead: POST /v1/messages/:id/read. Only the recipient may mark a
// message; anyone else gets the same 404 as a missing message.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	msgID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Messages.MarkRead(ctx, msgID, uid); err != nil {
		if err == repository.ErrMessageNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "marked read"})
}
