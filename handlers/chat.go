package handlers

import (
	"net/http"

	"slotdesk/services/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking channel. The request body is
// the structured intent an upstream classifier extracted from the user's
// message; this server never sees raw natural language.
type ChatHandler struct {
	Service chat.ChatService
	Logger  *zap.Logger
}

// NewChatHandler constructs a ChatHandler.
func NewChatHandler(svc chat.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: svc, Logger: logger}
}

// Advance handles POST /api/chat/:channel/:phone.
func (h *ChatHandler) Advance(c *gin.Context) {
	var intent chat.Intent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validationError", "message": err.Error()})
		return
	}

	reply, err := h.Service.Advance(c.Param("channel"), c.Param("phone"), intent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
