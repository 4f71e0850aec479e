package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/court-booking/internal/chat"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
)

type StreamHandler struct {
	tokens *chat.StreamTokens
}

func NewStreamHandler(tokens *chat.StreamTokens) *StreamHandler {
	return &StreamHandler{tokens: tokens}
}

func (h *StreamHandler) Token(c *gin.Context) {
	token, err := h.tokens.CreateToken(c.Query("userId"))
	switch {
	case errors.Is(err, chat.ErrMissingUserID):
		httperr.BadRequest(c, "missing_user_id", "userId is required")
		return
	case err != nil:
		httperr.BadRequest(c, "chat_unavailable", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
