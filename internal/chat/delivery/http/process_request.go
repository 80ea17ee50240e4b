package http

import (
	"github.com/gin-gonic/gin"

	"workspace-chat/internal/chat"
)

type sendReq struct {
	Message  string `json:"message" binding:"required"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

func (h handler) processSendRequest(c *gin.Context) (chat.SendInput, error) {
	ctx := c.Request.Context()

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.processSendRequest.ShouldBindJSON: %v", err)
		return chat.SendInput{}, errInvalidBody
	}

	return chat.SendInput{
		Message:  req.Message,
		Provider: req.Provider,
		Model:    req.Model,
	}, nil
}
