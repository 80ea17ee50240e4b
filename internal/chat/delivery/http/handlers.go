package http

import (
	"github.com/gin-gonic/gin"

	"workspace-chat/internal/middleware"
	"workspace-chat/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Routes one message: the commands calendar, drive, tasks, youtube and email run a Workspace experiment, anything else is answered by an AI provider.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Invalid body or provider failure"
// @Router      /api/v1/chat [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSendRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Send(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.Send.uc.Send: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendResp(output))
}
