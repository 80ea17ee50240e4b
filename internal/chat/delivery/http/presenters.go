package http

import (
	"time"

	"workspace-chat/internal/chat"
)

type messageResp struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

type sendResp struct {
	Reply messageResp `json:"reply"`
}

func (h handler) newSendResp(output chat.SendOutput) sendResp {
	return sendResp{
		Reply: messageResp{
			ID:        output.Reply.ID,
			Sender:    output.Reply.Sender,
			Text:      output.Reply.Text,
			Type:      output.Reply.Type,
			Data:      output.Reply.Data,
			Timestamp: output.Reply.Timestamp.Format(time.RFC3339),
		},
	}
}
