package http

import (
	"strings"

	"research-chatbot/internal/chatbot"
)

// --- Request DTOs ---

type chatReq struct {
	UserInput string `json:"user_input"`
	UserID    string `json:"user_id"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.UserInput) == "" {
		return chatbot.ErrEmptyInput
	}
	return nil
}

func (r chatReq) toInput() chatbot.ChatInput {
	userID := r.UserID
	if userID == "" {
		userID = "default"
	}
	return chatbot.ChatInput{
		UserInput: r.UserInput,
		UserID:    userID,
	}
}

// --- Response DTOs ---

// chatResp is the documented wire shape of POST /chat. Null fields are
// omitted from the JSON body.
type chatResp struct {
	Action   string   `json:"action"`
	Message  string   `json:"message,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Data     any      `json:"data,omitempty"`
}

func (h *handler) newChatResp(out chatbot.ChatOutput) chatResp {
	return chatResp{
		Action:   string(out.Action),
		Message:  out.Message,
		Keywords: out.Keywords,
		Data:     out.Data,
	}
}
