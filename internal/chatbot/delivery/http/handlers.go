package http

import (
	"github.com/gin-gonic/gin"

	"research-chatbot/pkg/response"
)

// Chat godoc
// @Summary     Chat with the research assistant
// @Description Classifies the user message into one action (search_articles, recommend_themes, explain, summarize, generate_metrics, chat) and returns the corresponding payload.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request - empty user_input"
// @Failure     500 {object} response.Resp "Internal Server Error - upstream model failed"
// @Failure     503 {object} response.Resp "Service Unavailable - model credential missing"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.ready {
		response.ServiceUnavailable(c, MsgChatbotNotReady)
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.HandleMessage(ctx, h.scope(c, req), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		h.mapError(c, err)
		return
	}

	response.JSON(c, h.newChatResp(output))
}
