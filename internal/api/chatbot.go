package api

import (
	"net/http"

	"github.com/jlcruzar/siklo/internal/chatbot"
)

type chatbotRequest struct {
	Message string `json:"message"`
}

type chatbotResponse struct {
	Reply string `json:"reply"`
}

// ChatbotHandler handles POST /api/chatbot. Stateless keyword lookup,
// no store interaction.
func ChatbotHandler(w http.ResponseWriter, r *http.Request) {
	var req chatbotRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	jsonResponse(w, http.StatusOK, chatbotResponse{Reply: chatbot.Reply(req.Message)})
}
