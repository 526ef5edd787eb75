package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ahmad2493/real-estate-platform/internal/rag"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// historyLimit caps the per-connection conversation window so long chats do
// not grow prompts without bound. Oldest turns drop first.
const historyLimit = 20

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Content string   `json:"content"`
	User    rag.User `json:"user,omitempty"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type     string `json:"type"` // "response" or "error"
	Category string `json:"category,omitempty"`
	Content  string `json:"content"`
}

// handleChatSocket runs a chat session over one WebSocket connection. The
// conversation history lives on the connection and is replayed into each
// pipeline call; nothing is persisted server side.
func (s *Server) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	var history []rag.Message

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			sendChatError(conn, "invalid message format")
			continue
		}
		if req.Content == "" {
			sendChatError(conn, "content is required")
			continue
		}

		result, err := s.pipeline.Query(r.Context(), req.Content, history, req.User)
		if err != nil {
			log.Printf("server: websocket query: %v", err)
			sendChatError(conn, "internal error")
			continue
		}

		history = append(history,
			rag.Message{Role: rag.RoleUser, Content: req.Content},
			rag.Message{Role: rag.RoleAssistant, Content: result.Answer},
		)
		if len(history) > historyLimit {
			history = history[len(history)-historyLimit:]
		}

		sendChat(conn, chatResponse{
			Type:     "response",
			Category: string(result.Intent),
			Content:  result.Answer,
		})
	}
}

func sendChat(conn *websocket.Conn, resp chatResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func sendChatError(conn *websocket.Conn, msg string) {
	sendChat(conn, chatResponse{Type: "error", Content: msg})
}
