package rag

// Message roles as supplied by API callers.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a caller-supplied conversation. Conversations are
// not persisted by this system; the caller sends history with each request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// User identifies the caller for flows that need authorization, such as
// lease generation.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
