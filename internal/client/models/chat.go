package models

// Message roles as sent on the wire.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MessageSource points at a knowledge-base document backing an answer.
type MessageSource struct {
	DocumentID int64   `json:"document_id"`
	Title      string  `json:"title"`
	Score      float64 `json:"score"`
}

// ChatMessage is one turn of the assistant conversation. Immutable once
// produced by the backend.
type ChatMessage struct {
	ID        string          `json:"id"`
	Role      string          `json:"role"`
	Content   string          `json:"content"`
	Sources   []MessageSource `json:"sources"`
	CreatedAt string          `json:"created_at"`
}

// SendMessageRequest is the chat-send payload.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// ConversationSummary is one entry of the conversation list.
type ConversationSummary struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	MessageCount  int    `json:"message_count"`
	LastMessageAt string `json:"last_message_at"`
}

// DocumentSummary is one entry of the knowledge-base document list.
type DocumentSummary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}
