package prompt

import "github.com/google/uuid"

// Conversation roles rendered into the chat prompt.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single utterance in a conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session accumulates a conversation across prompt builds.
type Session struct {
	Id    uuid.UUID `json:"id"`
	Turns []Turn    `json:"turns"`
}

// NewSession creates an empty session with a fresh id.
func NewSession() *Session {
	return &Session{Id: uuid.New()}
}

// AddTurn appends a turn to the conversation.
func (s *Session) AddTurn(role, content string) {
	s.Turns = append(s.Turns, Turn{Role: role, Content: content})
}

// AddExchange appends a user turn and the assistant reply that answered it.
func (s *Session) AddExchange(userInput, reply string) {
	s.AddTurn(RoleUser, userInput)
	s.AddTurn(RoleAssistant, reply)
}
