package llmutils

import (
	"fmt"

	"github.com/openai/openai-go"
)

// Chat roles accepted by Message.
const (
	RoleSystem    = "system"
	RoleDeveloper = "developer"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role/content pair of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func DeveloperMessage(content string) Message {
	return Message{Role: RoleDeveloper, Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// OpenAI converts the message into the SDK's message union. Content is passed
// through as-is; only the role has to be one the chat API can encode.
func (m Message) OpenAI() (openai.ChatCompletionMessageParamUnion, error) {
	switch m.Role {
	case RoleSystem:
		return openai.SystemMessage(m.Content), nil
	case RoleDeveloper:
		return openai.DeveloperMessage(m.Content), nil
	case RoleUser:
		return openai.UserMessage(m.Content), nil
	case RoleAssistant:
		return openai.AssistantMessage(m.Content), nil
	default:
		return openai.ChatCompletionMessageParamUnion{}, fmt.Errorf("%w: %q", ErrUnsupportedRole, m.Role)
	}
}

// MessageList holds an ordered collection of Message to preserve the history.
type MessageList struct {
	Messages []Message
}

func NewMessageList(msgs ...Message) *MessageList {
	return &MessageList{
		Messages: append([]Message{}, msgs...),
	}
}

func (ml *MessageList) Len() int {
	return len(ml.Messages)
}

// Add appends one or more new messages to the MessageList in a FIFO order.
func (ml *MessageList) Add(msgs ...Message) {
	ml.Messages = append(ml.Messages, msgs...)
}

// AddFirst prepends a message, typically the system prompt.
func (ml *MessageList) AddFirst(msg Message) {
	ml.Messages = append([]Message{msg}, ml.Messages...)
}

func (ml *MessageList) All() []Message {
	return ml.Messages
}

func (ml *MessageList) Clone() *MessageList {
	return &MessageList{
		Messages: append([]Message{}, ml.Messages...),
	}
}

// OpenAI converts every message in order. An empty list converts to an empty,
// non-nil slice so the request still carries a messages array.
func (ml *MessageList) OpenAI() ([]openai.ChatCompletionMessageParamUnion, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(ml.Messages))
	for i, msg := range ml.Messages {
		converted, err := msg.OpenAI()
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		out = append(out, converted)
	}
	return out, nil
}
