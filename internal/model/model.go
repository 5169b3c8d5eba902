package model

import "time"

// Role tags who authored a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message stores a single message in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is a named, ordered sequence of messages. All conversations of
// a session share the session's document.
type Conversation struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}

// ConversationSummary is the sidebar entry for a conversation.
type ConversationSummary struct {
	ID           string `json:"id"`
	MessageCount int    `json:"message_count"`
	Active       bool   `json:"active"`
}

// DocumentInfo describes the currently loaded document without its text.
type DocumentInfo struct {
	Name       string    `json:"name"`
	Pages      int       `json:"pages"`
	Characters int       `json:"characters"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// SessionView is everything the UI needs to re-render a session.
type SessionView struct {
	Conversations []ConversationSummary `json:"conversations"`
	Active        *Conversation         `json:"active,omitempty"`
	Document      *DocumentInfo         `json:"document,omitempty"`
	Tone          string                `json:"tone"`
	Notice        *Notice               `json:"notice,omitempty"`
}

// NoticeKind classifies a one-shot message shown after a form post.
type NoticeKind string

const (
	NoticeSuccess  NoticeKind = "success"
	NoticeAdvisory NoticeKind = "advisory"
	NoticeError    NoticeKind = "error"
)

// Notice is a one-shot message shown once on the next page render.
type Notice struct {
	Kind NoticeKind `json:"kind"`
	Text string     `json:"text"`
}
