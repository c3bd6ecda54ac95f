// Package viewmodel holds the behaviour layer behind each page: small
// state machines that own their page's transient state, independent of
// rendering. Every transition is terminal-safe: failures become user
// notifications, never panics.
package viewmodel

import (
	"strings"
	"sync"
	"time"
)

// ChatAuthor identifies who wrote a chat message.
type ChatAuthor int

const (
	AuthorUser ChatAuthor = iota
	AuthorAssistant
)

// ChatMessage is one entry in the document-analysis conversation.
type ChatMessage struct {
	ID     int
	Author ChatAuthor
	Text   string
	SentAt time.Time
}

const assistantReply = "I understand your question about the document. Based on the clauses I've analyzed, I can help clarify the legal implications and provide guidance in simple terms."

// ChatViewModel owns an append-only, ordered message history. IDs are
// monotonic (previous max + 1), never reused, never reordered.
type ChatViewModel struct {
	mu       sync.Mutex
	messages []ChatMessage
	now      func() time.Time
}

// NewChatViewModel returns an empty conversation.
func NewChatViewModel(now func() time.Time) *ChatViewModel {
	if now == nil {
		now = time.Now
	}
	return &ChatViewModel{now: now}
}

// NewSeededChatViewModel returns the conversation pre-loaded with the
// sample exchange shown for the analyzed employment contract.
func NewSeededChatViewModel(now func() time.Time) *ChatViewModel {
	vm := NewChatViewModel(now)
	base := time.Date(2024, time.January, 20, 14, 30, 0, 0, time.UTC)
	vm.messages = []ChatMessage{
		{ID: 1, Author: AuthorUser, Text: "What does the termination clause mean for me?", SentAt: base},
		{ID: 2, Author: AuthorAssistant, Text: "The termination clause means that either you or your employer can end the employment relationship by providing 30 days written notice. This gives both parties protection and time to plan for the transition.", SentAt: base.Add(time.Minute)},
		{ID: 3, Author: AuthorUser, Text: "Can I negotiate the salary mentioned in this contract?", SentAt: base.Add(5 * time.Minute)},
		{ID: 4, Author: AuthorAssistant, Text: "Yes, salary is typically negotiable before signing the contract. The document shows a base salary of $75,000 plus potential performance bonuses. You could discuss adjustments to the base salary, bonus structure, or additional benefits during negotiations.", SentAt: base.Add(6 * time.Minute)},
	}
	return vm
}

// Send appends the user's message followed by the assistant's reply.
// Blank input is a no-op.
func (vm *ChatViewModel) Send(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	next := vm.maxIDLocked() + 1
	now := vm.now()
	vm.messages = append(vm.messages,
		ChatMessage{ID: next, Author: AuthorUser, Text: text, SentAt: now},
		ChatMessage{ID: next + 1, Author: AuthorAssistant, Text: assistantReply, SentAt: now},
	)
}

// Messages returns the history in send order.
func (vm *ChatViewModel) Messages() []ChatMessage {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	out := make([]ChatMessage, len(vm.messages))
	copy(out, vm.messages)
	return out
}

func (vm *ChatViewModel) maxIDLocked() int {
	max := 0
	for _, m := range vm.messages {
		if m.ID > max {
			max = m.ID
		}
	}
	return max
}
