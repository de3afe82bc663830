package sms

import (
	"context"
	"sync"
)

// Message records a passcode delivery a test asked for.
type Message struct {
	Phone string
	Body  string
}

// MockSender records messages instead of delivering them.
type MockSender struct {
	mu       sync.RWMutex
	messages []Message

	// SendFunc overrides the default recording behaviour when set.
	SendFunc func(ctx context.Context, phone, message string) error
}

func NewMockSender() *MockSender {
	return &MockSender{messages: make([]Message, 0)}
}

func (m *MockSender) Send(ctx context.Context, phone, message string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, phone, message)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, Message{Phone: phone, Body: message})

	return nil
}

func (m *MockSender) SentMessages() []Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := make([]Message, len(m.messages))
	copy(messages, m.messages)
	return messages
}
