// Package sms delivers one-time passcodes to phone numbers. Outbound
// delivery is simulated in this product; the Sender seam exists so a real
// gateway can be wired in without touching the handlers.
package sms

import (
	"context"
	"log/slog"
)

type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// LogSender writes the message to the application log instead of sending it.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, phone, message string) error {
	s.logger.InfoContext(ctx, "sms delivery simulated", "phone", phone, "message", message)

	return nil
}
