// Package assistant answers chat questions from the course pages by
// forwarding them to a hosted language model. Callers always get a reply:
// any failure is replaced with FallbackReply.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/pkg/logger"
)

// FallbackReply is shown whenever the model cannot be reached or returns nothing.
const FallbackReply = "Sorry, I couldn't reach the Inspire Bot assistant right now. Please try again in a moment."

const systemPrompt = `You are the Inspire Bot course assistant. Students are learning
microcontroller and robotics basics by snapping together blocks such as
"Turn LED on P???", "Motor P??? set to ???" and "Wait 1000 milliseconds".
Pins are labelled P0 to P16. Answer briefly and in plain language suitable
for beginners.`

const defaultTimeout = 30 * time.Second

var ErrEmptyAnswer = errors.New("assistant: empty answer")

// Backend sends one prompt to a model and returns its text answer.
type Backend interface {
	Reply(ctx context.Context, system, prompt string) (string, error)
}

// Reply is the text shown in the chat widget. Fallback is true when Text is
// FallbackReply rather than a model answer.
type Reply struct {
	Text     string `json:"reply"`
	Fallback bool   `json:"fallback"`
}

// Assistant wraps a Backend with a timeout, logging and the fallback reply.
type Assistant struct {
	backend Backend
	log     *logger.Logger
	timeout time.Duration
}

type Option func(*Assistant)

func WithLogger(l *logger.Logger) Option {
	return func(a *Assistant) { a.log = l }
}

func WithTimeout(d time.Duration) Option {
	return func(a *Assistant) { a.timeout = d }
}

// New returns an Assistant. A nil backend is allowed: every question then
// gets the fallback reply.
func New(backend Backend, opts ...Option) *Assistant {
	a := &Assistant{backend: backend, log: logger.Nop(), timeout: defaultTimeout}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Ask forwards text to the backend. Blank questions are not sent and yield
// an empty, non-fallback reply.
func (a *Assistant) Ask(ctx context.Context, text string) Reply {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}
	}
	if a.backend == nil {
		a.log.Warn("chat backend not configured")
		return Reply{Text: FallbackReply, Fallback: true}
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	answer, err := a.backend.Reply(ctx, systemPrompt, text)
	if err == nil && strings.TrimSpace(answer) == "" {
		err = ErrEmptyAnswer
	}
	if err != nil {
		a.log.Warn("chat request failed", "error", err, "elapsed", time.Since(start))
		return Reply{Text: FallbackReply, Fallback: true}
	}
	a.log.Debug("chat request done", "elapsed", time.Since(start), "chars", len(answer))
	return Reply{Text: strings.TrimSpace(answer)}
}
