// Package prompt описывает порт подтверждений: контроллер спрашивает,
// а отвечает UI-слой (диалог, локальный API, скрипт в тестах).
package prompt

import (
	"context"
	"errors"
	"sync"
)

// ErrDeclined пользователь ответил отказом на подтверждение.
var ErrDeclined = errors.New("declined by partner")

type Kind string

const (
	KindCollected    Kind = "collected"
	KindShortfall    Kind = "shortfall"
	KindDelivery     Kind = "delivery"
	KindStatus       Kind = "status"
	KindCancelReason Kind = "cancel_reason"
	KindCancel       Kind = "cancel"
	KindDelayReason  Kind = "delay_reason"
	KindDelay        Kind = "delay"
	KindReject       Kind = "reject"
	KindPayout       Kind = "payout"
)

type Prompt struct {
	Kind    Kind
	Message string
}

type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) bool
	// PromptText возвращает false, если пользователь отказался отвечать.
	PromptText(ctx context.Context, p Prompt, def string) (string, bool)
}

// Scripted отвечает заранее заданными ответами. Неизвестный вопрос
// считается отказом.
type Scripted struct {
	answers map[Kind]bool
	texts   map[Kind]string

	mu    sync.Mutex
	asked []Prompt
}

func NewScripted() *Scripted {
	return &Scripted{
		answers: make(map[Kind]bool),
		texts:   make(map[Kind]string),
	}
}

func (s *Scripted) Answer(kind Kind, ok bool) *Scripted {
	s.answers[kind] = ok
	return s
}

func (s *Scripted) Text(kind Kind, text string) *Scripted {
	s.texts[kind] = text
	return s
}

// UseDefault на вопрос kind принимается предложенное значение.
func (s *Scripted) UseDefault(kind Kind) *Scripted {
	s.answers[kind] = true
	return s
}

func (s *Scripted) Confirm(_ context.Context, p Prompt) bool {
	s.record(p)
	return s.answers[p.Kind]
}

func (s *Scripted) PromptText(_ context.Context, p Prompt, def string) (string, bool) {
	s.record(p)
	if text, ok := s.texts[p.Kind]; ok {
		return text, true
	}
	if s.answers[p.Kind] {
		return def, true
	}
	return "", false
}

// Asked заданные вопросы по порядку.
func (s *Scripted) Asked() []Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Prompt, len(s.asked))
	copy(out, s.asked)
	return out
}

func (s *Scripted) record(p Prompt) {
	s.mu.Lock()
	s.asked = append(s.asked, p)
	s.mu.Unlock()
}
