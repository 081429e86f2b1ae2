package latency

import (
	"context"
	"time"
)

type Op string

const (
	OpList     Op = "list"
	OpGet      Op = "get"
	OpCreate   Op = "create"
	OpUpdate   Op = "update"
	OpDelete   Op = "delete"
	OpLogin    Op = "login"
	OpRegister Op = "register"
	OpSession  Op = "session"

	OpMessageList   Op = "message_list"
	OpMessageGet    Op = "message_get"
	OpMessageSend   Op = "message_send"
	OpMessageUpdate Op = "message_update"
	OpMessageDelete Op = "message_delete"
)

// Simulator emula a latência de rede de um backend real antes de cada operação.
type Simulator struct {
	profile map[Op]time.Duration
}

// DefaultProfile são os tempos usados pelo site original.
func DefaultProfile() map[Op]time.Duration {
	return map[Op]time.Duration{
		OpList:          800 * time.Millisecond,
		OpGet:           500 * time.Millisecond,
		OpCreate:        1000 * time.Millisecond,
		OpUpdate:        1000 * time.Millisecond,
		OpDelete:        800 * time.Millisecond,
		OpLogin:         800 * time.Millisecond,
		OpRegister:      1000 * time.Millisecond,
		OpSession:       300 * time.Millisecond,
		OpMessageList:   100 * time.Millisecond,
		OpMessageGet:    75 * time.Millisecond,
		OpMessageSend:   150 * time.Millisecond,
		OpMessageUpdate: 75 * time.Millisecond,
		OpMessageDelete: 100 * time.Millisecond,
	}
}

func NewSimulator(profile map[Op]time.Duration) *Simulator {
	return &Simulator{profile: profile}
}

// NewScaledSimulator multiplies the default profile by scale; zero or less disables delays.
func NewScaledSimulator(scale float64) *Simulator {
	if scale <= 0 {
		return None()
	}

	profile := DefaultProfile()
	for op, d := range profile {
		profile[op] = time.Duration(float64(d) * scale)
	}
	return NewSimulator(profile)
}

// None never waits. Used by tests.
func None() *Simulator {
	return &Simulator{}
}

// Wait blocks for the duration configured for op, or until ctx is done.
func (s *Simulator) Wait(ctx context.Context, op Op) error {
	if s == nil {
		return nil
	}

	d := s.profile[op]
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
