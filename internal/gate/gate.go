// Package gate implements one-shot forms: a form that can be submitted
// successfully at most once per browser profile.
package gate

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/bookhaven/storefront/internal/storage"
)

// ErrAlreadySubmitted is returned by Submit once the gate has been passed.
var ErrAlreadySubmitted = errors.New("form already submitted")

// State of a one-shot gate.
type State int

const (
	Pending State = iota
	Submitted
)

func (s State) String() string {
	if s == Submitted {
		return "submitted"
	}
	return "pending"
}

// Outcome of a submission.
type Outcome int

const (
	// Accepted means the submission was persisted and the thank-you view applies.
	Accepted Outcome = iota
	// Refocus means the input was rejected; nothing was persisted.
	Refocus
)

// Gate is a one-shot form keyed by a persisted "true" flag.
type Gate struct {
	slots   storage.Storage
	flagKey string
	state   State
}

// Mount reads the persisted flag and returns the gate in its current state.
func Mount(ctx context.Context, slots storage.Storage, flagKey string) (*Gate, error) {
	v, _, err := slots.Get(ctx, flagKey)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", flagKey, err)
	}
	g := &Gate{slots: slots, flagKey: flagKey}
	if v == "true" {
		g.state = Submitted
	}
	return g, nil
}

// State returns the gate state.
func (g *Gate) State() State { return g.state }

// ShowThanks reports whether the thank-you view replaces the form.
func (g *Gate) ShowThanks() bool { return g.state == Submitted }

// pass persists the flag plus any extra slots and moves to Submitted.
func (g *Gate) pass(ctx context.Context, extra map[string]string) error {
	if g.state == Submitted {
		return ErrAlreadySubmitted
	}
	if err := g.slots.Set(ctx, g.flagKey, "true"); err != nil {
		return fmt.Errorf("writing %s: %w", g.flagKey, err)
	}
	for k, v := range extra {
		if err := g.slots.Set(ctx, k, v); err != nil {
			return fmt.Errorf("writing %s: %w", k, err)
		}
	}
	g.state = Submitted
	return nil
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s, trimmed, looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Subscribe is the newsletter form in the footer.
type Subscribe struct {
	*Gate
	log *zap.Logger
}

// MountSubscribe mounts the subscribe gate.
func MountSubscribe(ctx context.Context, slots storage.Storage, log *zap.Logger) (*Subscribe, error) {
	g, err := Mount(ctx, slots, storage.KeySubscribed)
	if err != nil {
		return nil, err
	}
	return &Subscribe{Gate: g, log: log}, nil
}

// Submit validates email and, when it is well formed, records the
// subscription. Rejected input is only logged.
func (s *Subscribe) Submit(ctx context.Context, email string) (Outcome, error) {
	if s.ShowThanks() {
		return Refocus, ErrAlreadySubmitted
	}

	email = strings.TrimSpace(email)
	if email == "" {
		s.log.Info("subscribe validation failed: email is required")
		return Refocus, nil
	}
	if !IsValidEmail(email) {
		s.log.Info("subscribe validation failed: email format is invalid", zap.String("email", email))
		return Refocus, nil
	}

	if err := s.pass(ctx, map[string]string{storage.KeySubscribedEmail: email}); err != nil {
		return Refocus, err
	}
	s.log.Info("subscribe validation passed", zap.String("email", email))
	return Accepted, nil
}

// Contact is the contact-us form. Any submission passes.
type Contact struct {
	*Gate
}

// MountContact mounts the contact gate.
func MountContact(ctx context.Context, slots storage.Storage) (*Contact, error) {
	g, err := Mount(ctx, slots, storage.KeyContact)
	if err != nil {
		return nil, err
	}
	return &Contact{Gate: g}, nil
}

// Submit records the submission.
func (c *Contact) Submit(ctx context.Context) (Outcome, error) {
	if err := c.pass(ctx, nil); err != nil {
		return Refocus, err
	}
	return Accepted, nil
}
