// Package wizard drives the question sequence: acquire, validate, coerce,
// persist, display.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kalambet/voxform/internal/input"
	"github.com/kalambet/voxform/internal/profile"
	"github.com/kalambet/voxform/internal/validate"
)

// Saver persists the finished record. Implemented by record.Store.
type Saver interface {
	Save(p *profile.Profile) (string, error)
}

// Runner owns one wizard session. The input mode is chosen once at start
// and holds for every question.
type Runner struct {
	console *input.Console
	voice   input.Acquirer // nil disables the voice option entirely
	text    input.Acquirer
	store   Saver
	clock   profile.Clock

	// probe reports whether the speech service is reachable; nil means
	// don't check. An unreachable service downgrades the session to text.
	probe func(ctx context.Context) bool
}

// NewRunner assembles a session runner.
func NewRunner(console *input.Console, voice, text input.Acquirer, store Saver, clock profile.Clock, probe func(ctx context.Context) bool) *Runner {
	return &Runner{
		console: console,
		voice:   voice,
		text:    text,
		store:   store,
		clock:   clock,
		probe:   probe,
	}
}

// Run executes the full session: mode choice, every question in order,
// completion stamp, persistence, and summary. It returns ctx.Err() on
// operator interrupt, in which case nothing is persisted.
func (r *Runner) Run(ctx context.Context) error {
	p := &profile.Profile{SessionID: uuid.NewString()}
	slog.Info("wizard session started", "session_id", p.SessionID)

	r.console.Say("\nProfile Creation Wizard")
	r.console.Say(strings.Repeat("=", 50))

	acquirer, err := r.chooseAcquirer(ctx)
	if err != nil {
		return err
	}

	for _, q := range Questions() {
		if err := r.askUntilValid(ctx, acquirer, q, p); err != nil {
			return err
		}
	}

	p.Complete(r.clock)

	path, err := r.store.Save(p)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	slog.Info("profile saved", "session_id", p.SessionID, "path", path)

	r.console.Say("\nProfile saved to %s", path)
	r.console.Say("\nProfile Summary:")
	r.console.Say(strings.Repeat("=", 50))
	r.console.Say("%s", strings.TrimRight(p.Summary(), "\n"))
	r.console.Say(strings.Repeat("=", 50))
	return nil
}

// chooseAcquirer asks for the session's input mode. Voice is only offered
// when a voice acquirer is wired, and only used when the speech service
// answers its readiness probe.
func (r *Runner) chooseAcquirer(ctx context.Context) (input.Acquirer, error) {
	if r.voice == nil {
		return r.text, nil
	}

	useVoice, err := r.console.Confirm("\nUse voice input? (y/n):")
	if err != nil {
		return nil, err
	}
	if !useVoice {
		return r.text, nil
	}

	if r.probe != nil && !r.probe(ctx) {
		r.console.Say("Speech service is not reachable; using text input for this session.")
		return r.text, nil
	}
	return r.voice, nil
}

// askUntilValid loops one question until a validated answer lands in the
// record. Validation failures and unexpected acquisition errors both
// re-ask the same question; only interrupt or a closed console aborts.
func (r *Runner) askUntilValid(ctx context.Context, acquirer input.Acquirer, q Question, p *profile.Profile) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := acquirer.Acquire(ctx, q.Prompt, q.Kind)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return err
			}
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("input closed before %s was answered: %w", q.Field, err)
			}
			r.console.Say("Error: %v. Please try again.", err)
			continue
		}

		if !validate.Validate(q.Kind, answer) {
			r.console.Say("Invalid %s format. Please try again.", q.Field)
			continue
		}

		if err := p.Apply(q.Field, answer); err != nil {
			r.console.Say("Error: %v. Please try again.", err)
			continue
		}
		return nil
	}
}
