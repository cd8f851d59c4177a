package input

import (
	"context"
	"errors"
	"time"

	"github.com/kalambet/voxform/internal/audio"
	"github.com/kalambet/voxform/internal/normalize"
	"github.com/kalambet/voxform/internal/stt"
	"github.com/kalambet/voxform/internal/validate"
)

// Acquirer obtains one raw answer for a question prompt.
type Acquirer interface {
	Acquire(ctx context.Context, prompt string, kind validate.Kind) (string, error)
}

// TextAcquirer reads a trimmed line from the console. No normalization is
// applied to typed answers.
type TextAcquirer struct {
	console *Console
}

// NewTextAcquirer creates a text-mode acquirer.
func NewTextAcquirer(console *Console) *TextAcquirer {
	return &TextAcquirer{console: console}
}

func (a *TextAcquirer) Acquire(ctx context.Context, prompt string, kind validate.Kind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return a.console.Ask(prompt)
}

// VoiceOptions bounds a voice acquisition attempt.
type VoiceOptions struct {
	Language      string
	MaxRetries    int
	ListenTimeout time.Duration
	PhraseLimit   time.Duration
}

// defaults mirror the capture parameters of the original questionnaire:
// three attempts, 10s to start speaking, 5s per phrase.
func (o *VoiceOptions) setDefaults() {
	if o.Language == "" {
		o.Language = "en-US"
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 3
	}
	if o.ListenTimeout <= 0 {
		o.ListenTimeout = 10 * time.Second
	}
	if o.PhraseLimit <= 0 {
		o.PhraseLimit = 5 * time.Second
	}
}

// VoiceAcquirer captures an utterance, sends it to the recognition
// service, normalizes the transcript for the question's kind, and asks the
// user to confirm it. It falls back to its text acquirer when the retry
// budget is spent or the service itself fails.
type VoiceAcquirer struct {
	console    *Console
	capturer   audio.Capturer
	recognizer stt.Recognizer
	fallback   Acquirer
	opts       VoiceOptions
}

// NewVoiceAcquirer creates a voice-mode acquirer. fallback handles the
// question when voice input cannot produce a confirmed transcript.
func NewVoiceAcquirer(console *Console, capturer audio.Capturer, recognizer stt.Recognizer, fallback Acquirer, opts VoiceOptions) *VoiceAcquirer {
	opts.setDefaults()
	return &VoiceAcquirer{
		console:    console,
		capturer:   capturer,
		recognizer: recognizer,
		fallback:   fallback,
		opts:       opts,
	}
}

func (a *VoiceAcquirer) Acquire(ctx context.Context, prompt string, kind validate.Kind) (string, error) {
	for attempt := 1; attempt <= a.opts.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		a.console.Say("\n%s (attempt %d/%d)", prompt, attempt, a.opts.MaxRetries)

		transcript, err := a.listenOnce(ctx)
		if err != nil {
			switch {
			case errors.Is(err, stt.ErrNoSpeech):
				a.console.Say("No speech detected. Please speak louder.")
				continue
			case errors.Is(err, stt.ErrUnintelligible):
				a.console.Say("Could not understand. Please speak clearly.")
				continue
			}
			var se *stt.ServiceError
			if errors.As(err, &se) {
				// Transport failure, not a recognition failure: voice is
				// not coming back this question.
				a.console.Say("Speech service error: %v", se.Err)
				a.console.Say("\nSwitching to text input...")
				return a.fallback.Acquire(ctx, prompt, kind)
			}
			return "", err
		}

		transcript = normalize.Transcript(kind, transcript)
		a.console.Say("Recognized: %q", transcript)

		ok, err := a.console.Confirm("Is this correct? (y/n):")
		if err != nil {
			return "", err
		}
		if ok {
			return transcript, nil
		}
	}

	a.console.Say("\nSwitching to text input...")
	return a.fallback.Acquire(ctx, prompt, kind)
}

func (a *VoiceAcquirer) listenOnce(ctx context.Context) (string, error) {
	a.console.Say("Adjusting for ambient noise...")
	if err := a.capturer.Calibrate(ctx); err != nil {
		return "", err
	}

	a.console.Say("Listening...")
	pcm, err := a.capturer.Listen(ctx, a.opts.ListenTimeout, a.opts.PhraseLimit)
	if err != nil {
		return "", err
	}
	return a.recognizer.Recognize(ctx, pcm, a.opts.Language)
}
