// Package audio captures microphone input by shelling out to an external
// recorder (sox's rec by default). Capture quality and device handling are
// the recorder's problem; this package only bounds the recording window
// and decides whether anything was actually said.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/kalambet/voxform/internal/stt"
)

// Capturer abstracts microphone capture for the voice acquirer.
type Capturer interface {
	// Calibrate runs a short ambient-noise pass so the recorder's gain
	// settles before the real listen window opens.
	Calibrate(ctx context.Context) error

	// Listen records one utterance, waiting up to timeout for speech to
	// start and capturing at most phraseLimit of audio. It returns
	// stt.ErrNoSpeech when the window closes without any samples.
	Listen(ctx context.Context, timeout, phraseLimit time.Duration) ([]byte, error)
}

// CommandCapturer records via an external command that writes WAV data to
// stdout.
type CommandCapturer struct {
	recorder string
	device   string
}

// NewCommandCapturer creates a capturer using the given recorder binary.
// device, when non-empty, is exported as AUDIODEV for the subprocess.
func NewCommandCapturer(recorder, device string) *CommandCapturer {
	return &CommandCapturer{recorder: recorder, device: device}
}

// wavHeaderSize is the size of a canonical WAV header. Output at or below
// this length carries no samples.
const wavHeaderSize = 44

// recordArgs builds the recorder invocation: mono 16kHz WAV to stdout,
// stopping on trailing silence or at the phrase limit.
func recordArgs(phraseLimit time.Duration) []string {
	return []string{
		"-q", "-c", "1", "-r", "16000", "-t", "wav", "-",
		"silence", "1", "0.1", "3%", "1", "1.0", "3%",
		"trim", "0", fmt.Sprintf("%.1f", phraseLimit.Seconds()),
	}
}

func (c *CommandCapturer) command(ctx context.Context, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.recorder, args...)
	if c.device != "" {
		cmd.Env = append(os.Environ(), "AUDIODEV="+c.device)
	}
	return cmd
}

func (c *CommandCapturer) Calibrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	cmd := c.command(ctx, recordArgs(time.Second))
	cmd.Stdout = nil // discard
	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("calibrating recorder: %w", err)
	}
	return nil
}

func (c *CommandCapturer) Listen(ctx context.Context, timeout, phraseLimit time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout+phraseLimit)
	defer cancel()

	var out bytes.Buffer
	cmd := c.command(ctx, recordArgs(phraseLimit))
	cmd.Stdout = &out

	err := cmd.Run()
	if !hasSamples(out.Bytes()) {
		// The window closed (silence stop, deadline, or recorder exit)
		// without capturing anything audible.
		if err != nil && !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("recorder %s: %w", c.recorder, err)
		}
		return nil, stt.ErrNoSpeech
	}
	if err != nil && !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("recorder %s: %w", c.recorder, err)
	}
	return out.Bytes(), nil
}

// hasSamples reports whether the recorder output contains audio beyond a
// bare WAV header.
func hasSamples(b []byte) bool {
	return len(b) > wavHeaderSize
}
