package input

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kalambet/voxform/internal/stt"
	"github.com/kalambet/voxform/internal/validate"
)

// --- Fakes ---

// fakeCapturer returns canned audio; calibration always succeeds.
type fakeCapturer struct {
	listens []listenResult
	calls   int
}

type listenResult struct {
	audio []byte
	err   error
}

func (f *fakeCapturer) Calibrate(ctx context.Context) error { return nil }

func (f *fakeCapturer) Listen(ctx context.Context, timeout, phraseLimit time.Duration) ([]byte, error) {
	if f.calls >= len(f.listens) {
		return nil, stt.ErrNoSpeech
	}
	r := f.listens[f.calls]
	f.calls++
	return r.audio, r.err
}

// fakeRecognizer returns scripted transcripts per call.
type fakeRecognizer struct {
	results []recognizeResult
	calls   int
}

type recognizeResult struct {
	transcript string
	err        error
}

func (f *fakeRecognizer) Recognize(ctx context.Context, audio []byte, language string) (string, error) {
	if f.calls >= len(f.results) {
		return "", stt.ErrUnintelligible
	}
	r := f.results[f.calls]
	f.calls++
	return r.transcript, r.err
}

func audioOK() listenResult { return listenResult{audio: []byte("pcm")} }

func newVoice(t *testing.T, userInput string, mic *fakeCapturer, rec *fakeRecognizer) (*VoiceAcquirer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	console := NewConsole(strings.NewReader(userInput), &out)
	fallback := NewTextAcquirer(console)
	va := NewVoiceAcquirer(console, mic, rec, fallback, VoiceOptions{})
	return va, &out
}

var ctx = context.Background()

// --- Tests ---

func TestVoice_ConfirmedFirstTry(t *testing.T) {
	mic := &fakeCapturer{listens: []listenResult{audioOK()}}
	rec := &fakeRecognizer{results: []recognizeResult{{transcript: "Jane Doe"}}}
	va, _ := newVoice(t, "y\n", mic, rec)

	got, err := va.Acquire(ctx, "What is your full name?", validate.Text)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if got != "Jane Doe" {
		t.Errorf("answer = %q, want %q", got, "Jane Doe")
	}
}

func TestVoice_NormalizesByKind(t *testing.T) {
	mic := &fakeCapturer{listens: []listenResult{audioOK()}}
	rec := &fakeRecognizer{results: []recognizeResult{{transcript: "john at example dot com"}}}
	va, _ := newVoice(t, "y\n", mic, rec)

	got, err := va.Acquire(ctx, "What is your email address?", validate.Email)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if got != "john@example.com" {
		t.Errorf("answer = %q, want normalized email", got)
	}
}

func TestVoice_DeniedThenConfirmed(t *testing.T) {
	mic := &fakeCapturer{listens: []listenResult{audioOK(), audioOK()}}
	rec := &fakeRecognizer{results: []recognizeResult{
		{transcript: "Jan Doh"},
		{transcript: "Jane Doe"},
	}}
	va, _ := newVoice(t, "n\ny\n", mic, rec)

	got, err := va.Acquire(ctx, "What is your full name?", validate.Text)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if got != "Jane Doe" {
		t.Errorf("answer = %q, want the second transcript", got)
	}
}

func TestVoice_NoSpeechExhaustsBudgetThenFallsBack(t *testing.T) {
	mic := &fakeCapturer{listens: []listenResult{
		{err: stt.ErrNoSpeech},
		{err: stt.ErrNoSpeech},
		{err: stt.ErrNoSpeech},
	}}
	rec := &fakeRecognizer{}
	// All three attempts fail, then the typed answer is used.
	va, out := newVoice(t, "Jane Doe\n", mic, rec)

	got, err := va.Acquire(ctx, "What is your full name?", validate.Text)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if got != "Jane Doe" {
		t.Errorf("answer = %q, want typed fallback", got)
	}
	if mic.calls != 3 {
		t.Errorf("listen calls = %d, want the full retry budget", mic.calls)
	}
	if !strings.Contains(out.String(), "Switching to text input") {
		t.Error("missing fallback notice")
	}
}

func TestVoice_UnintelligibleConsumesAttempt(t *testing.T) {
	mic := &fakeCapturer{listens: []listenResult{audioOK(), audioOK()}}
	rec := &fakeRecognizer{results: []recognizeResult{
		{err: stt.ErrUnintelligible},
		{transcript: "Jane Doe"},
	}}
	va, out := newVoice(t, "y\n", mic, rec)

	got, err := va.Acquire(ctx, "What is your full name?", validate.Text)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if got != "Jane Doe" {
		t.Errorf("answer = %q, want second attempt transcript", got)
	}
	if !strings.Contains(out.String(), "attempt 2/3") {
		t.Error("second attempt was not announced")
	}
}

func TestVoice_ServiceErrorFallsBackImmediately(t *testing.T) {
	mic := &fakeCapturer{listens: []listenResult{audioOK()}}
	rec := &fakeRecognizer{results: []recognizeResult{
		{err: &stt.ServiceError{Op: "recognize", Err: errors.New("connection refused")}},
	}}
	va, out := newVoice(t, "Jane Doe\n", mic, rec)

	got, err := va.Acquire(ctx, "What is your full name?", validate.Text)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if got != "Jane Doe" {
		t.Errorf("answer = %q, want typed fallback", got)
	}
	if rec.calls != 1 {
		t.Errorf("recognize calls = %d, want 1 (no retry on service error)", rec.calls)
	}
	if !strings.Contains(out.String(), "Speech service error") {
		t.Error("missing service error notice")
	}
}

func TestVoice_CancelledContext(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	mic := &fakeCapturer{}
	rec := &fakeRecognizer{}
	va, _ := newVoice(t, "", mic, rec)

	_, err := va.Acquire(cancelled, "What is your full name?", validate.Text)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestText_TrimsLine(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("  Jane Doe  \n"), &out)
	ta := NewTextAcquirer(console)

	got, err := ta.Acquire(ctx, "What is your full name?", validate.Text)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if got != "Jane Doe" {
		t.Errorf("answer = %q, want trimmed line", got)
	}
	if !strings.Contains(out.String(), "What is your full name?") {
		t.Error("prompt was not printed")
	}
}

func TestText_EOF(t *testing.T) {
	console := NewConsole(strings.NewReader(""), &bytes.Buffer{})
	ta := NewTextAcquirer(console)

	if _, err := ta.Acquire(ctx, "prompt", validate.Text); err == nil {
		t.Error("Acquire on exhausted input should fail")
	}
}

func TestConsole_Confirm(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"y\n", true},
		{"Yes\n", true},
		{"n\n", false},
		{"maybe\n", false},
	}
	for _, c := range cases {
		console := NewConsole(strings.NewReader(c.line), &bytes.Buffer{})
		got, err := console.Confirm("Is this correct? (y/n):")
		if err != nil {
			t.Fatalf("Confirm(%q): %v", c.line, err)
		}
		if got != c.want {
			t.Errorf("Confirm(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}
