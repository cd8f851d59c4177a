// Package input obtains one raw answer per question, by voice with a
// confirmation loop or by direct text entry.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console wraps the interactive terminal streams so acquirers and the
// wizard can be driven by scripted buffers in tests.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console over the given streams.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: w}
}

// Say writes a line to the user.
func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Ask prints the prompt and returns the next line, trimmed. io.EOF is
// returned when the input stream is exhausted.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprintf(c.out, "\n%s\n> ", prompt)
	return c.readLine()
}

// Confirm asks a yes/no question and reports whether the answer starts
// with y or Y.
func (c *Console) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.out, "%s ", prompt)
	line, err := c.readLine()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
