package speech

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConsoleTransducer is the typed-text fallback: it prints assistant lines
// and reads user turns from standard input.
type ConsoleTransducer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsoleTransducer() *ConsoleTransducer {
	return &ConsoleTransducer{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

func NewConsoleTransducerWith(in io.Reader, out io.Writer) *ConsoleTransducer {
	return &ConsoleTransducer{in: bufio.NewReader(in), out: out}
}

func (t *ConsoleTransducer) Speak(text string) error {
	_, err := fmt.Fprintf(t.out, "\nAssistant: %s\n", text)
	return err
}

func (t *ConsoleTransducer) Listen() (string, error) {
	fmt.Fprint(t.out, "You: ")
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
