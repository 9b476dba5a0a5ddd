package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads line-oriented answers from an input stream, echoing the
// prompt text first. An empty line is returned as an empty string, never an
// error.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the prompt and blocks until a full line is available.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
