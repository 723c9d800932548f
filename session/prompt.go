package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/utils"
)

// Prompter asks questions on out and reads one answer line per question from in
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter over in and out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask prints question and returns the normalized answer.
// It returns io.EOF once input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	line, err := p.readLine(question)
	if err != nil {
		return "", err
	}
	return utils.Normalize(line), nil
}

func (p *Prompter) readLine(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// Choose asks until valid accepts the answer, printing invalidMsg after each
// rejected one
func (p *Prompter) Choose(question, invalidMsg string, valid func(string) bool) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if valid(answer) {
			return answer, nil
		}
		if _, err := fmt.Fprintln(p.out, invalidMsg); err != nil {
			return "", err
		}
	}
}

// Confirm reports whether the answer is exactly "yes", ignoring case only.
// Any other answer, including end of input, is a no.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.readLine(question)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "yes", nil
}
