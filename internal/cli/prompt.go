package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter asks yes/no and free-text questions on a terminal
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next line without its terminator. io.EOF is only
// returned when nothing was read.
func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks question until the answer is y/yes or n/no
func (p *prompter) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s (y/n): ", question)
		answer, err := p.readLine()
		if err != nil {
			return false, fmt.Errorf("reading answer: %w", err)
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please enter 'y' for yes or 'n' for no.")
	}
}

// ConfirmDefault asks once; anything other than n/no counts as yes
func (p *prompter) ConfirmDefault(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n): ", question)
	answer, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	a := strings.ToLower(answer)
	return a != "n" && a != "no", nil
}

// Ask returns the trimmed answer to question
func (p *prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	answer, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return answer, nil
}
