package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown output into styled terminal text. When the
// glamour renderer cannot be built (no usable terminal), markdown is
// passed through as-is.
type Renderer struct {
	term *glamour.TermRenderer
	out  io.Writer
}

// NewRenderer creates a terminal renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(110),
	)
	if err != nil {
		term = nil
	}
	return &Renderer{term: term, out: out}
}

// Render writes markdown to the terminal, styled when possible.
func (r *Renderer) Render(markdown string) error {
	if r.term == nil {
		_, err := io.WriteString(r.out, markdown)
		return err
	}
	styled, err := r.term.Render(markdown)
	if err != nil {
		_, werr := io.WriteString(r.out, markdown)
		return werr
	}
	_, err = io.WriteString(r.out, styled)
	return err
}

// Confirm prompts for a yes/no answer on the given streams. Anything
// other than "y" or "yes" declines.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
