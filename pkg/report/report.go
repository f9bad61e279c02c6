// Package report carries the human-readable diagnostics the generator emits
// when validation output is requested. Diagnostics are informational only;
// callers must rely on returned errors, never on printed lines.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives diagnostic lines from the generator.
type Reporter interface {
	Successf(format string, args ...any)
	Failuref(format string, args ...any)
	Infof(format string, args ...any)
}

// Nop discards every diagnostic. It is the default for library callers.
type Nop struct{}

func (Nop) Successf(string, ...any) {}
func (Nop) Failuref(string, ...any) {}
func (Nop) Infof(string, ...any)    {}

// Console writes color-coded diagnostics to a writer. The colors carry no
// machine-readable meaning.
type Console struct {
	out     io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
}

// NewConsole creates a console reporter. A nil writer defaults to stderr so
// diagnostics never mix with generated source on stdout.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stderr
	}
	return &Console{
		out:     out,
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintln(c.out, c.success.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Failuref(format string, args ...any) {
	fmt.Fprintln(c.out, c.failure.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintln(c.out, c.info.Render(fmt.Sprintf(format, args...)))
}
