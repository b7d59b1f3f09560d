// ABOUTME: Output styles for the interactive shell.
// ABOUTME: Status lines use fatih/color; the menu title uses lipgloss.
package shell

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	faint        = color.New(color.Faint)
)

func (s *Shell) success(format string, args ...interface{}) {
	successColor.Fprintf(s.out, "✓ "+format+"\n", args...)
}

func (s *Shell) warn(format string, args ...interface{}) {
	warnColor.Fprintf(s.out, format+"\n", args...)
}

func (s *Shell) fail(format string, args ...interface{}) {
	errorColor.Fprintf(s.out, format+"\n", args...)
}

func (s *Shell) println(args ...interface{}) {
	fmt.Fprintln(s.out, args...)
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
