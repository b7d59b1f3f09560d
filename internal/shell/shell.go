// ABOUTME: Interactive menu loop for the fitness tracker.
// ABOUTME: Reads a selection, dispatches to one operation, and repeats until quit.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/harperreed/fitness/internal/storage"
)

// ErrInvalidNumber is returned when numeric input cannot be parsed.
var ErrInvalidNumber = errors.New("invalid number")

// Shell is the interactive text menu. It holds no state between operations
// beyond the storage handle.
type Shell struct {
	repo storage.Repository
	in   *bufio.Reader
	out  io.Writer
	log  *slog.Logger
}

// New creates a Shell reading answers from in and writing to out.
func New(repo storage.Repository, in io.Reader, out io.Writer, log *slog.Logger) *Shell {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Shell{
		repo: repo,
		in:   bufio.NewReader(in),
		out:  out,
		log:  log,
	}
}

type menuItem struct {
	key    string
	label  string
	action func(s *Shell, ctx context.Context) error
}

var menu = []menuItem{
	{"1", "Add exercise category", (*Shell).addCategory},
	{"2", "View exercises by category", (*Shell).viewExercisesByCategory},
	{"3", "Delete exercise category", (*Shell).deleteCategory},
	{"4", "Create workout routine", (*Shell).createRoutine},
	{"5", "View workout routines", (*Shell).viewRoutines},
	{"6", "Log a workout", (*Shell).logWorkout},
	{"7", "View exercise progress", (*Shell).viewExerciseProgress},
	{"8", "Set fitness goals", (*Shell).setGoal},
	{"9", "View progress towards fitness goals", (*Shell).viewGoals},
}

// Run shows the menu until the user quits with "0" or input ends.
// Operation failures are reported and never end the loop.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.renderMenu()
		choice, err := s.readLine("\nEnter your choice (0-9): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.goodbye()
				return nil
			}
			return err
		}

		if choice == "0" {
			s.goodbye()
			return nil
		}

		item, ok := lookup(choice)
		if !ok {
			s.fail("Invalid choice. Please enter a number between 0 and 9.")
			continue
		}

		s.log.Debug("menu selection", "choice", choice, "action", item.label)
		if err := item.action(s, ctx); err != nil {
			if errors.Is(err, io.EOF) {
				s.goodbye()
				return nil
			}
			s.report(err)
		}
	}
}

func lookup(choice string) (menuItem, bool) {
	for _, item := range menu {
		if item.key == choice {
			return item, true
		}
	}
	return menuItem{}, false
}

func (s *Shell) renderMenu() {
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, titleStyle.Render("FITNESS TRACKER APP"))
	fmt.Fprintln(s.out, rule)
	for _, item := range menu {
		fmt.Fprintf(s.out, "%s. %s\n", item.key, item.label)
	}
	fmt.Fprintln(s.out, "0. Quit")
}

func (s *Shell) goodbye() {
	fmt.Fprintln(s.out, "\nThank you for using the Fitness Tracker App!")
}

// report prints an operation error as a user-facing message.
func (s *Shell) report(err error) {
	var nf *storage.NotFoundError
	switch {
	case errors.Is(err, ErrInvalidNumber):
		s.fail("Invalid input. Please enter a number.")
	case errors.As(err, &nf):
		s.fail("%s not found!", capitalize(nf.Entity))
	case errors.Is(err, storage.ErrNotFound):
		s.fail("Not found!")
	case errors.Is(err, storage.ErrDuplicate):
		s.warn("%s", capitalize(err.Error()))
	default:
		s.log.Error("operation failed", "error", err)
		s.fail("Error: %v", err)
	}
}

// readLine prints the prompt and returns the trimmed answer.
// Returns io.EOF once input is exhausted.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readInt reads an integer answer. Non-numeric input yields ErrInvalidNumber.
func (s *Shell) readInt(prompt string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, ErrInvalidNumber)
	}
	return n, nil
}

// readID reads an integer record ID.
func (s *Shell) readID(prompt string) (int64, error) {
	n, err := s.readInt(prompt)
	return int64(n), err
}

// readIntDefault reads an integer answer, returning def for an empty answer.
func (s *Shell) readIntDefault(prompt string, def int) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, ErrInvalidNumber)
	}
	return n, nil
}

// confirm asks a y/n question. Anything but "y" is a no.
func (s *Shell) confirm(prompt string) (bool, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "y"), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
