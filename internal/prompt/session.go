// Package prompt runs the interactive menu loop. A Session is a small state
// machine: it waits at the menu, walks through the argument prompts of the
// chosen write command one line at a time, runs the command against its
// Directory and returns to the menu until the user quits or input ends.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mesh-intelligence/roster/internal/render"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// Directory is the store a Session reads from and writes to.
type Directory interface {
	ListDepartments() ([]types.Department, error)
	ListRoles() ([]types.RoleRow, error)
	ListEmployees() ([]types.EmployeeRow, error)
	AddDepartment(name string) (int64, error)
	AddRole(title string, salary, departmentID int64) (int64, error)
	AddEmployee(firstName, lastName string, roleID int64, managerID *int64) (int64, error)
	UpdateEmployeeRole(employeeID, roleID int64) (int64, error)
}

type state int

const (
	stateMenu state = iota
	stateArgs
	stateDone
)

// Session holds the input, output and store for one run of the menu loop.
type Session struct {
	dir    Directory
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
	render render.Renderer

	state   state
	pending *command
	args    []any
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger that receives operation failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithRenderer sets how read results are printed. The default is render.Table.
func WithRenderer(r render.Renderer) Option {
	return func(s *Session) { s.render = r }
}

// NewSession creates a Session reading lines from in and writing prompts and
// results to out. Failures are logged to stderr unless WithLogger is given.
func NewSession(dir Directory, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		dir:    dir,
		in:     bufio.NewReader(in),
		out:    out,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "roster"}),
		render: render.Table,
		state:  stateMenu,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the loop until the quit option is chosen or input ends. Store
// failures are logged and never end the loop; only a failure to read input or
// write output is returned.
func (s *Session) Run() error {
	for s.state != stateDone {
		var err error
		switch s.state {
		case stateMenu:
			err = s.menu()
		case stateArgs:
			err = s.collect()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// menu prints the options, reads one choice and dispatches it.
func (s *Session) menu() error {
	if _, err := io.WriteString(s.out, menuText); err != nil {
		return err
	}
	line, ok, err := s.readLine()
	if err != nil {
		return err
	}
	if !ok {
		s.state = stateDone
		return nil
	}

	if line == quitChoice {
		s.state = stateDone
		return nil
	}

	cmd, found := commandFor(line)
	if !found {
		_, err := fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		return err
	}

	if len(cmd.args) == 0 {
		cmd.run(s, nil)
		return nil
	}
	s.pending = cmd
	s.args = s.args[:0]
	s.state = stateArgs
	return nil
}

// collect prompts for the next argument of the pending command. A value that
// does not parse is reported and asked for again. Once every argument is in,
// the command runs and the session returns to the menu.
func (s *Session) collect() error {
	arg := s.pending.args[len(s.args)]
	if _, err := io.WriteString(s.out, arg.prompt); err != nil {
		return err
	}
	line, ok, err := s.readLine()
	if err != nil {
		return err
	}
	if !ok {
		s.state = stateDone
		return nil
	}

	v, err := arg.parse(line)
	if err != nil {
		_, err := fmt.Fprintf(s.out, "Invalid %s: %v.\n", arg.field, err)
		return err
	}
	s.args = append(s.args, v)

	if len(s.args) < len(s.pending.args) {
		return nil
	}

	cmd := s.pending
	s.pending = nil
	s.state = stateMenu
	cmd.run(s, s.args)
	return nil
}

// readLine returns the next input line without its line ending and with
// surrounding spaces removed. ok is false at end of input.
func (s *Session) readLine() (string, bool, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("reading input: %w", err)
	}
	if err != nil && line == "" {
		return "", false, nil
	}
	return strings.TrimSpace(line), true, nil
}

// show renders rows of a list query.
func (s *Session) show(columns []string, records []render.Record) {
	if err := s.render(s.out, columns, records); err != nil {
		s.logger.Error("render failed", "err", err)
	}
}

// printf writes a result message. Output errors are logged, not returned,
// since they surface again at the next prompt.
func (s *Session) printf(format string, a ...any) {
	if _, err := fmt.Fprintf(s.out, format, a...); err != nil {
		s.logger.Error("write failed", "err", err)
	}
}
