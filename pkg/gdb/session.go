// Package gdb drives a gdb subprocess over its MI interpreter and adapts
// it to the frame-filter host surface: parameter lookup, console command
// execution, and call-stack retrieval.
package gdb

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// Session is a synchronous GDB/MI session. One command is written and its
// response read to completion before the next; asynchronous records gdb
// emits along the way are consumed inline. A Session is not safe for
// concurrent use.
type Session struct {
	path   string
	args   []string
	target string
	core   string
	pid    int

	cmd   *exec.Cmd
	stdin io.WriteCloser
	lines *bufio.Scanner
	token int
}

type Option func(*Session)

// WithPath sets the gdb executable, which defaults to "gdb" on PATH.
func WithPath(path string) Option {
	return func(s *Session) { s.path = path }
}

// WithArgs appends extra arguments to the gdb command line.
func WithArgs(args ...string) Option {
	return func(s *Session) { s.args = append(s.args, args...) }
}

// WithTarget sets the executable to debug.
func WithTarget(prog string) Option {
	return func(s *Session) { s.target = prog }
}

// WithCore loads a core dump alongside the target executable.
func WithCore(core string) Option {
	return func(s *Session) { s.core = core }
}

// WithPID attaches to a running process instead of launching one.
func WithPID(pid int) Option {
	return func(s *Session) { s.pid = pid }
}

// New spawns gdb in MI mode and reads it to its first prompt.
func New(opts ...Option) (*Session, error) {
	s := &Session{path: "gdb"}
	for _, opt := range opts {
		opt(s)
	}

	argv := []string{"-q", "-i", "mi"}
	argv = append(argv, s.args...)
	if s.pid > 0 {
		argv = append(argv, "-p", strconv.Itoa(s.pid))
	}
	if s.target != "" {
		argv = append(argv, s.target)
	}
	if s.core != "" {
		argv = append(argv, s.core)
	}

	cmd := exec.Command(s.path, argv...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("gdb: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("gdb: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("gdb: start %s: %w", s.path, err)
	}

	s.cmd = cmd
	s.stdin = stdin
	s.lines = bufio.NewScanner(stdout)

	// gdb greets with banner records before the first prompt.
	if err := s.drain(); err != nil {
		cmd.Process.Kill()
		cmd.Wait()
		return nil, fmt.Errorf("gdb: handshake: %w", err)
	}
	return s, nil
}

// Close exits gdb and reaps the subprocess.
func (s *Session) Close() error {
	fmt.Fprintln(s.stdin, "-gdb-exit")
	s.stdin.Close()
	return s.cmd.Wait()
}

// Execute runs a CLI command through gdb's console interpreter and returns
// the text it printed. Implements the renderer's Executor capability.
func (s *Session) Execute(command string) (string, error) {
	_, console, err := s.send(fmt.Sprintf("interpreter-exec console %q", command))
	if err != nil {
		return "", err
	}
	return console, nil
}

// Bool looks up a named gdb parameter and reports whether it is "on".
func (s *Session) Bool(name string) bool {
	value, err := s.show(name)
	return err == nil && value == "on"
}

// Int looks up a named integer gdb parameter. ok is false when the
// parameter is unset or unlimited: gdb reports an unlimited width as 0.
func (s *Session) Int(name string) (int, bool) {
	value, err := s.show(name)
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// SetWidth pins gdb's screen width parameter.
func (s *Session) SetWidth(width int) error {
	_, _, err := s.send(fmt.Sprintf("gdb-set width %d", width))
	return err
}

// Break inserts a breakpoint at a location ("main", "file.c:12", "*0x...").
func (s *Session) Break(location string) error {
	_, _, err := s.send("break-insert " + location)
	return err
}

// Run launches the target and blocks until it stops, returning the stop
// reason gdb reports ("breakpoint-hit", "signal-received", ...).
func (s *Session) Run() (string, error) {
	if _, _, err := s.send("exec-run"); err != nil {
		return "", err
	}
	return s.waitStopped()
}

// Continue resumes the target and blocks until the next stop.
func (s *Session) Continue() (string, error) {
	if _, _, err := s.send("exec-continue"); err != nil {
		return "", err
	}
	return s.waitStopped()
}

func (s *Session) show(name string) (string, error) {
	rec, _, err := s.send("gdb-show " + name)
	if err != nil {
		return "", err
	}
	tuple, err := parseResults(rec.body)
	if err != nil {
		return "", fmt.Errorf("gdb: show %s: %w", name, err)
	}
	return tuple.str("value"), nil
}

// send writes one tokenized MI command and reads records until the prompt
// that closes its response. It returns the matching result record and the
// concatenated console stream output.
func (s *Session) send(command string) (record, string, error) {
	s.token++
	token := strconv.Itoa(s.token)
	if _, err := fmt.Fprintf(s.stdin, "%s-%s\n", token, command); err != nil {
		return record{}, "", fmt.Errorf("gdb: write %q: %w", command, err)
	}

	var result record
	var console strings.Builder
	seen := false
	for s.lines.Scan() {
		rec, ok := classify(s.lines.Text())
		if !ok {
			continue
		}
		switch rec.kind {
		case recPrompt:
			if !seen {
				continue
			}
			if result.class == "error" {
				return result, console.String(), miError(result)
			}
			return result, console.String(), nil
		case recResult:
			if rec.token == token || rec.token == "" {
				result = rec
				seen = true
			}
		case recConsole:
			console.WriteString(rec.text)
		}
	}
	return record{}, "", s.readFailed()
}

// waitStopped reads records until the target reports a *stopped event.
func (s *Session) waitStopped() (string, error) {
	for s.lines.Scan() {
		rec, ok := classify(s.lines.Text())
		if !ok || rec.kind != recExecAsync || rec.class != "stopped" {
			continue
		}
		tuple, err := parseResults(rec.body)
		if err != nil {
			return "", fmt.Errorf("gdb: stopped record: %w", err)
		}
		return tuple.str("reason"), nil
	}
	return "", s.readFailed()
}

// drain discards records up to the next prompt.
func (s *Session) drain() error {
	for s.lines.Scan() {
		if rec, ok := classify(s.lines.Text()); ok && rec.kind == recPrompt {
			return nil
		}
	}
	return s.readFailed()
}

func (s *Session) readFailed() error {
	if err := s.lines.Err(); err != nil {
		return fmt.Errorf("gdb: read: %w", err)
	}
	return fmt.Errorf("gdb: unexpected end of output: %w", io.ErrUnexpectedEOF)
}

func miError(rec record) error {
	if tuple, err := parseResults(rec.body); err == nil {
		if msg := tuple.str("msg"); msg != "" {
			return fmt.Errorf("gdb: %s", msg)
		}
	}
	return fmt.Errorf("gdb: command failed: ^%s", rec.class)
}
