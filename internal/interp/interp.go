// Package interp supervises a single external sclang interpreter process:
// start with a one-shot executable fallback, stop, and code dispatch over the
// process's stdin. Code is terminated with the 0x1B interpret mark sclang
// expects in "-i" mode.
package interp

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"
)

// State is the lifecycle state of the interpreter session.
type State string

const (
	StateStopped  State = "stopped"
	StateStarting State = "starting"
	StateRunning  State = "running"
)

const (
	// DefaultCommand is the executable used when none is configured.
	DefaultCommand = "sclang"

	// fallbackCommand is tried once when DefaultCommand cannot be found.
	fallbackCommand = "sclang.exe"

	// execMark tells sclang in "-i" mode to interpret the preceding text.
	execMark = "\x1b"

	// warmupDelay is how long a freshly started interpreter gets before the
	// first code send. A heuristic, not a readiness acknowledgment.
	warmupDelay = time.Second
)

// interpreterArgs is the fixed argument list sclang is launched with.
var interpreterArgs = []string{"-i", "vscode"}

// ErrNotRunning indicates a send was attempted with no live input stream.
var ErrNotRunning = errors.New("sclang interpreter is not running")

// CmdFunc is the signature for creating an *exec.Cmd. It matches exec.Command
// and is injectable for testing.
type CmdFunc func(name string, args ...string) *exec.Cmd

// Notifier surfaces blocking error messages to the user. Hosts wire it to
// their notification surface (window/showMessage, stderr).
type Notifier func(message string)

// Supervisor owns the lifecycle of one external sclang process. At most one
// live process handle exists at any time; all handle mutation is serialized
// by the internal mutex.
type Supervisor struct {
	runCmd CmdFunc
	hostOS string
	warmup time.Duration
	post   *Transcript // lifecycle and diagnostic lines
	out    *Transcript // raw interpreter output plus dispatch echoes

	mu      sync.Mutex
	command string // configured executable
	path    string // executable actually in use (fallback may override)
	state   State
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	notify  Notifier
}

// New creates a Supervisor launching the given executable. An empty command
// means DefaultCommand.
func New(command string) *Supervisor {
	return NewWithCmd(command, exec.Command)
}

// NewWithCmd creates a Supervisor with a custom command function for testing.
func NewWithCmd(command string, fn CmdFunc) *Supervisor {
	if command == "" {
		command = DefaultCommand
	}
	return &Supervisor{
		runCmd:  fn,
		hostOS:  runtime.GOOS,
		warmup:  warmupDelay,
		post:    NewTranscript(),
		out:     NewTranscript(),
		command: command,
		state:   StateStopped,
	}
}

// SetNotifier installs the user-facing error notification callback.
func (s *Supervisor) SetNotifier(fn Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// SetCommand changes the configured executable. Takes effect on the next start.
func (s *Supervisor) SetCommand(command string) {
	if command == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.command = command
}

// State returns the current lifecycle state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Path returns the executable the live (or last) session was started with.
func (s *Supervisor) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Post returns the lifecycle/diagnostic transcript.
func (s *Supervisor) Post() *Transcript {
	return s.post
}

// Output returns the raw interpreter output transcript.
func (s *Supervisor) Output() *Transcript {
	return s.out
}

// Start launches the interpreter if it is not already starting or running.
// Starting an already live session is an idempotent no-op reported as success.
// After Start returns the session is Starting, or Stopped with a surfaced
// error if the spawn failed; it is promoted to Running on first output.
func (s *Supervisor) Start() error {
	s.mu.Lock()
	command := s.command
	s.mu.Unlock()
	return s.start(command, true)
}

func (s *Supervisor) start(path string, allowFallback bool) error {
	s.mu.Lock()
	if s.state != StateStopped {
		state := s.state
		s.mu.Unlock()
		s.post.Appendf("sclang is already %s", state)
		return nil
	}
	s.state = StateStarting
	s.path = path
	s.mu.Unlock()

	s.post.Appendf("starting %s %s", path, strings.Join(interpreterArgs, " "))

	err := s.spawn(path)
	if err == nil {
		return nil
	}

	attempted := path
	if allowFallback && path == DefaultCommand && isNotFound(err) && s.fallbackHost() {
		s.post.Appendf("%s not found, retrying with %s", path, fallbackCommand)
		ferr := s.spawn(fallbackCommand)
		if ferr == nil {
			s.mu.Lock()
			s.path = fallbackCommand
			s.mu.Unlock()
			return nil
		}
		attempted = fallbackCommand
		err = ferr
	}

	s.mu.Lock()
	s.state = StateStopped
	s.cmd = nil
	s.stdin = nil
	s.mu.Unlock()

	s.notifyf("could not start %q (%v); check the sclang.command setting", attempted, err)
	return fmt.Errorf("start %s: %w", attempted, err)
}

// spawn launches one process attempt and wires its observers. On success the
// handle and stdin become the live session.
func (s *Supervisor) spawn(path string) error {
	cmd := s.runCmd(path, interpreterArgs...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	s.mu.Lock()
	s.cmd = cmd
	s.stdin = stdin
	s.mu.Unlock()

	s.observe(cmd, stdout, stderr)
	return nil
}

// observe pumps stdout/stderr into the output transcript and reconciles state
// when the process exits. The waiter only calls Wait after both pumps drain.
func (s *Supervisor) observe(cmd *exec.Cmd, stdout, stderr io.Reader) {
	var wg sync.WaitGroup
	wg.Add(2)
	go s.pump(cmd, stdout, &wg)
	go s.pump(cmd, stderr, &wg)
	go func() {
		wg.Wait()
		s.onExit(cmd, cmd.Wait())
	}()
}

func (s *Supervisor) pump(cmd *exec.Cmd, r io.Reader, wg *sync.WaitGroup) {
	defer wg.Done()
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.onOutput(cmd, string(buf[:n]))
		}
		if err != nil {
			return
		}
	}
}

// onOutput appends a chunk in arrival order and promotes Starting to Running
// on the session's first observed output.
func (s *Supervisor) onOutput(cmd *exec.Cmd, chunk string) {
	s.out.Append(chunk)

	s.mu.Lock()
	if s.cmd == cmd && s.state == StateStarting {
		s.state = StateRunning
	}
	s.mu.Unlock()
}

// onExit reconciles state after the process ends. Exits of handles already
// discarded by Stop or a fallback re-spawn are ignored so they cannot disturb
// a newer session.
func (s *Supervisor) onExit(cmd *exec.Cmd, waitErr error) {
	s.mu.Lock()
	current := s.cmd == cmd
	if current {
		s.cmd = nil
		s.stdin = nil
		s.state = StateStopped
	}
	s.mu.Unlock()

	if current {
		s.post.Appendf("sclang exited with code %d", exitCode(waitErr))
	}
}

// Stop terminates the live process, if any. It sends the kill signal and
// returns without waiting for termination; the exit observer reconciles any
// late exit event. No-op when already stopped.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	cmd := s.cmd
	s.cmd = nil
	s.stdin = nil
	s.state = StateStopped
	s.mu.Unlock()

	if cmd == nil {
		return
	}
	if cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	s.post.Appendf("sclang interpreter stopped")
}

// Execute dispatches a code fragment to the interpreter. Whitespace-only
// fragments are a silent no-op. If the interpreter is stopped it is started
// (fallback allowed) and the send is scheduled after the warm-up delay; the
// pending send is not cancelled by a Stop arriving during the delay.
func (s *Supervisor) Execute(code string) error {
	payload := strings.TrimSpace(code)
	if payload == "" {
		return nil
	}

	s.mu.Lock()
	stopped := s.state == StateStopped
	s.mu.Unlock()

	if stopped {
		if err := s.Start(); err != nil {
			return err
		}
		time.AfterFunc(s.warmup, func() {
			_ = s.send(payload)
		})
		return nil
	}
	return s.send(payload)
}

// BootServer boots the default SuperCollider audio server.
func (s *Supervisor) BootServer() error { return s.Execute("s.boot;") }

// RebootServer reboots the default audio server.
func (s *Supervisor) RebootServer() error { return s.Execute("s.reboot;") }

// KillServer quits the default audio server.
func (s *Supervisor) KillServer() error { return s.Execute("s.quit;") }

// StopAllSounds runs CmdPeriod, silencing everything.
func (s *Supervisor) StopAllSounds() error { return s.Execute("CmdPeriod.run;") }

// send writes the trimmed payload plus the interpret mark to the process
// stdin, then echoes the dispatch to the output transcript. The echo follows
// the write so a failed send leaves no record suggesting the code went out.
// The fragment is dropped, not queued, when no live input stream exists.
func (s *Supervisor) send(payload string) error {
	s.mu.Lock()
	stdin := s.stdin
	s.mu.Unlock()

	if stdin == nil {
		s.notifyf("sclang is not running; %q was not sent", firstLine(payload))
		return ErrNotRunning
	}

	if _, err := io.WriteString(stdin, payload+execMark); err != nil {
		s.notifyf("sending code to sclang failed: %v", err)
		return fmt.Errorf("send to sclang: %w", err)
	}
	s.echo(payload)
	return nil
}

// echo writes a one-line record of the dispatched code, first line only with
// a marker when the fragment spans multiple lines.
func (s *Supervisor) echo(payload string) {
	line := firstLine(payload)
	if line != payload {
		line += " ..."
	}
	s.out.Appendf("> %s", line)
}

// notifyf records an error line in the post transcript and forwards it to the
// host's notification surface when one is installed.
func (s *Supervisor) notifyf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.post.Appendf("error: %s", msg)

	s.mu.Lock()
	fn := s.notify
	s.mu.Unlock()
	if fn != nil {
		fn(msg)
	}
}

// fallbackHost reports whether the host OS is eligible for the sclang.exe
// fallback attempt.
func (s *Supervisor) fallbackHost() bool {
	return s.hostOS == "linux" || s.hostOS == "windows"
}

func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

func exitCode(waitErr error) int {
	if waitErr == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimRight(s[:i], "\r")
	}
	return s
}
