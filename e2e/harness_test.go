// ABOUTME: PTY harness for e2e tests: builds the demo binary once, then
// ABOUTME: drives it through a pseudo-terminal with scripted keystrokes

package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
)

var (
	buildOnce sync.Once
	buildPath string
	buildErr  error
)

// demoBinary builds cmd/askline-demo once per test run and returns its path.
func demoBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "askline-e2e")
		if err != nil {
			buildErr = err
			return
		}
		buildPath = filepath.Join(dir, "askline-demo")
		cmd := exec.Command("go", "build", "-o", buildPath, "../cmd/askline-demo")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("build demo: %v\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatal(buildErr)
	}
	return buildPath
}

type session struct {
	cmd  *exec.Cmd
	tty  *os.File
	g    *errgroup.Group
	exit chan error

	mu  sync.Mutex
	out bytes.Buffer
}

// startDemo launches the demo binary under a PTY with the given flags.
func startDemo(t *testing.T, args ...string) *session {
	t.Helper()

	cmd := exec.Command(demoBinary(t), args...)
	tty, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("start pty: %v", err)
	}

	s := &session{cmd: cmd, tty: tty, g: &errgroup.Group{}, exit: make(chan error, 1)}
	s.g.Go(func() error {
		buf := make([]byte, 4096)
		for {
			n, err := tty.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				// The PTY read fails once the child exits.
				return nil
			}
		}
	})
	go func() { s.exit <- cmd.Wait() }()
	return s
}

func (s *session) close() {
	s.cmd.Process.Kill()
	s.tty.Close()
	s.g.Wait()
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// send writes raw bytes to the demo's stdin.
func (s *session) send(t *testing.T, text string) {
	t.Helper()
	if _, err := s.tty.WriteString(text); err != nil {
		t.Fatalf("send %q: %v", text, err)
	}
}

func (s *session) sendEnter(t *testing.T)  { s.send(t, "\r") }
func (s *session) sendEscape(t *testing.T) { s.send(t, "\x1b") }

func (s *session) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	s.send(t, string([]byte{c & 0x1f}))
}

func (s *session) sendDown(t *testing.T) { s.send(t, "\x1b[B") }

// expectStringTimeout waits until the accumulated output contains want.
func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in output:\n%s", want, s.output())
}

// waitExit waits for the demo process to exit, reporting its exit code.
func (s *session) waitExit(t *testing.T, timeout time.Duration) int {
	t.Helper()
	select {
	case err := <-s.exit:
		if err == nil {
			return 0
		}
		if ee, ok := err.(*exec.ExitError); ok {
			return ee.ExitCode()
		}
		t.Fatalf("wait: %v", err)
		return -1
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for exit; output:\n%s", s.output())
		return -1
	}
}
