package harness

import (
	"bytes"
	"net/http"
	"os/exec"
	"testing"
	"time"
)

// ServerProcess is a focusboss server running in the background
type ServerProcess struct {
	Addr   string
	cmd    *exec.Cmd
	stderr bytes.Buffer
}

// StartServer runs `focusboss serve` on a free port and waits until /health answers.
// The process is interrupted when the test completes.
func StartServer(tb testing.TB, env *TestEnvironment) *ServerProcess {
	tb.Helper()

	s := &ServerProcess{Addr: FreeAddr(tb)}
	s.cmd = exec.Command(binaryPath, "serve", "--listen", s.Addr)
	s.cmd.Env = env.Environ()
	s.cmd.Stderr = &s.stderr

	if err := s.cmd.Start(); err != nil {
		tb.Fatalf("Failed to start server: %v", err)
	}
	tb.Cleanup(s.stop)

	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get("http://" + s.Addr + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return s
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	tb.Fatalf("Server did not become healthy on %s.\nStderr: %s", s.Addr, s.stderr.String())
	return nil
}

func (s *ServerProcess) stop() {
	if s.cmd.Process == nil {
		return
	}
	_ = s.cmd.Process.Signal(interruptSignal)

	done := make(chan struct{})
	go func() {
		_ = s.cmd.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		_ = s.cmd.Process.Kill()
		<-done
	}
}
