package detector

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrServiceUnavailable is returned when the MediaPipe service could not be
// started or has stopped answering. A detector that returned it will keep
// returning it; callers should treat it as fatal.
var ErrServiceUnavailable = errors.New("mediapipe service unavailable")

// service is one running mediapipe_service.py process.
//
// Protocol: after loading the model the script writes {"ready": true} (or
// {"error": "..."} if the import failed). Each request is a 4-byte
// big-endian length followed by JPEG bytes; each reply is one JSON line.
type service struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
}

// startService launches python with args and blocks until the ready line
// arrives. On any failure the process is killed and reaped.
func startService(python string, args []string) (*service, error) {
	cmd := exec.Command(python, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdin pipe: %w", ErrServiceUnavailable, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %w", ErrServiceUnavailable, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: start %s: %w", ErrServiceUnavailable, python, err)
	}

	s := &service{cmd: cmd, stdin: stdin, stdout: bufio.NewReader(stdout)}
	if err := s.awaitReady(); err != nil {
		s.kill()
		return nil, err
	}
	return s, nil
}

func (s *service) awaitReady() error {
	line, err := s.stdout.ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("%w: waiting for ready: %w", ErrServiceUnavailable, err)
	}

	var hello struct {
		Ready bool   `json:"ready"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(line, &hello); err != nil {
		return fmt.Errorf("%w: bad ready line %q: %w", ErrServiceUnavailable, bytes.TrimSpace(line), err)
	}
	if hello.Error != "" {
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, hello.Error)
	}
	if !hello.Ready {
		return fmt.Errorf("%w: service did not report ready", ErrServiceUnavailable)
	}
	return nil
}

// roundTrip sends one encoded frame and returns the reply line. Pipe errors
// mean the process is gone and are reported as ErrServiceUnavailable.
func (s *service) roundTrip(jpeg []byte) ([]byte, error) {
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(jpeg)))

	if _, err := s.stdin.Write(header[:]); err != nil {
		return nil, fmt.Errorf("%w: write frame: %w", ErrServiceUnavailable, err)
	}
	if _, err := s.stdin.Write(jpeg); err != nil {
		return nil, fmt.Errorf("%w: write frame: %w", ErrServiceUnavailable, err)
	}

	line, err := s.stdout.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("%w: read reply: %w", ErrServiceUnavailable, err)
	}
	return line, nil
}

// stop closes stdin so the script leaves its read loop, then waits for it.
func (s *service) stop() error {
	s.stdin.Close()
	return s.cmd.Wait()
}

func (s *service) kill() {
	s.stdin.Close()
	_ = s.cmd.Process.Kill()
	_ = s.cmd.Wait()
}
