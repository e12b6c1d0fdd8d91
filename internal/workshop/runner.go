package workshop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Invocation describes one run of the external tool.
type Invocation struct {
	Path   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// StreamFunc, when set, receives stdout line by line instead of Stdout.
	StreamFunc func(line string)
}

const waitDelay = 5 * time.Second

type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// ExecRunner runs invocations as child processes. The child is killed
// when ctx is cancelled.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Stdin = inv.Stdin
	cmd.Stderr = inv.Stderr
	// Grandchildren may hold pipes open after steamcmd itself exits.
	cmd.WaitDelay = waitDelay
	if inv.StreamFunc == nil {
		cmd.Stdout = inv.Stdout
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s failed: %w", inv.Path, err)
		}
		return nil
	}

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	done := make(chan struct{})
	go func() {
		defer close(done)
		processStream(pr, inv.StreamFunc)
	}()
	err := cmd.Run()
	pw.Close()
	<-done
	if err != nil {
		log.Debug().Str("op", "workshop/run").Err(err).Msgf("%s exited with error", inv.Path)
		return fmt.Errorf("%s failed: %w", inv.Path, err)
	}
	return nil
}

func processStream(reader io.Reader, streamFunc func(string)) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && streamFunc != nil {
			streamFunc(line)
		}
	}
	io.Copy(io.Discard, reader)
}
