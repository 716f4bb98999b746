package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
)

// maxCapturedOutput caps each captured stream so a chatty command cannot
// balloon the response.
const maxCapturedOutput = 64 << 10

// TerminalResult is the structured payload of execute_terminal_command.
// A non-zero exit code is an outcome, not a tool failure; the envelope
// stays successful as long as the command could be started.
type TerminalResult struct {
	Command  string `json:"command"`
	ExitCode int    `json:"exitCode"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	TimedOut bool   `json:"timedOut"`
}

func HandleExecuteTerminalCommand(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error) {
	params := TerminalCommandParams{
		Command:   args.String("command", ""),
		Cwd:       args.String("cwd", "."),
		TimeoutMs: args.Int("timeoutMs", defaultCommandTimeoutMs),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	dir, err := tc.Workspace.Resolve(params.Cwd)
	if err != nil {
		return failureResult(tc, "execute_terminal_command", params.Cwd, err), nil
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Duration(params.TimeoutMs)*time.Millisecond)
	defer cancel()

	cmd := shellCommand(runCtx, params.Command)
	cmd.Dir = dir
	stdout := &boundedBuffer{limit: maxCapturedOutput}
	stderr := &boundedBuffer{limit: maxCapturedOutput}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()
	timedOut := errors.Is(runCtx.Err(), context.DeadlineExceeded)

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(runErr, &exitErr):
			exitCode = exitErr.ExitCode()
		case timedOut:
			exitCode = -1
		default:
			tc.Logger.Error().Err(runErr).Str("command", params.Command).Msg("command could not be started")
			return protocol.ErrorResult("could not run command: %s", params.Command), nil
		}
	}

	result := TerminalResult{
		Command:  params.Command,
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		TimedOut: timedOut,
	}
	return protocol.StructuredResult(result, terminalFallback(result)), nil
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "/bin/sh", "-c", command)
}

// terminalFallback renders the result for clients that only read text
// content.
func terminalFallback(r TerminalResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "exit code %d", r.ExitCode)
	if r.TimedOut {
		b.WriteString(" (timed out)")
	}
	if r.Stdout != "" {
		b.WriteString("\nstdout:\n" + r.Stdout)
	}
	if r.Stderr != "" {
		b.WriteString("\nstderr:\n" + r.Stderr)
	}
	return b.String()
}

// boundedBuffer stores up to limit bytes and counts anything beyond, so
// writers never block and memory stays bounded.
type boundedBuffer struct {
	buf     bytes.Buffer
	limit   int
	dropped int64
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	if room := b.limit - b.buf.Len(); room > 0 {
		if len(p) <= room {
			return b.buf.Write(p)
		}
		b.buf.Write(p[:room])
		b.dropped += int64(len(p) - room)
		return len(p), nil
	}
	b.dropped += int64(len(p))
	return len(p), nil
}

func (b *boundedBuffer) String() string {
	if b.dropped > 0 {
		return fmt.Sprintf("%s\n[output truncated, %d bytes dropped]", b.buf.String(), b.dropped)
	}
	return b.buf.String()
}
