// Package launch performs the terminal handoff from the entrypoint to the
// role's long-running command.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"siaugesmat-entrypoint/role"
)

// Replace hands the current process image over to the command. On success
// it never returns; the launched program inherits our PID and environment,
// and no parent is left behind to supervise it.
func Replace(spec role.LaunchSpec) error {
	path, err := exec.LookPath(spec.Path)
	if err != nil {
		return fmt.Errorf("launch command %q not found: %w", spec.Path, err)
	}
	if err := syscall.Exec(path, spec.Args, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec %s: %w", path, err)
	}
	return nil
}

// Supervise is the fallback for environments without exec semantics: spawn
// the command with inherited stdio, forward signals to it, and report its
// exit code. The observable contract matches Replace — the child owns the
// lifecycle, the entrypoint adds nothing after the handoff.
func Supervise(spec role.LaunchSpec) (int, error) {
	path, err := exec.LookPath(spec.Path)
	if err != nil {
		return 0, fmt.Errorf("launch command %q not found: %w", spec.Path, err)
	}

	cmd := exec.Command(path, spec.Args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", path, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				// SIGCHLD is ours; SIGURG is runtime noise.
				if sig == syscall.SIGCHLD || sig == syscall.SIGURG {
					continue
				}
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err = cmd.Wait()
	close(done)
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
				return 128 + int(ws.Signal()), nil
			}
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("waiting for %s: %w", path, err)
	}
	return 0, nil
}
