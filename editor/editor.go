// Package editor starts VS Code against an ssh remote.
package editor

import (
	"fmt"
	"os/exec"

	"github.com/charmbracelet/log"
)

const remotePrefix = "ssh-remote+"

// DefaultPath returns where VS Code is usually installed on goos.
func DefaultPath(goos string) string {
	if goos == "windows" {
		return `C:\Program Files\Microsoft VS Code\Code.exe`
	}

	return "/usr/local/bin/code"
}

type Editor struct {
	// Path is the editor executable, already resolved for the platform.
	Path string
}

func New(path string) *Editor {
	return &Editor{Path: path}
}

// Args is the full argument vector, executable included, used to open alias.
func (e *Editor) Args(alias string) []string {
	return []string{e.Path, "--new-window", "--remote", remotePrefix + alias}
}

// Launch starts the editor and returns without waiting for it to exit.
func (e *Editor) Launch(alias string) error {
	args := e.Args(alias)

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start editor %s: %w", e.Path, err)
	}

	log.Debug("editor started", "pid", cmd.Process.Pid, "args", args)

	// the editor outlives us, nothing will ever Wait on it
	if err := cmd.Process.Release(); err != nil {
		log.Debug("could not release editor process", "err", err)
	}

	return nil
}
