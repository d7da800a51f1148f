// Package platform wraps the process-level operations flux-mini performs
// behind an interface so the attach handoff and the jobspec builder can be
// tested without touching real process state.
package platform

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Platform provides a unified interface for platform-specific operations
type Platform interface {
	// Environment
	Environ() []string
	Getenv(key string) string
	Setenv(key, value string) error

	// Process info
	Getwd() (string, error)

	// Process replacement
	LookPath(file string) (string, error)
	Exec(argv0 string, argv []string, envv []string) error
}

// UnixPlatform is the real implementation. flux-mini is Unix-only: the run
// subcommand replaces the process image, which has no Windows equivalent.
type UnixPlatform struct{}

// NewPlatform creates the Unix platform implementation
func NewPlatform() Platform {
	return &UnixPlatform{}
}

func (p *UnixPlatform) Environ() []string {
	return os.Environ()
}

func (p *UnixPlatform) Getenv(key string) string {
	return os.Getenv(key)
}

func (p *UnixPlatform) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

func (p *UnixPlatform) Getwd() (string, error) {
	return os.Getwd()
}

func (p *UnixPlatform) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Exec replaces the current process image. On success it never returns.
func (p *UnixPlatform) Exec(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}
