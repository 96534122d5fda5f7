package cli

import (
	"errors"
	"fmt"

	"github.com/CliForge/clikit/pkg/argv"
)

// Error categories. Every error returned by this package matches one of
// them with errors.Is.
var (
	// ErrConfiguration covers invalid or duplicate registrations and flag
	// declarations. It is raised before any command runs.
	ErrConfiguration = errors.New("configuration error")
	// ErrInput covers input that names no command.
	ErrInput = errors.New("input error")
	// ErrResolution covers unknown commands without a usable fallback.
	ErrResolution = errors.New("resolution error")
	// ErrExecution covers failures of a command's phases.
	ErrExecution = errors.New("command execution error")
	// ErrVersion covers a missing application version.
	ErrVersion = errors.New("version unavailable")
)

// DuplicateCommandError is returned when a registry key is taken.
type DuplicateCommandError struct {
	Key string
}

// Error implements the error interface.
func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command '%s' is already registered", e.Key)
}

// Is matches ErrConfiguration.
func (e *DuplicateCommandError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvalidCommandError is returned for registrations that cannot produce a
// command.
type InvalidCommandError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *InvalidCommandError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid command: %s", e.Reason)
	}
	return fmt.Sprintf("invalid command '%s': %s", e.Name, e.Reason)
}

// Is matches ErrConfiguration.
func (e *InvalidCommandError) Is(target error) bool {
	return target == ErrConfiguration
}

// FlagConfigError wraps a flag declaration problem of one scope.
type FlagConfigError struct {
	Scope string
	Err   error
}

// Error implements the error interface.
func (e *FlagConfigError) Error() string {
	return fmt.Sprintf("%s flags: %v", e.Scope, e.Err)
}

// Unwrap returns the underlying declaration error.
func (e *FlagConfigError) Unwrap() error {
	return e.Err
}

// Is matches ErrConfiguration.
func (e *FlagConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// ResolutionError is returned when neither the requested nor the default
// command is registered.
type ResolutionError struct {
	Command string
	Default string
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	if e.Default == "" {
		return fmt.Sprintf("unknown command '%s' and no default command set", e.Command)
	}
	return fmt.Sprintf("unknown command '%s' and default command '%s' is not registered", e.Command, e.Default)
}

// Is matches ErrResolution.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}

// CommandExecutionError wraps an error raised by a command.
type CommandExecutionError struct {
	Command string
	Phase   string
	Cause   error
}

// Error implements the error interface.
func (e *CommandExecutionError) Error() string {
	return fmt.Sprintf("command '%s': %s failed: %v", e.Command, e.Phase, e.Cause)
}

// Unwrap returns the command's error.
func (e *CommandExecutionError) Unwrap() error {
	return e.Cause
}

// Is matches ErrExecution.
func (e *CommandExecutionError) Is(target error) bool {
	return target == ErrExecution
}

// Exit statuses returned by ExitCode.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps an error returned by Run to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, argv.ErrNoCommand), errors.Is(err, ErrInput), errors.Is(err, ErrResolution):
		return ExitUsage
	default:
		return ExitError
	}
}
