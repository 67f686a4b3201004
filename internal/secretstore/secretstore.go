// =============================================================================
// Invoice CLI - Secret Store Module
// =============================================================================
//
// This module wraps the 1Password CLI ("op") for storing the configuration
// file as a Secure Note. The flow is a single shot with no retries:
//
//   1. Check whether an item with the given vault/title already exists
//      ("op item get").
//   2. Update it ("op item edit") when it does, otherwise create it
//      ("op item create").
//
// The external command invocation sits behind a small Runner interface so
// tests can fake the tool without a 1Password account.
//
// =============================================================================

package secretstore

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// toolName is the external credential-manager CLI binary.
const toolName = "op"

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrToolNotFound is returned when the op binary is not installed.
var ErrToolNotFound = errors.New(
	"1Password CLI (op) not found. Install it from https://1password.com/downloads/command-line/")

// ToolError reports a non-zero exit from the external tool, surfacing the
// tool's own error text.
type ToolError struct {
	// Args is the invoked command line (without the secret payload).
	Args []string

	// Stderr is the tool's error output, trimmed.
	Stderr string

	// Err is the underlying process error.
	Err error
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s %s failed: %s", toolName, strings.Join(e.Args, " "), e.Stderr)
	}
	return fmt.Sprintf("%s %s failed: %v", toolName, strings.Join(e.Args, " "), e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// =============================================================================
// COMMAND RUNNER
// =============================================================================

// Runner executes an external command and captures its output.
type Runner interface {
	Run(name string, args ...string) (stdout, stderr string, err error)
}

// execRunner is the real Runner backed by os/exec.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the secret store through the op CLI.
type Client struct {
	runner Runner
}

// NewClient creates a Client backed by the real op binary.
func NewClient() *Client {
	return &Client{runner: execRunner{}}
}

// NewClientWithRunner creates a Client with a custom Runner. Used by tests.
func NewClientWithRunner(r Runner) *Client {
	return &Client{runner: r}
}

// ItemExists checks whether an item with the given vault and title already
// exists. Any non-zero exit from "op item get" is treated as "does not
// exist", matching the tool's behavior for unknown items.
func (c *Client) ItemExists(vault, title, account string) (bool, error) {
	args := []string{"item", "get", title, "--vault", vault}
	args = appendAccount(args, account)

	_, _, err := c.runner.Run(toolName, args...)
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	if isNotInstalled(err) {
		return false, ErrToolNotFound
	}
	return false, fmt.Errorf("failed to run %s: %w", toolName, err)
}

// StoreConfig stores the raw configuration text in the secret store,
// updating the item when it exists and creating it otherwise.
//
// RETURNS:
//   - The secret reference, op://{vault}/{title}/config.
//   - Whether an existing item was updated (as opposed to created).
//   - An error when the tool is missing or exits non-zero.
func (c *Client) StoreConfig(content, vault, title, account string) (ref string, updated bool, err error) {
	exists, err := c.ItemExists(vault, title, account)
	if err != nil {
		return "", false, err
	}

	var args []string
	if exists {
		args = []string{"item", "edit", title, "--vault", vault}
	} else {
		args = []string{"item", "create", "--category", "Secure Note", "--vault", vault, "--title", title}
	}
	args = appendAccount(args, account)

	// The payload goes last as a field assignment. It is appended after the
	// args snapshot used in error reporting so the config text never lands
	// in an error message.
	reported := make([]string, len(args))
	copy(reported, args)
	args = append(args, fmt.Sprintf("config[text]=%s", content))

	_, stderr, err := c.runner.Run(toolName, args...)
	if err != nil {
		if isNotInstalled(err) {
			return "", false, ErrToolNotFound
		}
		return "", false, &ToolError{
			Args:   reported,
			Stderr: strings.TrimSpace(stderr),
			Err:    err,
		}
	}

	return fmt.Sprintf("op://%s/%s/config", vault, title), exists, nil
}

// appendAccount appends the optional --account flag.
func appendAccount(args []string, account string) []string {
	if account != "" {
		args = append(args, "--account", account)
	}
	return args
}

// isNotInstalled reports whether err means the op binary could not be found.
func isNotInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
