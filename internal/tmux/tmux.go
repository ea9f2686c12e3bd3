// Package tmux manages the sidebar's tmux pane: detecting the host
// environment, splitting off a pane, reusing a cached one, and tearing it
// down. All operations shell out to the tmux binary.
package tmux

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrNotInTmux is returned by pane operations invoked outside a tmux session.
var ErrNotInTmux = errors.New("not running inside tmux")

// Env summarizes the detected host environment.
type Env struct {
	InsideTmux bool
	Summary    string
}

// DetectEnv reports whether the process is running inside tmux.
func DetectEnv() Env {
	inside := os.Getenv("TMUX") != ""
	summary := "no tmux"
	if inside {
		summary = "tmux"
	}
	return Env{InsideTmux: inside, Summary: summary}
}

// Client runs tmux commands. The pane id of a spawned sidebar is cached in
// paneIDPath so later invocations reuse the pane instead of splitting again.
type Client struct {
	paneIDPath string
}

// NewClient returns a tmux client, or an error if tmux is not installed.
func NewClient(paneIDPath string) (*Client, error) {
	if _, err := exec.LookPath("tmux"); err != nil {
		return nil, errors.Wrap(err, "tmux command not found in PATH")
	}
	return &Client{paneIDPath: paneIDPath}, nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "tmux", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), errors.Wrapf(err, "tmux %s failed: %s", args[0], strings.TrimSpace(string(output)))
	}
	return string(output), nil
}

// existingPaneID returns the cached pane id if that pane still exists.
func (c *Client) existingPaneID(ctx context.Context) string {
	data, err := os.ReadFile(c.paneIDPath)
	if err != nil {
		return ""
	}
	paneID := strings.TrimSpace(string(data))
	if paneID == "" {
		return ""
	}
	if _, err := c.run(ctx, "display-message", "-p", "-t", paneID, "#{pane_id}"); err != nil {
		return ""
	}
	return paneID
}

// SpawnPane shows command in a sidebar pane, reusing the cached pane when it
// is still alive and otherwise splitting a new one (30% width, right side).
// It returns the pane id.
func (c *Client) SpawnPane(ctx context.Context, command string) (string, error) {
	if !DetectEnv().InsideTmux {
		return "", ErrNotInTmux
	}

	if paneID := c.existingPaneID(ctx); paneID != "" {
		// Interrupt whatever runs there, then start the new command.
		_, _ = c.run(ctx, "send-keys", "-t", paneID, "C-c")
		time.Sleep(150 * time.Millisecond)
		if _, err := c.run(ctx, "send-keys", "-t", paneID, command, "Enter"); err != nil {
			return "", err
		}
		return paneID, nil
	}

	out, err := c.run(ctx, "split-window", "-h", "-p", "30", "-P", "-F", "#{pane_id}", command)
	if err != nil {
		return "", err
	}
	paneID := strings.TrimSpace(out)
	if err := os.WriteFile(c.paneIDPath, []byte(paneID), 0o644); err != nil {
		return "", errors.Wrap(err, "failed to cache pane id")
	}
	return paneID, nil
}

// ClosePane kills the cached sidebar pane, if any.
func (c *Client) ClosePane(ctx context.Context) error {
	paneID := c.existingPaneID(ctx)
	if paneID == "" {
		return nil
	}
	if _, err := c.run(ctx, "kill-pane", "-t", paneID); err != nil {
		return err
	}
	_ = os.Remove(c.paneIDPath)
	return nil
}
