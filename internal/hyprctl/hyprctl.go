// Package hyprctl talks to a running Hyprland through the hyprctl command.
package hyprctl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"hyprconf/pkg/section"
)

// CommandRunner is an interface for running external commands.
type CommandRunner interface {
	CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error)
}

// DefaultRunner implements CommandRunner using os/exec.
type DefaultRunner struct{}

func (DefaultRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, arg...).CombinedOutput()
}

// ErrNoInstance is returned when no Hyprland instance is reachable.
var ErrNoInstance = errors.New("hyprland is not running")

// Client runs hyprctl subcommands.
type Client struct {
	runner CommandRunner
	binary string
}

// New returns a client using runner, or os/exec when runner is nil.
func New(runner CommandRunner) *Client {
	if runner == nil {
		runner = DefaultRunner{}
	}
	return &Client{runner: runner, binary: "hyprctl"}
}

// OptionName converts a section path and key to hyprctl's option notation:
// ("decoration.blur", "size") is "decoration:blur:size".
func OptionName(path, key string) string {
	if path == "" {
		return key
	}
	return strings.ReplaceAll(path, section.Separator, ":") + ":" + key
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	out, err := c.runner.CombinedOutput(ctx, c.binary, args...)
	text := strings.TrimSpace(string(out))
	if strings.Contains(strings.ToLower(text), "hyprland_instance_signature not set") ||
		strings.Contains(strings.ToLower(text), "couldn't connect") {
		return "", fmt.Errorf("%w: %s", ErrNoInstance, text)
	}
	if err != nil {
		return "", fmt.Errorf("hyprctl %s: %w, output: %s", strings.Join(args, " "), err, text)
	}
	return text, nil
}

func expectOK(cmd, out string) error {
	if out != "ok" {
		return fmt.Errorf("hyprctl %s: %s", cmd, out)
	}
	return nil
}

// Reload makes Hyprland re-read its configuration.
func (c *Client) Reload(ctx context.Context) error {
	out, err := c.run(ctx, "reload")
	if err != nil {
		return err
	}
	return expectOK("reload", out)
}

// Keyword sets an option at runtime without touching the config file.
func (c *Client) Keyword(ctx context.Context, option, value string) error {
	out, err := c.run(ctx, "keyword", option, value)
	if err != nil {
		return err
	}
	return expectOK("keyword", out)
}

// OptionValue is the runtime value of an option as reported by getoption.
type OptionValue struct {
	Option string   `json:"option"`
	Int    *int64   `json:"int,omitempty"`
	Float  *float64 `json:"float,omitempty"`
	Str    *string  `json:"str,omitempty"`
	Custom *string  `json:"custom,omitempty"`
	Set    bool     `json:"set"`
}

// String renders the value the way it would be written in the config.
func (v OptionValue) String() string {
	switch {
	case v.Int != nil:
		return strconv.FormatInt(*v.Int, 10)
	case v.Float != nil:
		return strconv.FormatFloat(*v.Float, 'f', -1, 64)
	case v.Str != nil:
		return *v.Str
	case v.Custom != nil:
		return strings.TrimSpace(*v.Custom)
	}
	return ""
}

// GetOption reads the runtime value of option.
func (c *Client) GetOption(ctx context.Context, option string) (OptionValue, error) {
	out, err := c.run(ctx, "-j", "getoption", option)
	if err != nil {
		return OptionValue{}, err
	}
	var v OptionValue
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		return OptionValue{}, fmt.Errorf("hyprctl getoption %s: %s", option, out)
	}
	return v, nil
}
