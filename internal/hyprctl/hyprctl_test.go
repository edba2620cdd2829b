package hyprctl_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"hyprconf/internal/hyprctl"
)

// MockRunner records the last command and returns canned output.
type MockRunner struct {
	output string
	err    error
	args   []string
}

func (m *MockRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	m.args = append([]string{name}, arg...)
	return []byte(m.output), m.err
}

func TestOptionName(t *testing.T) {
	tests := []struct {
		path, key, want string
	}{
		{"general", "gaps_in", "general:gaps_in"},
		{"decoration.blur", "size", "decoration:blur:size"},
		{"general", "col.active_border", "general:col.active_border"},
		{"", "source", "source"},
	}
	for _, tt := range tests {
		if got := hyprctl.OptionName(tt.path, tt.key); got != tt.want {
			t.Errorf("OptionName(%q, %q) = %q, want %q", tt.path, tt.key, got, tt.want)
		}
	}
}

func TestReload(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		err     error
		wantErr error
		fails   bool
	}{
		{name: "ok", output: "ok\n"},
		{name: "unexpected output", output: "config error", fails: true},
		{name: "not running", output: "HYPRLAND_INSTANCE_SIGNATURE not set! (is hyprland running?)", err: errors.New("exit status 1"), wantErr: hyprctl.ErrNoInstance, fails: true},
		{name: "exec failure", err: errors.New("executable file not found"), fails: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &MockRunner{output: tt.output, err: tt.err}
			err := hyprctl.New(runner).Reload(context.Background())
			if (err != nil) != tt.fails {
				t.Fatalf("Reload error = %v, want failure %v", err, tt.fails)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Reload error = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(runner.args, []string{"hyprctl", "reload"}) {
				t.Errorf("ran %v", runner.args)
			}
		})
	}
}

func TestKeyword(t *testing.T) {
	runner := &MockRunner{output: "ok"}
	if err := hyprctl.New(runner).Keyword(context.Background(), "decoration:blur:size", "5"); err != nil {
		t.Fatalf("Keyword failed: %v", err)
	}
	want := []string{"hyprctl", "keyword", "decoration:blur:size", "5"}
	if !reflect.DeepEqual(runner.args, want) {
		t.Errorf("ran %v, want %v", runner.args, want)
	}
}

func TestGetOption(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		set    bool
	}{
		{"int", `{"option": "general:gaps_in", "int": 5, "set": true}`, "5", true},
		{"float", `{"option": "decoration:active_opacity", "float": 0.950000, "set": false}`, "0.95", false},
		{"string", `{"option": "general:layout", "str": "dwindle", "set": true}`, "dwindle", true},
		{"custom", `{"option": "general:col.active_border", "custom": "ee33ccff ee00ff99 45deg ", "set": true}`, "ee33ccff ee00ff99 45deg", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &MockRunner{output: tt.output}
			v, err := hyprctl.New(runner).GetOption(context.Background(), "x")
			if err != nil {
				t.Fatalf("GetOption failed: %v", err)
			}
			if v.String() != tt.want || v.Set != tt.set {
				t.Errorf("got %q set=%v, want %q set=%v", v.String(), v.Set, tt.want, tt.set)
			}
		})
	}

	runner := &MockRunner{output: "no such option"}
	if _, err := hyprctl.New(runner).GetOption(context.Background(), "bogus"); err == nil {
		t.Error("expected error for non-JSON output")
	}
}
