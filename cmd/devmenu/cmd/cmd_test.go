package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/devmenu/cmd/devmenu/internal/config"
	"github.com/go-drift/devmenu/pkg/dock"
	"github.com/go-drift/devmenu/pkg/errors"
	"github.com/go-drift/devmenu/pkg/rendering"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devmenu.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Version(t *testing.T) {
	out := captureStdout(t)
	if err := run([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("output = %q", out.String())
	}
}

func TestRun_Help(t *testing.T) {
	out := captureStdout(t)
	if err := run(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"resolve", "simulate", "render"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help is missing %q", name)
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	captureStdout(t)
	if err := run([]string{"explode"}); err == nil {
		t.Error("expected error")
	}
}

func TestRun_LogFlags(t *testing.T) {
	prev := errors.DefaultHandler
	t.Cleanup(func() { errors.SetHandler(prev) })
	path := writeConfig(t, "")
	captureStdout(t)

	if err := run([]string{"--verbose", "--log=widgets.,config.", "resolve", "10", "300", "--config", path}); err != nil {
		t.Fatal(err)
	}
	h, ok := errors.DefaultHandler.(*errors.LogHandler)
	if !ok {
		t.Fatalf("handler = %T, want *errors.LogHandler", errors.DefaultHandler)
	}
	if !h.Verbose || len(h.Ops) != 2 || h.Ops[0] != "widgets." || h.Ops[1] != "config." {
		t.Errorf("handler = %+v", h)
	}
}

func TestResolveCommand(t *testing.T) {
	path := writeConfig(t, "version: v1\n")
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"10", "300"}, "docked-left   at (0, 300) size 20x80"},
		{[]string{"200", "400"}, "free          at (200, 400) size 60x40"},
		{[]string{"-100", "2000"}, "docked-left   at (0, 720) size 20x80"},
	}
	for _, tt := range tests {
		out := captureStdout(t)
		args := append([]string{"resolve"}, tt.args...)
		args = append(args, "--config", path)
		if err := run(args); err != nil {
			t.Fatalf("run(%v): %v", args, err)
		}
		if got := strings.TrimSpace(out.String()); got != tt.want {
			t.Errorf("run(%v) = %q, want %q", args, got, tt.want)
		}
	}
}

func TestResolveCommand_BadArgs(t *testing.T) {
	path := writeConfig(t, "")
	for _, args := range [][]string{
		{"resolve", "10", "--config", path},
		{"resolve", "ten", "20", "--config", path},
		{"resolve", "10", "20", "--config"},
		{"resolve", "10", "20", "--bogus", "1", "--config", path},
	} {
		captureStdout(t)
		if err := run(args); err == nil {
			t.Errorf("run(%v) should fail", args)
		}
	}
}

func TestSimulate_Script(t *testing.T) {
	path := writeConfig(t, `
initial: {x: 200, y: 300}
script:
  - tap: {x: 230, y: 320}
  - drag: {from: {x: 230, y: 320}, to: {x: 40, y: 320}}
  - toggle: true
  - tap: {x: 10, y: 340}
  - wait_ms: 50
`)
	res, err := config.Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	var lines []string
	sim, err := simulate(res, func(l string) { lines = append(lines, l) })
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if sim.Activations != 1 {
		t.Errorf("Activations = %d, want 1 (the tap while hidden is ignored)", sim.Activations)
	}
	if sim.State.Dock != dock.DockedLeft {
		t.Errorf("Dock = %v, want docked-left", sim.State.Dock)
	}
	if sim.State.Position != (rendering.Offset{X: 0, Y: 300}) {
		t.Errorf("Position = %v", sim.State.Position)
	}
	if sim.Final.Visible {
		t.Error("control should be hidden after toggle")
	}
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "mount:") {
		t.Errorf("lines = %q", lines)
	}
}

func TestSimulateCommand_DefaultScript(t *testing.T) {
	path := writeConfig(t, "")
	out := captureStdout(t)
	if err := run([]string{"simulate", "--config", path}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "-> activated") {
		t.Errorf("default script should tap the control:\n%s", got)
	}
	if !strings.Contains(got, "docked-left") {
		t.Errorf("default script should dock left:\n%s", got)
	}
}

func TestSimulateCommand_InvalidControl(t *testing.T) {
	path := writeConfig(t, "free: {width: 900, height: 40}\n")
	captureStdout(t)
	err := run([]string{"simulate", "--config", path})
	if err == nil || !strings.Contains(err.Error(), "FreeSize") {
		t.Errorf("err = %v, want FreeSize validation error", err)
	}
}

func TestRenderCommand(t *testing.T) {
	path := writeConfig(t, `
script:
  - drag: {from: {x: 200, y: 400}, to: {x: 390, y: 400}}
`)
	dest := filepath.Join(t.TempDir(), "out.png")
	out := captureStdout(t)
	if err := run([]string{"render", "--config", path, "-o", dest}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("png not written: %v", err)
	}
	if !strings.Contains(out.String(), "docked-right") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRenderCommand_PipeAndScale(t *testing.T) {
	path := writeConfig(t, "")
	out := captureStdout(t)
	if err := run([]string{"render", "--config", path, "-o", "-", "--scale", "0.5"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("stdout is not a PNG: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 400 {
		t.Errorf("size = %dx%d, want 200x400", cfg.Width, cfg.Height)
	}
}

func TestRenderCommand_BadScale(t *testing.T) {
	path := writeConfig(t, "")
	captureStdout(t)
	if err := run([]string{"render", "--config", path, "--scale", "0"}); err == nil {
		t.Error("expected error for zero scale")
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	out := captureStdout(t)

	if err := run([]string{"init", "--toml"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), config.TOMLFileName) {
		t.Errorf("output = %q", out.String())
	}
	if err := run([]string{"init", "--toml"}); err == nil {
		t.Error("second init should refuse to overwrite")
	}

	// The generated file is picked up without --config.
	out.Reset()
	if err := run([]string{"resolve", "10", "300"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "docked-left") {
		t.Errorf("resolve output = %q", out.String())
	}
}
