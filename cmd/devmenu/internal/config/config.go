package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/devmenu/pkg/animation"
	"github.com/go-drift/devmenu/pkg/dock"
	"github.com/go-drift/devmenu/pkg/rendering"
	"github.com/go-drift/devmenu/pkg/widgets"
)

// Configuration file names looked up by LoadOptional, in order.
const (
	FileName     = "devmenu.yaml"
	TOMLFileName = "devmenu.toml"
)

// SchemaVersion is the only supported major version of the file format.
const SchemaVersion = "v1"

// Config represents the optional devmenu.yaml (or devmenu.toml) file.
type Config struct {
	Version    string       `yaml:"version,omitempty" toml:"version,omitempty"`
	Screen     *SizeSpec    `yaml:"screen,omitempty" toml:"screen,omitempty"`
	Initial    *InitialSpec `yaml:"initial,omitempty" toml:"initial,omitempty"`
	Threshold  *float64     `yaml:"threshold,omitempty" toml:"threshold,omitempty"`
	Free       *SizeSpec    `yaml:"free,omitempty" toml:"free,omitempty"`
	Docked     *SizeSpec    `yaml:"docked,omitempty" toml:"docked,omitempty"`
	Edges      []string     `yaml:"edges,omitempty" toml:"edges,omitempty"`
	Insets     InsetsSpec   `yaml:"insets,omitempty" toml:"insets,omitempty"`
	Slop       float64      `yaml:"slop,omitempty" toml:"slop,omitempty"`
	SettleMS   int          `yaml:"settle_ms,omitempty" toml:"settle_ms,omitempty"`
	GrantMS    int          `yaml:"grant_ms,omitempty" toml:"grant_ms,omitempty"`
	GrantScale float64      `yaml:"grant_scale,omitempty" toml:"grant_scale,omitempty"`
	Curve      string       `yaml:"curve,omitempty" toml:"curve,omitempty"`
	Script     []Step       `yaml:"script,omitempty" toml:"script,omitempty"`
}

// SizeSpec is a width/height pair.
type SizeSpec struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PointSpec is an x/y pair.
type PointSpec struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// InitialSpec places the control at mount.
type InitialSpec struct {
	X    float64 `yaml:"x" toml:"x"`
	Y    float64 `yaml:"y" toml:"y"`
	Dock string  `yaml:"dock,omitempty" toml:"dock,omitempty"`
}

// InsetsSpec reserves space at the screen edges.
type InsetsSpec struct {
	Left   float64 `yaml:"left,omitempty" toml:"left,omitempty"`
	Top    float64 `yaml:"top,omitempty" toml:"top,omitempty"`
	Right  float64 `yaml:"right,omitempty" toml:"right,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty" toml:"bottom,omitempty"`
}

// Step is one scripted interaction. Exactly one field should be set.
type Step struct {
	Tap    *PointSpec `yaml:"tap,omitempty" toml:"tap,omitempty"`
	Drag   *DragSpec  `yaml:"drag,omitempty" toml:"drag,omitempty"`
	WaitMS int        `yaml:"wait_ms,omitempty" toml:"wait_ms,omitempty"`
	Toggle bool       `yaml:"toggle,omitempty" toml:"toggle,omitempty"`
}

// DragSpec is a drag between two points.
type DragSpec struct {
	From PointSpec `yaml:"from" toml:"from"`
	To   PointSpec `yaml:"to" toml:"to"`
}

// Resolved contains the control configuration with defaults applied.
type Resolved struct {
	// Path is the file the configuration came from, empty for defaults.
	Path    string
	Control widgets.ControlConfig
	Script  []Step
}

// Defaults used when the file leaves a value out.
var (
	DefaultScreen    = rendering.Size{Width: 400, Height: 800}
	DefaultFree      = rendering.Size{Width: 60, Height: 40}
	DefaultDocked    = rendering.Size{Width: 20, Height: 80}
	DefaultThreshold = 50.0
)

// Parse decodes a YAML configuration document. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// ParseTOML decodes a TOML configuration document. Unknown keys are
// rejected.
func ParseTOML(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown field %q", undecoded[0].String())
	}
	return &cfg, nil
}

// isTOML reports whether path names a TOML file.
func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads the configuration file at path. Files ending in .toml are
// parsed as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	parse := Parse
	if isTOML(path) {
		parse = ParseTOML
	}
	cfg, err := parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional reads devmenu.yaml, or failing that devmenu.toml, from dir.
// When neither exists it returns an empty Config and an empty path.
func LoadOptional(dir string) (*Config, string, error) {
	for _, name := range []string{FileName, TOMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		cfg, err := Load(path)
		return cfg, path, err
	}
	return &Config{}, "", nil
}

// Default returns a configuration with every value spelled out, suitable as
// a starting point for a new file.
func Default() *Config {
	threshold := DefaultThreshold
	return &Config{
		Version:   SchemaVersion,
		Screen:    &SizeSpec{Width: DefaultScreen.Width, Height: DefaultScreen.Height},
		Initial:   &InitialSpec{X: 170, Y: 380, Dock: "free"},
		Threshold: &threshold,
		Free:      &SizeSpec{Width: DefaultFree.Width, Height: DefaultFree.Height},
		Docked:    &SizeSpec{Width: DefaultDocked.Width, Height: DefaultDocked.Height},
		Edges:     []string{"left", "right", "top", "bottom"},
		Slop:      5,
		SettleMS:  300,
		GrantMS:   120,
		Curve:     "ease-out",
		Script: []Step{
			{Tap: &PointSpec{X: 200, Y: 400}},
			{Drag: &DragSpec{From: PointSpec{X: 200, Y: 400}, To: PointSpec{X: 30, Y: 400}}},
		},
	}
}

// Write encodes cfg to w as TOML when asTOML is set, YAML otherwise.
func Write(w io.Writer, cfg *Config, asTOML bool) error {
	if asTOML {
		return toml.NewEncoder(w).Encode(cfg)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// WriteFile writes cfg to path, choosing the format from its extension.
// An existing file is never overwritten.
func WriteFile(path string, cfg *Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if err := Write(f, cfg, isTOML(path)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Resolve loads the file at path, or the configuration in the working
// directory when path is empty, and applies defaults.
func Resolve(path string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		var dir string
		dir, err = os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg, path, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}
	res, err := cfg.Resolve()
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	res.Path = path
	return res, nil
}

// Resolve validates the file-level fields and converts them to a control
// configuration. OnActivate is left for the caller to set; geometry is
// validated when the control is constructed.
func (c *Config) Resolve() (*Resolved, error) {
	if err := validateVersion(c.Version); err != nil {
		return nil, err
	}

	ctl := widgets.ControlConfig{
		ScreenBounds:  sizeOr(c.Screen, DefaultScreen),
		FreeSize:      sizeOr(c.Free, DefaultFree),
		DockedSize:    sizeOr(c.Docked, DefaultDocked),
		EdgeThreshold: DefaultThreshold,
		Slop:          c.Slop,
		GrantScale:    c.GrantScale,
		Insets: rendering.EdgeInsets{
			Left:   c.Insets.Left,
			Top:    c.Insets.Top,
			Right:  c.Insets.Right,
			Bottom: c.Insets.Bottom,
		},
		SettleDuration: millis(c.SettleMS),
		GrantDuration:  millis(c.GrantMS),
	}
	if c.Threshold != nil {
		ctl.EdgeThreshold = *c.Threshold
	}

	if c.Initial != nil {
		ctl.InitialPosition = rendering.Offset{X: c.Initial.X, Y: c.Initial.Y}
		state, err := parseDock(c.Initial.Dock)
		if err != nil {
			return nil, err
		}
		ctl.InitialDock = state
	} else {
		ctl.InitialPosition = rendering.Offset{
			X: (ctl.ScreenBounds.Width - ctl.FreeSize.Width) / 2,
			Y: (ctl.ScreenBounds.Height - ctl.FreeSize.Height) / 2,
		}
	}

	for _, name := range c.Edges {
		edge, err := dock.ParseEdge(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return nil, err
		}
		ctl.Edges |= dock.EdgesOf(edge)
	}

	curve, ok := animation.CurveByName(c.Curve)
	if !ok {
		return nil, fmt.Errorf("unknown curve %q (use linear, ease-out, ease-in-out or spring)", c.Curve)
	}
	ctl.Curve = curve

	for i, step := range c.Script {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("script step %d: %w", i+1, err)
		}
	}

	return &Resolved{Control: ctl, Script: c.Script}, nil
}

func validateVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid version %q: must look like %s", v, SchemaVersion)
	}
	if major := semver.Major(v); major != SchemaVersion {
		return fmt.Errorf("unsupported version %s: only %s is supported", v, SchemaVersion)
	}
	return nil
}

func parseDock(name string) (dock.State, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "free" {
		return dock.Free, nil
	}
	edge, err := dock.ParseEdge(name)
	if err != nil {
		return dock.Free, fmt.Errorf("initial dock: %w", err)
	}
	return edge.State(), nil
}

func (s Step) validate() error {
	set := 0
	if s.Tap != nil {
		set++
	}
	if s.Drag != nil {
		set++
	}
	if s.WaitMS != 0 {
		set++
	}
	if s.Toggle {
		set++
	}
	if set != 1 {
		return fmt.Errorf("exactly one of tap, drag, wait_ms or toggle must be set")
	}
	if s.WaitMS < 0 {
		return fmt.Errorf("wait_ms must not be negative")
	}
	return nil
}

func sizeOr(s *SizeSpec, def rendering.Size) rendering.Size {
	if s == nil {
		return def
	}
	return rendering.Size{Width: s.Width, Height: s.Height}
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Offset converts the point to screen coordinates.
func (p PointSpec) Offset() rendering.Offset {
	return rendering.Offset{X: p.X, Y: p.Y}
}
