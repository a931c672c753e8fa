// Package config loads the optional colorvis.hcl settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorvis/internal/color"
	"github.com/zclconf/go-cty/cty"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "colorvis.hcl"

// Verbosity bounds as understood by commonlog: -4 logs nothing, 2 logs
// debug messages.
const (
	MinVerbosity = -4
	MaxVerbosity = 2
)

// Config holds the resolved settings.
type Config struct {
	Initial   color.Color
	Verbosity int
	LogFile   string
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Initial:   color.Color{R: 0x33, G: 0x66, B: 0x99},
		Verbosity: 0,
	}
}

// fileConfig mirrors the attributes of the file. Unset attributes keep
// their defaults.
type fileConfig struct {
	Initial   *string `hcl:"initial,optional"`
	Verbosity *int    `hcl:"verbosity,optional"`
	LogFile   *string `hcl:"log_file,optional"`
}

// Load reads the config file at path. A missing file is not an error and
// yields Default().
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes config source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw fileConfig
	if diags := gohcl.DecodeBody(file.Body, EvalContext(), &raw); diags.HasErrors() {
		return Config{}, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg := Default()
	if raw.Initial != nil {
		c, err := color.ParseHex(*raw.Initial)
		if err != nil {
			return Config{}, fmt.Errorf("initial: %w", err)
		}
		cfg.Initial = c
	}
	if raw.Verbosity != nil {
		if v := *raw.Verbosity; v < MinVerbosity || v > MaxVerbosity {
			return Config{}, fmt.Errorf("verbosity: %d is outside %d..%d", v, MinVerbosity, MaxVerbosity)
		}
		cfg.Verbosity = *raw.Verbosity
	}
	if raw.LogFile != nil {
		cfg.LogFile = *raw.LogFile
	}
	return cfg, nil
}

// ParseColor evaluates one color the way the initial attribute is read:
// a "#rrggbb" literal or an expression such as hsv(210, 60, 80) or
// darken("#ffffff", 0.2).
func ParseColor(expr string) (color.Color, error) {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "#") {
		return color.ParseHex(expr)
	}

	e, diags := hclsyntax.ParseExpression([]byte(expr), "color", hcl.InitialPos)
	if diags.HasErrors() {
		return color.Color{}, fmt.Errorf("parsing color: %s", diags.Error())
	}
	val, diags := e.Value(EvalContext())
	if diags.HasErrors() {
		return color.Color{}, fmt.Errorf("evaluating color: %s", diags.Error())
	}
	if val.IsNull() || !val.Type().Equals(cty.String) {
		return color.Color{}, fmt.Errorf("color %q is not a color expression", expr)
	}
	return color.ParseHex(val.AsString())
}
