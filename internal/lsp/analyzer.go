package lsp

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorvis/internal/color"
	"github.com/jsvensson/colorvis/internal/config"
	"github.com/jsvensson/colorvis/internal/model"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

const diagSource = "colorvis"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

var hexPattern = regexp.MustCompile(`#[0-9A-Fa-f]{6}\b`)

// configAttributes are the attributes a colorvis.hcl file may set.
var configAttributes = []string{"initial", "verbosity", "log_file"}

// AnalysisResult holds everything produced by analyzing one document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
}

// ColorLocation records a color at a specific source range.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	// Computed is true for config expressions such as darken(...) whose
	// text is not itself a color literal.
	Computed bool
}

// Analyze finds every "#rrggbb" literal and model notation such as
// "hsv(0, 100, 100)" in content. Config files (*.hcl) are additionally
// parsed and checked the way the config loader would read them.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Diagnostics: []protocol.Diagnostic{},
		Colors:      []ColorLocation{},
	}
	li := newLineIndex(content)

	for _, loc := range hexPattern.FindAllStringIndex(content, -1) {
		c, err := color.ParseHex(content[loc[0]:loc[1]])
		if err != nil {
			continue
		}
		result.Colors = append(result.Colors, ColorLocation{Range: li.rangeOf(loc[0], loc[1]), Color: c})
	}

	for _, n := range model.FindNotations(content) {
		rgb := model.Get(n.ID).ToRGB(n.Triple)
		result.Colors = append(result.Colors, ColorLocation{Range: li.rangeOf(n.Start, n.End), Color: color.FromTriple(rgb)})
	}

	if isConfigFile(filename) {
		result.analyzeConfig(filename, content, li)
	}

	slices.SortStableFunc(result.Colors, func(a, b ColorLocation) int {
		if a.Range.Start.Line != b.Range.Start.Line {
			return int(a.Range.Start.Line) - int(b.Range.Start.Line)
		}
		return int(a.Range.Start.Character) - int(b.Range.Start.Character)
	})
	return result
}

func isConfigFile(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (r *AnalysisResult) analyzeConfig(filename, content string, li *lineIndex) {
	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.InitialPos)
	if diags.HasErrors() {
		for _, d := range diags {
			r.Diagnostics = append(r.Diagnostics, hclDiagToLSP(d, li))
		}
		// Cannot proceed with semantic analysis if syntax is broken
		return
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return
	}

	for _, block := range body.Blocks {
		r.addError(li, block.DefRange(), fmt.Sprintf("unexpected block %q", block.Type))
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	slices.SortFunc(attrs, func(a, b *hclsyntax.Attribute) int {
		return a.SrcRange.Start.Byte - b.SrcRange.Start.Byte
	})

	ctx := config.EvalContext()
	for _, attr := range attrs {
		if !slices.Contains(configAttributes, attr.Name) {
			r.addError(li, attr.NameRange, fmt.Sprintf("unknown attribute %q (valid: %s)", attr.Name, strings.Join(configAttributes, ", ")))
			continue
		}

		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			for _, d := range diags {
				r.Diagnostics = append(r.Diagnostics, hclDiagToLSP(d, li))
			}
			continue
		}
		if val.IsNull() || !val.IsKnown() {
			r.addError(li, attr.Expr.Range(), fmt.Sprintf("%s has no value", attr.Name))
			continue
		}

		switch attr.Name {
		case "initial":
			r.analyzeInitial(li, attr.Expr, val)
		case "verbosity":
			var v int
			if err := gocty.FromCtyValue(val, &v); err != nil {
				r.addError(li, attr.Expr.Range(), fmt.Sprintf("verbosity: %s", err))
			} else if v < config.MinVerbosity || v > config.MaxVerbosity {
				r.addError(li, attr.Expr.Range(), fmt.Sprintf("verbosity: %d is outside %d..%d", v, config.MinVerbosity, config.MaxVerbosity))
			}
		case "log_file":
			if val.Type() != cty.String {
				r.addError(li, attr.Expr.Range(), "log_file must be a string")
			}
		}
	}
}

func (r *AnalysisResult) analyzeInitial(li *lineIndex, expr hclsyntax.Expression, val cty.Value) {
	if val.Type() != cty.String {
		r.addError(li, expr.Range(), `initial must be a "#rrggbb" string or a color function call`)
		return
	}
	c, err := color.ParseHex(val.AsString())
	if err != nil {
		r.addError(li, expr.Range(), fmt.Sprintf("initial: %s", err))
		return
	}
	if isComputedExpr(expr) {
		rng := expr.Range()
		r.Colors = append(r.Colors, ColorLocation{
			Range:    li.rangeOf(rng.Start.Byte, rng.End.Byte),
			Color:    c,
			Computed: true,
		})
	}
}

// isComputedExpr reports whether expr yields a color that the text scan
// does not already find, such as brighten(...) or darken(...).
func isComputedExpr(expr hclsyntax.Expression) bool {
	call, ok := expr.(*hclsyntax.FunctionCallExpr)
	if !ok {
		return false
	}
	_, isModel := model.Lookup(call.Name)
	return !isModel
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic, li *lineIndex) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = li.rangeOf(d.Subject.Start.Byte, d.Subject.End.Byte)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(li *lineIndex, rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    li.rangeOf(rng.Start.Byte, rng.End.Byte),
		Severity: &DiagError,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}
