package service

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/amterp/hue/internal/model"
	"github.com/amterp/hue/internal/plotstate"
	"github.com/amterp/hue/internal/store"
	"github.com/amterp/hue/internal/version"
)

// IssueSeverity indicates how critical an issue is.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue codes for diagnostic results.
const (
	// File-level problems (errors)
	CodeMalformedPaletteFile = "MALFORMED_PALETTE_FILE"
	CodeSchemaMissing        = "SCHEMA_MISSING"
	CodeSchemaUnsupported    = "SCHEMA_UNSUPPORTED"

	// Palette problems (errors)
	CodeEmptyPalette  = "EMPTY_PALETTE"
	CodeInvalidColor  = "INVALID_COLOR"
	CodeNameCollision = "NAME_COLLISION"

	// Settings that point nowhere (warnings)
	CodeUnknownDefaultPalette = "UNKNOWN_DEFAULT_PALETTE"
	CodeUnknownCodePalette    = "UNKNOWN_CODE_PALETTE"
)

// Issue represents a single diagnostic finding.
type Issue struct {
	Severity  IssueSeverity `json:"severity"`
	Code      string        `json:"code"`
	Palette   string        `json:"palette,omitempty"`
	Color     string        `json:"color,omitempty"`
	Message   string        `json:"message"`
	Fixable   bool          `json:"fixable"`
	FixAction string        `json:"fix_action,omitempty"`
	FixError  string        `json:"fix_error,omitempty"` // Populated if fix was attempted but failed
}

// ReportSummary summarizes the diagnostic results.
type ReportSummary struct {
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
	Fixed     int `json:"fixed"`
	FixFailed int `json:"fix_failed,omitempty"`
}

// DiagnosticReport contains all diagnostic results.
type DiagnosticReport struct {
	PaletteFile string        `json:"palette_file"`
	Palettes    int           `json:"palettes"`
	Issues      []Issue       `json:"issues"`
	Summary     ReportSummary `json:"summary"`
}

// HasErrors returns true if there are any error-level issues.
func (r *DiagnosticReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

func (r *DiagnosticReport) summarize() {
	r.Summary.Errors, r.Summary.Warnings = 0, 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			r.Summary.Errors++
		} else {
			r.Summary.Warnings++
		}
	}
}

// DoctorService checks a palette file without the strictness of
// store.FileStore, so every problem is reported instead of the first.
type DoctorService struct {
	path     string
	builtins *store.BuiltinStore
}

// NewDoctorService creates a diagnostic service for the palette file at path.
func NewDoctorService(path string) *DoctorService {
	return &DoctorService{
		path:     path,
		builtins: store.NewBuiltinStore(),
	}
}

// Diagnose analyzes the palette file. A missing file is healthy.
func (s *DoctorService) Diagnose() (*DiagnosticReport, error) {
	report := &DiagnosticReport{
		PaletteFile: s.path,
		Issues:      []Issue{},
	}

	f, ok := s.readFile(report)
	if ok {
		report.Palettes = len(f.Palettes)
		s.checkSchema(report, f)
		s.checkPalettes(report, f)
		s.checkSettings(report, f)
	}

	report.summarize()
	return report, nil
}

// Fix applies the fixes that have a deterministic outcome and returns a
// report of what remains. Nothing is written if the schema is unsupported.
func (s *DoctorService) Fix(report *DiagnosticReport) (*DiagnosticReport, error) {
	for _, issue := range report.Issues {
		if issue.Code == CodeSchemaUnsupported || issue.Code == CodeMalformedPaletteFile {
			return report, nil
		}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var f model.PaletteFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	fixed := 0
	remaining := []Issue{}
	for _, issue := range report.Issues {
		if !issue.Fixable {
			remaining = append(remaining, issue)
			continue
		}

		switch issue.Code {
		case CodeSchemaMissing:
			// FileStore.Save stamps the current schema.
		case CodeEmptyPalette:
			f.RemovePalette(issue.Palette)
		case CodeInvalidColor:
			dropColor(&f, issue.Palette, issue.Color)
		case CodeUnknownDefaultPalette:
			f.DefaultPalette = ""
		case CodeUnknownCodePalette:
			f.CodePalette = ""
		default:
			remaining = append(remaining, issue)
			continue
		}
		fixed++
	}

	newReport := &DiagnosticReport{
		PaletteFile: report.PaletteFile,
		Palettes:    len(f.Palettes),
		Issues:      remaining,
	}

	if fixed > 0 {
		if err := store.NewFileStore(s.path).Save(&f); err != nil {
			for i := range newReport.Issues {
				newReport.Issues[i].FixError = err.Error()
			}
			newReport.Summary.FixFailed = fixed
			newReport.summarize()
			return newReport, nil
		}
	}

	newReport.Summary.Fixed = fixed
	newReport.summarize()
	return newReport, nil
}

// dropColor removes every occurrence of color from a palette, and the
// palette itself if nothing is left.
func dropColor(f *model.PaletteFile, name, color string) {
	var kept []string
	for _, c := range f.Palettes[name] {
		if c != color {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		f.RemovePalette(name)
		return
	}
	f.Palettes[name] = kept
}

func (s *DoctorService) readFile(report *DiagnosticReport) (*model.PaletteFile, bool) {
	if s.path == "" {
		return nil, false
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false // No palette file is fine
		}
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityError,
			Code:     CodeMalformedPaletteFile,
			Message:  fmt.Sprintf("Cannot read palette file: %v", err),
		})
		return nil, false
	}

	var f model.PaletteFile
	if err := toml.Unmarshal(data, &f); err != nil {
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityError,
			Code:     CodeMalformedPaletteFile,
			Message:  fmt.Sprintf("Invalid TOML in palette file: %v", err),
		})
		return nil, false
	}
	return &f, true
}

func (s *DoctorService) checkSchema(report *DiagnosticReport, f *model.PaletteFile) {
	current := version.CurrentPaletteFileSchema()
	switch {
	case f.HueSchema == "":
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityError,
			Code:      CodeSchemaMissing,
			Message:   fmt.Sprintf("Palette file has no hue_schema, current is %s", current),
			Fixable:   true,
			FixAction: fmt.Sprintf("Set hue_schema = %q", current),
		})
	case f.HueSchema != current:
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityError,
			Code:     CodeSchemaUnsupported,
			Message:  version.InvalidPaletteFileSchema(s.path, f.HueSchema).Error(),
		})
	}
}

func (s *DoctorService) checkPalettes(report *DiagnosticReport, f *model.PaletteFile) {
	seen := make(map[string]string) // folded name -> first name
	for _, name := range f.PaletteNames() {
		if builtin, ok := s.builtins.Collides(name); ok {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityError,
				Code:      CodeNameCollision,
				Palette:   name,
				Message:   fmt.Sprintf("Palette %q shadows built-in %q", name, builtin),
				FixAction: "Rename the palette",
			})
		} else if other, ok := seen[store.FoldName(name)]; ok {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityError,
				Code:      CodeNameCollision,
				Palette:   name,
				Message:   fmt.Sprintf("Palette %q differs from %q only by case", name, other),
				FixAction: "Rename or merge the palettes",
			})
		} else {
			seen[store.FoldName(name)] = name
		}

		colors := f.Palettes[name]
		if len(colors) == 0 {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityError,
				Code:      CodeEmptyPalette,
				Palette:   name,
				Message:   fmt.Sprintf("Palette %q has no colors", name),
				Fixable:   true,
				FixAction: "Remove the palette",
			})
			continue
		}

		for _, c := range colors {
			if plotstate.ValidSpec(c) {
				continue
			}
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityError,
				Code:      CodeInvalidColor,
				Palette:   name,
				Color:     c,
				Message:   fmt.Sprintf("Palette %q has invalid color %q", name, c),
				Fixable:   true,
				FixAction: "Drop the color",
			})
		}
	}
}

func (s *DoctorService) checkSettings(report *DiagnosticReport, f *model.PaletteFile) {
	known := func(name string) bool {
		if s.builtins.Exists(name) {
			return true
		}
		for _, custom := range f.PaletteNames() {
			if store.FoldName(custom) == store.FoldName(name) {
				return true
			}
		}
		return false
	}

	if f.DefaultPalette != "" && !known(f.DefaultPalette) {
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityWarning,
			Code:      CodeUnknownDefaultPalette,
			Palette:   f.DefaultPalette,
			Message:   fmt.Sprintf("default_palette %q is not a known palette", f.DefaultPalette),
			Fixable:   true,
			FixAction: "Clear default_palette",
		})
	}
	if f.CodePalette != "" && !known(f.CodePalette) {
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityWarning,
			Code:      CodeUnknownCodePalette,
			Palette:   f.CodePalette,
			Message:   fmt.Sprintf("code_palette %q is not a known palette", f.CodePalette),
			Fixable:   true,
			FixAction: "Clear code_palette",
		})
	}
}
