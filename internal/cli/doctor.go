package cli

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/amterp/hue/internal/service"
	"github.com/amterp/ra"
	"github.com/charmbracelet/lipgloss"
)

func registerDoctor(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("doctor")
	cmd.SetDescription("Check the palette file for problems. Exit 0 if healthy, 1 if errors found.")

	ctx.DoctorFix, _ = ra.NewBool("fix").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Apply automatic fixes for issues with deterministic solutions").
		Register(cmd)

	ctx.DoctorUsed, _ = parent.RegisterCmd(cmd)
}

func runDoctor(fix bool, jsonOutput bool) {
	// Located directly: a broken file would stop NewApp before diagnosis.
	_, path, source, err := locatePaletteFile()
	if err != nil {
		Fatal(err)
	}

	doctor := service.NewDoctorService(path)
	report, err := doctor.Diagnose()
	if err != nil {
		Fatal(err)
	}
	if fix && len(report.Issues) > 0 {
		if report, err = doctor.Fix(report); err != nil {
			Fatal(err)
		}
	}

	if jsonOutput {
		if err := printJson(report); err != nil {
			Fatal(err)
		}
	} else {
		fmt.Println(LabelValue("File", RenderBold(path)+" "+RenderMuted("("+string(source)+")"), 10))
		fmt.Println(LabelValue("Palettes", fmt.Sprint(report.Palettes), 10))
		fmt.Println()
		printDoctorReport(report, fix)
	}

	if report.HasErrors() {
		os.Exit(1)
	}
}

func printDoctorReport(report *service.DiagnosticReport, didFix bool) {
	fixed := 0
	if didFix {
		fixed = report.Summary.Fixed
	}

	if len(report.Issues) == 0 {
		switch {
		case fixed > 0:
			PrintSuccess("Fixed %d issue(s); the palette file is healthy", fixed)
		default:
			PrintSuccess("No issues found")
		}
		return
	}

	// File-level issues first, then per palette in name order.
	issues := slices.Clone(report.Issues)
	slices.SortStableFunc(issues, func(a, b service.Issue) int {
		if c := cmp.Compare(a.Palette, b.Palette); c != 0 {
			return c
		}
		return cmp.Compare(severityRank(a.Severity), severityRank(b.Severity))
	})
	for _, issue := range issues {
		printIssue(issue)
	}

	fmt.Println()
	fmt.Println(summaryLine(report.Summary, fixed))

	if !didFix && slices.ContainsFunc(report.Issues, func(i service.Issue) bool { return i.Fixable }) {
		PrintInfo("Run %s to apply automatic fixes", RenderBold("hue doctor --fix"))
	}
}

func severityRank(s service.IssueSeverity) int {
	if s == service.SeverityError {
		return 0
	}
	return 1
}

func summaryLine(sum service.ReportSummary, fixed int) string {
	counts := []struct {
		n     int
		label string
		style lipgloss.Style
	}{
		{sum.Errors, "error(s)", StyleError},
		{sum.Warnings, "warning(s)", StyleWarning},
		{fixed, "fixed", StyleSuccess},
		{sum.FixFailed, "fix failed", StyleError},
	}

	var parts []string
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, c.style.Render(fmt.Sprintf("%d %s", c.n, c.label)))
		}
	}
	return "Summary: " + strings.Join(parts, ", ")
}

func printIssue(issue service.Issue) {
	style, icon := StyleWarning, IconWarning
	if issue.Severity == service.SeverityError {
		style, icon = StyleError, IconError
	}

	where := ""
	if issue.Palette != "" {
		where = " " + RenderName(issue.Palette)
		if issue.Color != "" {
			where += " " + RenderMuted(strconv.Quote(issue.Color))
		}
	}
	fmt.Printf("%s %s%s %s\n", style.Render(icon), style.Render("["+issue.Code+"]"), where, issue.Message)

	switch {
	case issue.FixError != "":
		fmt.Printf("    %s fix failed: %s\n", StyleError.Render(IconInfo), issue.FixError)
	case issue.FixAction != "" && issue.Fixable:
		fmt.Printf("    %s fix: %s\n", RenderMuted(IconInfo), issue.FixAction)
	case issue.FixAction != "":
		fmt.Printf("    %s %s\n", RenderMuted(IconInfo), issue.FixAction)
	}
}
