package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amterp/hue/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// themeColor picks the i-th color (in bgrmyc order) from the seaborn deep
// palette for dark terminals and its darker variant for light ones.
func themeColor(i int) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Dark:  model.Palettes["sns_deep"][i],
		Light: model.Palettes["sns_dark"][i],
	}
}

var (
	ColorInfo    = themeColor(0) // blue
	ColorSuccess = themeColor(1) // green
	ColorError   = themeColor(2) // red
	ColorAccent  = themeColor(3) // purple for palette names
	ColorWarning = themeColor(4) // yellow
	ColorURL     = themeColor(5) // cyan
	ColorMuted   = lipgloss.AdaptiveColor{Dark: "#6b7280", Light: "#9ca3af"}
)

var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleName    = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleURL     = lipgloss.NewStyle().Foreground(ColorURL)
	StyleBold    = lipgloss.NewStyle().Bold(true)
)

// Status icons.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "→"
)

// PrintSuccess prints a success message with a green checkmark.
func PrintSuccess(format string, args ...any) {
	printStatus(os.Stdout, StyleSuccess, IconSuccess, format, args...)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	printStatus(os.Stderr, StyleError, IconError, format, args...)
}

// PrintWarning prints a warning message to stderr.
func PrintWarning(format string, args ...any) {
	printStatus(os.Stderr, StyleWarning, IconWarning, format, args...)
}

// PrintInfo prints an informational message.
func PrintInfo(format string, args ...any) {
	printStatus(os.Stdout, StyleInfo, IconInfo, format, args...)
}

func printStatus(w io.Writer, style lipgloss.Style, icon, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", style.Render(icon), fmt.Sprintf(format, args...))
}

// RenderName renders a palette name in accent color.
func RenderName(name string) string {
	return StyleName.Render(name)
}

// RenderURL renders a URL in the URL color.
func RenderURL(url string) string {
	return StyleURL.Render(url)
}

// RenderMuted renders text in muted color.
func RenderMuted(text string) string {
	return StyleMuted.Render(text)
}

// RenderBold renders text in bold.
func RenderBold(text string) string {
	return StyleBold.Render(text)
}

// ColorSwatch renders a small color swatch block in the given hex color.
func ColorSwatch(hexColor string) string {
	if hexColor == "" {
		return StyleMuted.Render("██")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render("██")
}

// SwatchRow renders one swatch per color, separated by a space.
func SwatchRow(hexColors []string) string {
	swatches := make([]string, len(hexColors))
	for i, c := range hexColors {
		swatches[i] = ColorSwatch(c)
	}
	return strings.Join(swatches, " ")
}

// TitleBox renders a title in a prominent bordered box.
func TitleBox(title string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 2).
		Bold(true)
	return style.Render(title)
}

// LabelValue formats a label-value pair with right-aligned label.
func LabelValue(label, value string, labelWidth int) string {
	labelStyle := lipgloss.NewStyle().
		Width(labelWidth).
		Align(lipgloss.Right).
		Foreground(ColorMuted)
	return fmt.Sprintf("%s %s", labelStyle.Render(label+":"), value)
}
