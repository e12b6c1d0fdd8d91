package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))  // dark green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // yellow
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))  // blue
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))  // cyan
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))  // purple
	streamStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // grey
)

var StyleSymbols = map[string]string{
	"pass": "✓",
	"fail": "✗",
}

var out io.Writer = os.Stdout

// SetWriter redirects every Print* helper. Passing nil restores stdout.
func SetWriter(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// Writer returns the writer the Print* helpers currently use.
func Writer() io.Writer {
	return out
}

func PrintSuccess(text string) {
	fmt.Fprintln(out, successStyle.Render(text))
}
func PrintError(text string) {
	fmt.Fprintln(out, errorStyle.Render(text))
}
func PrintWarning(text string) {
	fmt.Fprintln(out, warningStyle.Render(text))
}
func PrintPending(text string) {
	fmt.Fprintln(out, pendingStyle.Render(text))
}
func PrintInfo(text string) {
	fmt.Fprintln(out, infoStyle.Render(text))
}
func PrintDetail(text string) {
	fmt.Fprintln(out, detailStyle.Render(text))
}
func PrintStream(text string) {
	fmt.Fprintln(out, streamStyle.Render(text))
}
func PrintBlank() {
	fmt.Fprintln(out)
}
