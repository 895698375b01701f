package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/cryptwalk/cryptwalk/internal/types"
)

type PrintOptions struct {
	NoColor        bool
	Duration       time.Duration
	FilesProcessed int
	DryRun         bool
}

var (
	encryptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	decryptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// StdoutIsTerminal reports whether stdout is a terminal; color output
// defaults off when it is not (pipes, CI logs).
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func renderLabel(l types.Label, noColor bool) string {
	if noColor {
		return string(l)
	}
	switch l {
	case types.LabelEncrypted:
		return encryptedStyle.Render(string(l))
	case types.LabelDecrypted:
		return decryptedStyle.Render(string(l))
	}
	return string(l)
}

func sortResults(files []types.FileResult) {
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
}

// PrintText writes one plain columnar line per file plus a summary
// footer, the format scripts are expected to parse.
func PrintText(w io.Writer, files []types.FileResult, opts PrintOptions) {
	sortResults(files)
	maxLabel := len(types.LabelDecrypted)
	for _, f := range files {
		status := renderLabel(f.Label, opts.NoColor)
		if f.Err != "" {
			status = "error"
			if !opts.NoColor {
				status = errorStyle.Render(status)
			}
		}
		fmt.Fprintf(w, "%-*s %s\n", maxLabel, status, f.Path)
		if f.Err != "" {
			fmt.Fprintf(w, "  %s\n", f.Err)
		}
	}
	printFooter(w, files, opts)
}

// PrintTable writes a bordered table of results plus the summary footer.
func PrintTable(w io.Writer, files []types.FileResult, opts PrintOptions) {
	sortResults(files)
	table := tablewriter.NewTable(w)
	table.Header("File", "Label", "Size", "Ratio", "Digest")
	for _, f := range files {
		label := renderLabel(f.Label, opts.NoColor)
		digest := f.DigestAfter
		if f.Err != "" {
			label = "error: " + f.Err
			digest = ""
		}
		_ = table.Append([]string{
			f.Path,
			label,
			fmt.Sprintf("%d", f.Size),
			fmt.Sprintf("%.2f", f.PrintableRatio),
			digest,
		})
	}
	_ = table.Render()
	printFooter(w, files, opts)
}

func printFooter(w io.Writer, files []types.FileResult, opts PrintOptions) {
	enc, dec, failed := 0, 0, 0
	for _, f := range files {
		switch {
		case f.Err != "":
			failed++
		case f.Label == types.LabelEncrypted:
			enc++
		default:
			dec++
		}
	}
	fmt.Fprintln(w)
	verb := "processed"
	if opts.DryRun {
		verb = "selected (dry run)"
	}
	fmt.Fprintf(w, "%d files %s in %s: %d encrypted, %d decrypted", opts.FilesProcessed, verb, opts.Duration.Round(time.Millisecond), enc, dec)
	if failed > 0 {
		fmt.Fprintf(w, ", %d failed", failed)
	}
	fmt.Fprintln(w)
}
