package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgYellow)
)

func title(w io.Writer, format string, args ...any) {
	titleColor.Fprintf(w, "\n"+format+"\n", args...)
}

func success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}

func info(w io.Writer, format string, args ...any) {
	infoColor.Fprintf(w, format+"\n", args...)
}

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewTable(w, tablewriter.WithHeader(header))
	for _, row := range rows {
		_ = table.Append(row)
	}
	_ = table.Render()
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
