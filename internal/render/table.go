// Package render formats a snapshot as an aligned two-column terminal table,
// optionally colorized with ANSI escape codes.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nraihan/sysstatus/internal/snapshot"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[91m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorCyan   = "\033[96m"
	colorBold   = "\033[1m"
)

// Table renders the snapshot as an "Item | Value" table. Rows whose value
// carries an inline error render red; column widths are computed on display
// width so wide runes do not break alignment.
func Table(snap snapshot.Snapshot, colored bool) string {
	if len(snap) == 0 {
		return "No system information available"
	}

	labelWidth, valueWidth := 0, 0
	for _, e := range snap {
		if w := runewidth.StringWidth(string(e.Label)); w > labelWidth {
			labelWidth = w
		}
		if w := runewidth.StringWidth(e.Value); w > valueWidth {
			valueWidth = w
		}
	}
	if w := runewidth.StringWidth("Item"); w > labelWidth {
		labelWidth = w
	}
	if w := runewidth.StringWidth("Value"); w > valueWidth {
		valueWidth = w
	}

	var lines []string

	header := pad("Item", labelWidth) + " | " + pad("Value", valueWidth)
	separator := strings.Repeat("-", labelWidth+valueWidth+3)
	if colored {
		header = colorBold + colorCyan + header + colorReset
		separator = colorBold + separator + colorReset
	}
	lines = append(lines, header, separator)

	for _, e := range snap {
		label := pad(string(e.Label), labelWidth)
		value := pad(e.Value, valueWidth)

		if colored {
			if strings.Contains(e.Value, "Error:") {
				label = colorRed + label + colorReset
				value = colorRed + value + colorReset
			} else {
				label = colorGreen + label + colorReset
				value = colorYellow + value + colorReset
			}
		}
		lines = append(lines, label+" | "+value)
	}

	return strings.Join(lines, "\n")
}

func pad(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
