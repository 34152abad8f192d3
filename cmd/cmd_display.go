// cmd_display.go - Display und Output-Funktionen
// Hauptfunktionen: newTable, truncatePath, formatRGB, writeJSON
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// defaultPathWidth - Spaltenbreite fuer Pfade ohne Terminal
const defaultPathWidth = 40

// newTable - Tabelle im Stil von "ollama list"
func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

// pathWidth - Ein Drittel der Terminalbreite, sonst defaultPathWidth
func pathWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth/3 < 10 {
		return defaultPathWidth
	}
	return termWidth / 3
}

// truncatePath - Kuerzt lange Pfade von links, damit der Dateiname sichtbar bleibt
func truncatePath(path string) string {
	width := pathWidth()
	if runewidth.StringWidth(path) <= width {
		return path
	}

	runes := []rune(path)
	for i := range runes {
		if tail := string(runes[i:]); runewidth.StringWidth(tail)+3 <= width {
			return "..." + tail
		}
	}
	return runewidth.Truncate(path, width, "...")
}

// formatRGB - Formatiert ein RGB-Tripel in [0,1]
func formatRGB(rgb [3]float64) string {
	return fmt.Sprintf("%.3f %.3f %.3f", rgb[0], rgb[1], rgb[2])
}

// writeJSON - Schreibt v eingerueckt als JSON
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
