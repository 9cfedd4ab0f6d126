package training

import (
	"fmt"
	"time"
)

const (
	BlockHeader     = "=== NUEVO CONOCIMIENTO"
	BlockFooter     = "=== FIN NUEVO CONOCIMIENTO ==="
	NoSource        = "sin fuente"
	TimestampLayout = "2006-01-02 15:04:05 UTC"
)

// FormatBlock renders one appended unit:
//
//	\n\n=== NUEVO CONOCIMIENTO (<source> - <timestamp>) ===\n<content>\n=== FIN NUEVO CONOCIMIENTO ===\n
//
// The leading blank line keeps blocks apart when the previous context lacks a trailing newline.
func FormatBlock(source, content string, at time.Time) string {
	if source == "" {
		source = NoSource
	}
	return fmt.Sprintf("\n\n%s (%s - %s) ===\n%s\n%s\n",
		BlockHeader, source, at.UTC().Format(TimestampLayout), content, BlockFooter)
}
