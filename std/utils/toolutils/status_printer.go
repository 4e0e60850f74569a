package toolutils

import (
	"fmt"
	"io"
	"strings"
)

// StatusPrinter writes aligned key=value lines.
type StatusPrinter struct {
	File    io.Writer
	Padding int
}

// Print writes one line, left-padding key to Padding columns.
func (s StatusPrinter) Print(key string, value any) {
	pad := max(s.Padding-len(key), 0)
	fmt.Fprintf(s.File, "%s%s=%v\n", strings.Repeat(" ", pad), key, value)
}
