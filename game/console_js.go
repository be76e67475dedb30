//go:build js

package game

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
)

// ConsoleWriter forwards log lines to the browser console. Lines carrying an
// error level go to console.error, warnings to console.warn.
type ConsoleWriter struct{}

// Write implements io.Writer.
func (ConsoleWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	method := "log"
	switch {
	case strings.Contains(line, `"level":"error"`), strings.Contains(line, `"level":"fatal"`):
		method = "error"
	case strings.Contains(line, `"level":"warn"`):
		method = "warn"
	}
	js.Global.Get("console").Call(method, line)
	return len(p), nil
}
