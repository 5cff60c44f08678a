// Package terminal provides the console surface: a fixed prompt, line-based
// input, and a cosmetic screen clear that is a no-op for pipes and
// redirected output.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ansiClear wipes the screen and homes the cursor.
const ansiClear = "\x1b[2J\x1b[H"

// Prompt writes the fixed prompt text without a trailing newline.
func Prompt(w io.Writer, text string) {
	fmt.Fprint(w, text)
}

// ReadLine reads one line from r and strips the trailing line terminator
// ("\n" or "\r\n"). An empty line is valid input. A final line without a
// terminator is returned as-is; EOF before any byte is reported as io.EOF.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Clear wipes the terminal when w is an interactive terminal. Purely
// cosmetic; a no-op for buffers, pipes, and redirected output, so it never
// affects what a consumer of the output reads.
func Clear(w io.Writer) {
	if !IsInteractive(w) {
		return
	}
	fmt.Fprint(w, ansiClear)
}

// IsInteractive reports whether w is an interactive terminal.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
