// Package input holds terminal input helpers for the CLI.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// Terminal is a terminal used for input. If `nil`, stdin is used.
var Terminal *term.Terminal

// ReadLine reads a line from the input without the trailing '\n'.
func ReadLine(w io.Writer, prompt string) (string, error) {
	if Terminal != nil {
		if _, err := Terminal.Write([]byte(prompt)); err != nil {
			return "", err
		}
		raw, err := Terminal.ReadLine()
		return strings.TrimRight(raw, "\r\n"), err
	}
	fmt.Fprint(w, prompt)
	buf := bufio.NewReader(os.Stdin)
	line, err := buf.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

// Confirm asks for an explicit yes before going on; anything but "y"/"yes"
// counts as a no.
func Confirm(w io.Writer, prompt string) (bool, error) {
	answer, err := ReadLine(w, prompt+" [y/N] ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// ReadPassword reads a password from the terminal without echoing it.
func ReadPassword(w io.Writer, prompt string) (string, error) {
	if Terminal != nil {
		return Terminal.ReadPassword(prompt)
	}
	fmt.Fprint(w, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Fprintln(w)
	return strings.TrimRight(string(raw), "\n"), nil
}
