package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// terminalConfirmer asks yes/no questions on the terminal. Anything other
// than an explicit yes counts as no.
type terminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalConfirmer(in io.Reader, out io.Writer) *terminalConfirmer {
	return &terminalConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *terminalConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
