// Package clipboard provides clipboard operations via platform-specific
// commands.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/fwojciec/deflist"
)

// Compile-time interface verification.
var _ deflist.Clipboard = (*Command)(nil)

// ErrUnavailable is returned when no clipboard command can be found.
var ErrUnavailable = errors.New("clipboard: no clipboard command available")

// Command implements Clipboard by piping content to an external command.
type Command struct {
	name string
	args []string
}

// NewCommand returns a Command that pipes to the given executable.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// New picks the first available platform clipboard command: pbcopy (macOS),
// wl-copy (Wayland), or xclip (X11).
func New() (*Command, error) {
	candidates := []*Command{
		NewCommand("pbcopy"),
		NewCommand("wl-copy"),
		NewCommand("xclip", "-selection", "clipboard"),
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c.name); err == nil {
			return c, nil
		}
	}
	return nil, ErrUnavailable
}

// Copy writes content to the system clipboard.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
