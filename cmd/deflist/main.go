package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/deflist"
	"github.com/fwojciec/deflist/bubbletea"
	"github.com/fwojciec/deflist/chroma"
	"github.com/fwojciec/deflist/clipboard"
	"github.com/fwojciec/deflist/lipgloss"
)

// App encapsulates the application logic for testing.
type App struct {
	Editor    deflist.Editor
	ReadFile  func(name string) ([]byte, error)
	WriteFile func(name string, data []byte, perm fs.FileMode) error
}

// Run opens the file in the editor and writes it back if it changed.
func (a *App) Run(ctx context.Context, path string) error {
	data, err := a.ReadFile(path)
	if err != nil {
		return err
	}

	original := string(data)
	edited, err := a.Editor.Edit(ctx, original)
	if err != nil {
		return err
	}
	if edited == original {
		return nil
	}
	return a.WriteFile(path, []byte(edited), 0o644)
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: deflist FILE")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := []bubbletea.ModelOption{
		bubbletea.WithTheme(lipgloss.DefaultTheme()),
		bubbletea.WithTokenizer(chroma.NewHighlighter(chroma.DefaultStyle)),
	}
	if clip, err := clipboard.New(); err == nil {
		opts = append(opts, bubbletea.WithClipboard(clip))
	} else if !errors.Is(err, clipboard.ErrUnavailable) {
		fmt.Fprintln(os.Stderr, "clipboard disabled:", err)
	}

	app := &App{
		Editor:    bubbletea.NewEditor(opts...),
		ReadFile:  os.ReadFile,
		WriteFile: os.WriteFile,
	}

	if err := app.Run(ctx, os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
