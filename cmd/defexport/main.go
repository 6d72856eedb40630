package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/fwojciec/deflist"
	"github.com/fwojciec/deflist/fs"
	"github.com/fwojciec/deflist/goldmark"
	"golang.org/x/sync/errgroup"
)

// App encapsulates the application logic for testing.
type App struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Renderer  deflist.Renderer
	ListFiles func(root string) ([]string, error)
	ReadFile  func(name string) ([]byte, error)
	WriteFile func(name string, data []byte, perm iofs.FileMode) error
}

// Run renders Markdown to HTML. With an empty root it reads one document
// from stdin and writes HTML to stdout. With a root it converts every
// Markdown file under it, writing a sibling .html file per document.
func (a *App) Run(ctx context.Context, root string) error {
	if root == "" {
		src, err := io.ReadAll(a.Stdin)
		if err != nil {
			return err
		}
		return a.Renderer.Render(src, a.Stdout)
	}

	paths, err := a.ListFiles(root)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return a.convert(path)
		})
	}
	return g.Wait()
}

func (a *App) convert(path string) error {
	src, err := a.ReadFile(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := a.Renderer.Render(src, &buf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	return a.WriteFile(out, buf.Bytes(), 0o644)
}

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: defexport [DIR]")
		os.Exit(1)
	}
	root := ""
	if len(os.Args) == 2 {
		root = os.Args[1]
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Renderer:  goldmark.NewRenderer(),
		ListFiles: fs.MarkdownFiles,
		ReadFile:  os.ReadFile,
		WriteFile: os.WriteFile,
	}

	if err := app.Run(ctx, root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
