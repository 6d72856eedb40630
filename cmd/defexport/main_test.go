package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"strings"
	"sync"
	"testing"

	main "github.com/fwojciec/deflist/cmd/defexport"
	"github.com/fwojciec/deflist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run_Stdin(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app := &main.App{
		Stdin:  strings.NewReader("Term A\n: definition one"),
		Stdout: &out,
		Renderer: &mock.Renderer{
			RenderFn: func(src []byte, w io.Writer) error {
				_, err := w.Write([]byte("<dl>" + string(src) + "</dl>"))
				return err
			},
		},
	}

	err := app.Run(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "<dl>Term A\n: definition one</dl>", out.String())
}

func TestApp_Run_Directory(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"notes/a.md":       "Term A\n: one",
		"notes/b.markdown": "Term B\n: two",
	}

	var mu sync.Mutex
	written := map[string]string{}

	app := &main.App{
		Renderer: &mock.Renderer{
			RenderFn: func(src []byte, w io.Writer) error {
				_, err := w.Write(append([]byte("html:"), src...))
				return err
			},
		},
		ListFiles: func(root string) ([]string, error) {
			assert.Equal(t, "notes", root)
			return []string{"notes/a.md", "notes/b.markdown"}, nil
		},
		ReadFile: func(name string) ([]byte, error) {
			return []byte(files[name]), nil
		},
		WriteFile: func(name string, data []byte, perm iofs.FileMode) error {
			mu.Lock()
			defer mu.Unlock()
			written[name] = string(data)
			return nil
		},
	}

	err := app.Run(context.Background(), "notes")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"notes/a.html": "html:Term A\n: one",
		"notes/b.html": "html:Term B\n: two",
	}, written)
}

func TestApp_Run_ListError(t *testing.T) {
	t.Parallel()

	listErr := errors.New("no such directory")
	app := &main.App{
		Renderer: &mock.Renderer{},
		ListFiles: func(root string) ([]string, error) {
			return nil, listErr
		},
	}

	err := app.Run(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, listErr, err)
}

func TestApp_Run_RenderErrorNamesFile(t *testing.T) {
	t.Parallel()

	app := &main.App{
		Renderer: &mock.Renderer{
			RenderFn: func(src []byte, w io.Writer) error {
				return errors.New("bad input")
			},
		},
		ListFiles: func(root string) ([]string, error) {
			return []string{"notes/broken.md"}, nil
		},
		ReadFile: func(name string) ([]byte, error) {
			return []byte("x"), nil
		},
	}

	err := app.Run(context.Background(), "notes")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes/broken.md")
}
