package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// stdinName labels results read from standard input.
const stdinName = "-"

type input struct {
	name string
	text string
}

// eachInput runs fn on every file in paths, or on standard input when paths
// is empty. Files are read and processed by up to cfg.Workers goroutines;
// results keep the order of paths. The first error cancels the rest.
func eachInput[R any](ctx context.Context, a *app, stdin io.Reader, paths []string, fn func(input) (R, error)) ([]R, error) {
	if len(paths) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		r, err := fn(input{name: stdinName, text: string(b)})
		if err != nil {
			return nil, err
		}
		return []R{r}, nil
	}

	results := make([]R, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := readFile(path)
			if err != nil {
				return err
			}
			a.logger.Debug("processing", "source", path, "bytes", len(text))
			r, err := fn(input{name: path, text: text})
			if err != nil {
				return errors.Wrapf(err, "%s", path)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readDocuments returns one document per file, or one per non-blank line of
// stdin when paths is empty.
func readDocuments(ctx context.Context, stdin io.Reader, paths []string) ([]string, error) {
	if len(paths) == 0 {
		var docs []string
		sc := bufio.NewScanner(stdin)
		sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				docs = append(docs, line)
			}
		}
		return docs, errors.Wrap(sc.Err(), "failed to read stdin")
	}

	docs := make([]string, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := readFile(path)
		if err != nil {
			return nil, err
		}
		docs[i] = text
	}
	return docs, nil
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(b), nil
}
