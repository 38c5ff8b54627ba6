package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/HF-Foundation/HF-CLI/internal/diag"
	"github.com/HF-Foundation/HF-CLI/internal/lexer"
	"github.com/HF-Foundation/HF-CLI/internal/source"
	"github.com/HF-Foundation/HF-CLI/internal/token"
)

// TokenizeResult holds the token dump of one file. Err carries the
// tokenize failure when the scan stopped early.
type TokenizeResult struct {
	Path   string
	File   *source.File
	Tokens []token.Token
	Err    *diag.TokenizeError
}

// Tokenize scans a single file for the dump command. Only filesystem
// problems are returned as an error; a tokenize failure is part of
// the result.
func Tokenize(path string) (*TokenizeResult, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	tokens, tokErr := lexer.Tokenize(file)
	return &TokenizeResult{
		Path:   path,
		File:   file,
		Tokens: tokens,
		Err:    tokErr,
	}, nil
}

// SourceExtension is the suffix of HF source files.
const SourceExtension = ".hf"

// listSourceFiles returns every source file under dir, sorted for a
// deterministic dump order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExtension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir scans every source file under dir, at most jobs files
// at a time (GOMAXPROCS when jobs <= 0). Results come back in the
// sorted file order regardless of scheduling. This is a debugging
// surface; the compile pipeline itself stays sequential.
func TokenizeDir(ctx context.Context, dir string, jobs int) ([]TokenizeResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes only its own index; no lock needed.
	results := make([]TokenizeResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := Tokenize(path)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
