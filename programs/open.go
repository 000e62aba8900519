package programs

import (
	"context"
	"fmt"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/reusee/brainfetch/configs"
	"github.com/reusee/brainfetch/logs"
	"github.com/reusee/brainfetch/nets"
)

// SearchPaths are tried in order for relative program paths not found in the working dir.
type SearchPaths []string

func (Module) SearchPaths(
	loader configs.Loader,
) (ret SearchPaths) {
	for paths := range configs.All[[]string](loader, "search_paths") {
		for _, path := range paths {
			if !slices.Contains(ret, path) {
				ret = append(ret, path)
			}
		}
	}
	return
}

type OpenSource func(ctx context.Context, path string) (io.ReadCloser, error)

func (Module) OpenSource(
	client nets.HTTPClient,
	searchPaths SearchPaths,
	logger logs.Logger,
) OpenSource {
	return func(ctx context.Context, path string) (io.ReadCloser, error) {

		if !IsURL(path) {
			f, err := os.Open(path)
			if errors.Is(err, fs.ErrNotExist) && !filepath.IsAbs(path) {
				for _, dir := range searchPaths {
					if found, e := os.Open(filepath.Join(dir, path)); e == nil {
						logger.InfoContext(ctx, "found in search path", "dir", dir)
						return found, nil
					}
				}
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrOpenSource, err)
			}
			return f, nil
		}

		logger.InfoContext(ctx, "fetch source", "url", path)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpenSource, err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpenSource, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %s: %s", ErrOpenSource, path, resp.Status)
		}
		return resp.Body, nil
	}
}

// IsURL reports whether path is fetched over http(s) instead of read from disk.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://")
}
