package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Source fetches the raw bytes of a file relative to a data folder.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Location returns where name is read from, for log messages.
	Location(name string) string
}

// FileSource reads from a directory on disk.
type FileSource struct {
	Dir string
}

// Fetch reads Dir/name
func (s FileSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Location(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// Location is the path of name on disk
func (s FileSource) Location(name string) string {
	return filepath.Join(s.Dir, filepath.FromSlash(name))
}

// HTTPSource issues GET requests relative to a base URL.
type HTTPSource struct {
	Base   *url.URL
	Client *http.Client
}

// Fetch downloads name. Any status other than 200 is an error.
func (s HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location(name), nil)
	if err != nil {
		return nil, err
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", name, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// Location is the absolute URL of name
func (s HTTPSource) Location(name string) string {
	return s.Base.ResolveReference(&url.URL{Path: name}).String()
}

// NewSource picks an HTTPSource for http(s) folders and a FileSource for
// everything else.
func NewSource(folder string, client *http.Client) (Source, error) {
	if strings.HasPrefix(folder, "http://") || strings.HasPrefix(folder, "https://") {
		base, err := url.Parse(folder)
		if err != nil {
			return nil, fmt.Errorf("invalid data URL %q: %w", folder, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		return HTTPSource{Base: base, Client: client}, nil
	}
	return FileSource{Dir: folder}, nil
}
