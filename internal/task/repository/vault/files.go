package vault

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"tasks-timeline/internal/task/repository"
)

const noteExt = ".md"

func (r *implRepository) ListFiles(ctx context.Context) ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != r.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isNote(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(r.root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "vault.ListFiles: walk %s failed: %v", r.root, err)
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func isNote(name string) bool {
	return strings.EqualFold(filepath.Ext(name), noteExt)
}

// resolve validates a vault-relative path and returns its cleaned slash form
// and absolute filesystem path.
func (r *implRepository) resolve(rel string) (string, string, error) {
	rel = strings.TrimSpace(filepath.ToSlash(rel))
	if rel == "" || strings.HasPrefix(rel, "/") || filepath.IsAbs(rel) {
		return "", "", repository.ErrInvalidPath
	}
	clean := path.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, "../") || !isNote(clean) {
		return "", "", repository.ErrInvalidPath
	}
	abs := filepath.Join(r.root, filepath.FromSlash(clean))

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", repository.ErrFileNotFound
		}
		return "", "", err
	}
	if info.IsDir() {
		return "", "", repository.ErrInvalidPath
	}
	return clean, abs, nil
}
