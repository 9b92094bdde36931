package vault

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"tasks-timeline/internal/model"
	"tasks-timeline/internal/task/repository"
	pkgLog "tasks-timeline/pkg/log"
)

const defaultCacheSize = 256

// cachedFile holds the parsed tasks of a note together with the file
// attributes they were parsed from.
type cachedFile struct {
	modTime time.Time
	size    int64
	tasks   []model.Task
}

type implRepository struct {
	root  string
	loc   *time.Location
	l     pkgLog.Logger
	cache *lru.Cache[string, cachedFile]
	mu    sync.Mutex // serializes appends
}

// New creates a repository over the markdown notes under root. Dates found in
// task lines are interpreted in loc.
func New(root string, loc *time.Location, cacheSize int, l pkgLog.Logger) (repository.Repository, error) {
	if root == "" {
		return nil, fmt.Errorf("vault: root is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, cachedFile](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("vault: failed to create cache: %w", err)
	}
	return &implRepository{
		root:  root,
		loc:   loc,
		l:     l,
		cache: cache,
	}, nil
}
