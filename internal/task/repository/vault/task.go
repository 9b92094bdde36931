package vault

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"tasks-timeline/internal/model"
	"tasks-timeline/internal/task/repository"
)

const (
	taskPrefix       = "- [ ] "
	maxParallelLoads = 8
)

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	paths := opt.Paths
	if len(paths) == 0 {
		var err error
		paths, err = r.ListFiles(ctx)
		if err != nil {
			return nil, err
		}
	}

	perFile := make([][]model.Task, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fileTasks, err := r.loadFile(p)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			perFile[i] = fileTasks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.l.Errorf(ctx, "vault.ListTasks: failed to load notes: %v", err)
		return nil, err
	}

	var tasks []model.Task
	for _, fileTasks := range perFile {
		for _, t := range fileTasks {
			if !opt.IncludeClosed && t.IsClosed() {
				continue
			}
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// loadFile returns the parsed tasks of a note, reusing the cached parse while
// the file's modification time and size are unchanged.
func (r *implRepository) loadFile(rel string) ([]model.Task, error) {
	clean, abs, err := r.resolve(rel)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if cached, ok := r.cache.Get(clean); ok && cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
		return cached.tasks, nil
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	tasks := parseContent(clean, string(raw), r.loc)
	r.cache.Add(clean, cachedFile{modTime: info.ModTime(), size: info.Size(), tasks: tasks})
	return tasks, nil
}

func (r *implRepository) AppendTask(ctx context.Context, opt repository.AppendTaskOptions) (model.Task, error) {
	text := strings.TrimSpace(strings.ReplaceAll(opt.Text, "\n", " "))
	if text == "" {
		return model.Task{}, fmt.Errorf("vault: task text is empty")
	}

	clean, abs, err := r.resolve(opt.Path)
	if err != nil {
		return model.Task{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(abs)
	if err != nil {
		r.l.Errorf(ctx, "vault.AppendTask: failed to read %s: %v", clean, err)
		return model.Task{}, err
	}
	content := string(raw)
	sep := ""
	if content != "" && !strings.HasSuffix(content, "\n") {
		sep = "\n"
	}
	line := taskPrefix + text

	f, err := os.OpenFile(abs, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		r.l.Errorf(ctx, "vault.AppendTask: failed to open %s: %v", clean, err)
		return model.Task{}, err
	}
	if _, err := f.WriteString(sep + line + "\n"); err != nil {
		f.Close()
		r.l.Errorf(ctx, "vault.AppendTask: failed to write %s: %v", clean, err)
		return model.Task{}, err
	}
	if err := f.Close(); err != nil {
		return model.Task{}, err
	}
	r.cache.Remove(clean)

	lineNo := strings.Count(content+sep, "\n") + 1
	t, _ := parseLine(clean, lineNo, line, r.loc)
	r.l.Infof(ctx, "vault.AppendTask: appended task to %s:%d", clean, lineNo)
	return t, nil
}
