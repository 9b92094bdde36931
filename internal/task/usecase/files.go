package usecase

import (
	"context"
	"path"
	"strings"

	"tasks-timeline/internal/task"
)

func (uc *implUseCase) ListFiles(ctx context.Context) (task.ListFilesOutput, error) {
	paths, err := uc.repo.ListFiles(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "ListFiles: %v", err)
		return task.ListFilesOutput{}, err
	}

	files := make([]task.FileOption, 0, len(paths))
	for _, p := range paths {
		files = append(files, task.FileOption{Path: p, Label: fileLabel(p)})
	}
	return task.ListFilesOutput{Files: files, DefaultFile: uc.cfg.DefaultFile}, nil
}

// fileLabel builds the picker label of a note: its title, its parent folder
// when nested, and an ellipsis when nested deeper than one folder.
func fileLabel(p string) string {
	title := strings.TrimSuffix(path.Base(p), path.Ext(p))
	label := "📄 " + title

	dir := path.Dir(p)
	if dir == "." {
		return label
	}
	label = "📂 " + path.Base(dir) + " / " + label
	if path.Dir(dir) != "." {
		label = "… / " + label
	}
	return label
}
