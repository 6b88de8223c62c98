package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/domain"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/core/ports/driven"
	"github.com/Godgiftedevil/CSV-Data-Cleaner-for-Data-Analysis/internal/logger"
)

// Ensure Workspace implements the interface.
var _ driven.Workspace = (*Workspace)(nil)

// Workspace exposes the CSV files in a single directory.
type Workspace struct {
	dir string
}

// New creates a workspace rooted at dir. The path is validated when
// List or Watch is called, not here.
func New(dir string) *Workspace {
	return &Workspace{dir: dir}
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// Validate checks that the workspace directory exists and is usable.
func (w *Workspace) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(w.dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("workspace %s does not exist", w.dir)
	}
	if err != nil {
		return fmt.Errorf("checking workspace: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace %s is not a directory", w.dir)
	}
	return nil
}

// List returns the CSV files in the workspace, sorted by name.
func (w *Workspace) List(ctx context.Context) ([]domain.FileInfo, error) {
	if err := w.Validate(ctx); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, fmt.Errorf("reading workspace: %w", err)
	}

	var files []domain.FileInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || isHidden(name) || !isCSV(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue // File disappeared between listing and stat
		}
		files = append(files, domain.FileInfo{
			Path:    filepath.Join(w.dir, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	logger.Debug("workspace %s: %d CSV files", w.dir, len(files))
	return files, nil
}

// Watch streams file events for the workspace until ctx is cancelled.
// The returned channel is closed when watching stops.
func (w *Workspace) Watch(ctx context.Context) (<-chan domain.FileEvent, error) {
	if err := w.Validate(ctx); err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", w.dir, err)
	}

	events := make(chan domain.FileEvent)

	go func() {
		defer close(events)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case fsEvent, ok := <-watcher.Events:
				if !ok {
					return
				}
				event := w.handleFsEvent(fsEvent)
				if event == nil {
					continue
				}
				select {
				case events <- *event:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("workspace watcher: %v", err)
			}
		}
	}()

	return events, nil
}

// handleFsEvent maps a fsnotify event to a workspace file event.
// Returns nil for events that carry no change for the picker: hidden
// files, non-CSV files, directories, and chmod-only operations.
func (w *Workspace) handleFsEvent(event fsnotify.Event) *domain.FileEvent {
	name := filepath.Base(event.Name)
	if isHidden(name) || !isCSV(name) {
		return nil
	}

	switch {
	case event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil || info.IsDir() {
			return nil
		}
		changeType := domain.ChangeUpdated
		if event.Op.Has(fsnotify.Create) {
			changeType = domain.ChangeCreated
		}
		return &domain.FileEvent{
			Type: changeType,
			File: domain.FileInfo{
				Path:    event.Name,
				Name:    name,
				Size:    info.Size(),
				ModTime: info.ModTime(),
			},
		}
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		return &domain.FileEvent{
			Type: domain.ChangeDeleted,
			File: domain.FileInfo{Path: event.Name, Name: name},
		}
	default:
		return nil
	}
}

// isHidden reports whether name is a dotfile.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// isCSV reports whether name has a .csv extension, case-insensitively.
func isCSV(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".csv")
}
