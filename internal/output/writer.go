package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Writer persists files under a root directory.
type Writer interface {
	Write(ctx context.Context, root string, files []File) error
}

// DefaultConcurrency bounds parallel file writes.
const DefaultConcurrency = 4

// FSWriter writes files to the local filesystem, creating directories as
// needed. A failed run may leave some files written.
type FSWriter struct {
	Concurrency int
	DirPerm     os.FileMode
	FilePerm    os.FileMode
}

// NewFSWriter returns an FSWriter with default permissions.
func NewFSWriter() *FSWriter {
	return &FSWriter{Concurrency: DefaultConcurrency, DirPerm: 0o755, FilePerm: 0o644}
}

// Write writes every file under root in parallel.
func (w *FSWriter) Write(ctx context.Context, root string, files []File) error {
	for _, f := range files {
		if err := validatePath(f.Path); err != nil {
			return err
		}
	}

	limit := w.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, f := range files {
		f := f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			target := filepath.Join(root, filepath.FromSlash(f.Path))
			if err := os.MkdirAll(filepath.Dir(target), w.dirPerm()); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
			}
			if err := os.WriteFile(target, f.Content, w.filePerm()); err != nil {
				return fmt.Errorf("failed to write %s: %w", f.Path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (w *FSWriter) dirPerm() os.FileMode {
	if w.DirPerm == 0 {
		return 0o755
	}
	return w.DirPerm
}

func (w *FSWriter) filePerm() os.FileMode {
	if w.FilePerm == 0 {
		return 0o644
	}
	return w.FilePerm
}

// MemoryWriter keeps written files in memory, keyed by root-joined path.
type MemoryWriter struct {
	mu    sync.Mutex
	files map[string][]byte
	// Err, when set, is returned by Write before anything is stored
	Err error
}

// NewMemoryWriter returns an empty MemoryWriter.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{files: make(map[string][]byte)}
}

// Write stores files.
func (w *MemoryWriter) Write(ctx context.Context, root string, files []File) error {
	if w.Err != nil {
		return w.Err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, f := range files {
		if err := validatePath(f.Path); err != nil {
			return err
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, f := range files {
		w.files[filepath.ToSlash(filepath.Join(root, f.Path))] = append([]byte(nil), f.Content...)
	}
	return nil
}

// File returns the content stored for root-joined path p.
func (w *MemoryWriter) File(p string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	data, ok := w.files[filepath.ToSlash(p)]
	return data, ok
}

// Paths returns every stored path in sorted order.
func (w *MemoryWriter) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
