// Package resource resolves classpath-style resource names against a list of
// roots. A root is either a directory or a jar/zip archive.
package resource

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ormxml.resource")

// StreamLocator opens named resources.
type StreamLocator interface {
	LocateResourceStream(name string) (io.ReadCloser, error)
}

// Locator searches its roots in order and returns the first match.
type Locator struct {
	roots []string

	mu       sync.Mutex
	archives map[string]*zip.ReadCloser
}

func NewLocator(roots ...string) *Locator {
	return &Locator{
		roots:    roots,
		archives: map[string]*zip.ReadCloser{},
	}
}

func (l *Locator) Roots() []string {
	return l.roots
}

// LocateResourceStream opens the named resource. Names use forward slashes
// and may start with a slash. A missing resource yields an error wrapping
// fs.ErrNotExist.
func (l *Locator) LocateResourceStream(name string) (io.ReadCloser, error) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	for _, root := range l.roots {
		rc, err := l.open(root, name)
		if err == nil {
			log.Debugf("resolved resource %s in %s", name, root)
			return rc, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("locate resource %s in %s: %w", name, root, err)
		}
	}
	return nil, fmt.Errorf("locate resource %s: %w", name, fs.ErrNotExist)
}

// Exists reports whether the named resource can be found.
func (l *Locator) Exists(name string) bool {
	rc, err := l.LocateResourceStream(name)
	if err != nil {
		return false
	}
	rc.Close()
	return true
}

func (l *Locator) open(root, name string) (io.ReadCloser, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return os.Open(filepath.Join(root, filepath.FromSlash(name)))
	}
	switch strings.ToLower(filepath.Ext(root)) {
	case ".jar", ".zip":
		archive, err := l.archive(root)
		if err != nil {
			return nil, err
		}
		return archive.Open(name)
	}
	return nil, fs.ErrNotExist
}

func (l *Locator) archive(root string) (*zip.ReadCloser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if r, ok := l.archives[root]; ok {
		return r, nil
	}
	r, err := zip.OpenReader(root)
	if err != nil {
		return nil, err
	}
	l.archives[root] = r
	return r, nil
}

// Close releases the archives opened so far.
func (l *Locator) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var errs []error
	for root, r := range l.archives {
		if err := r.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", root, err))
		}
		delete(l.archives, root)
	}
	return errors.Join(errs...)
}
