// Copyright 2016 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fs provides a backend-independent filesystem layer for
// reading fixtures and writing exported pages.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	iofs "io/fs"
	"sort"
	"sync"
)

// An FS stores named files.
type FS interface {
	// NewWriter returns a Writer for a file named name. The file
	// is only visible to readers once the Writer is closed.
	// metadata may carry a "Content-Type" entry.
	NewWriter(ctx context.Context, name string, metadata map[string]string) (Writer, error)

	// NewReader opens the file named name. A missing file
	// returns an error wrapping io/fs.ErrNotExist.
	NewReader(ctx context.Context, name string) (io.ReadCloser, error)
}

// A Writer is an io.Writer that can also be closed with an error.
type Writer interface {
	io.WriteCloser
	// CloseWithError cancels the writing of the file, removing
	// any partially written data.
	CloseWithError(error) error
}

// MemFS is an in-memory filesystem implementing the FS interface.
type MemFS struct {
	mu      sync.Mutex
	content map[string]*memFile
}

// NewMemFS constructs a new, empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		content: make(map[string]*memFile),
	}
}

// NewWriter returns a Writer for a file named name.
func (fs *MemFS) NewWriter(_ context.Context, name string, metadata map[string]string) (Writer, error) {
	return &memFile{fs: fs, name: name, metadata: metadata}, nil
}

// NewReader opens the file named name.
func (fs *MemFS) NewReader(_ context.Context, name string) (io.ReadCloser, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f := fs.content[name]
	if f == nil {
		return nil, fmt.Errorf("open %s: %w", name, iofs.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(f.content)), nil
}

// Files returns the names of the files written to fs, sorted.
func (fs *MemFS) Files() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var files []string
	for name := range fs.content {
		files = append(files, name)
	}
	sort.Strings(files)
	return files
}

// Content returns the content and metadata of the file named name.
func (fs *MemFS) Content(name string) ([]byte, map[string]string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f := fs.content[name]
	if f == nil {
		return nil, nil, false
	}
	return f.content, f.metadata, true
}

// memFile represents a file in a MemFS. While the file is being
// written, fs points to the filesystem. Close writes the file's
// content to fs and sets fs to nil.
type memFile struct {
	fs       *MemFS
	name     string
	metadata map[string]string
	content  []byte
}

func (f *memFile) Write(p []byte) (int, error) {
	f.content = append(f.content, p...)
	return len(p), nil
}

func (f *memFile) Close() error {
	if f.fs == nil {
		return fmt.Errorf("close %s: already closed", f.name)
	}
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	f.fs.content[f.name] = f
	f.fs = nil
	return nil
}

func (f *memFile) CloseWithError(error) error {
	f.fs = nil
	return nil
}
