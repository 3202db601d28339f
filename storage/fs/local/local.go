// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package local implements the fs.FS interface using a directory on
// the local filesystem.
package local

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/polybase/zkbench/storage/fs"
)

// impl is an fs.FS backed by a directory.
type impl struct {
	root string
}

// NewFS constructs an FS that writes to the provided directory.
// Slash-separated names are mapped to subdirectories of root.
func NewFS(root string) fs.FS {
	return &impl{root}
}

// NewWriter creates a file named name under root. metadata is
// ignored; the content type of a local file follows its extension.
func (fs *impl) NewWriter(ctx context.Context, name string, metadata map[string]string) (fs.Writer, error) {
	path := filepath.Join(fs.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, err
	}
	return &wrapper{f, path}, nil
}

// NewReader opens the file named name under root.
func (fs *impl) NewReader(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(fs.root, filepath.FromSlash(name)))
}

// wrapper writes to a temporary file that Close renames into place.
type wrapper struct {
	*os.File
	path string
}

func (w *wrapper) Close() error {
	if err := w.File.Close(); err != nil {
		os.Remove(w.File.Name())
		return err
	}
	if err := os.Chmod(w.File.Name(), 0666); err != nil {
		os.Remove(w.File.Name())
		return err
	}
	return os.Rename(w.File.Name(), w.path)
}

// CloseWithError closes the file and removes it.
func (w *wrapper) CloseWithError(error) error {
	w.File.Close()
	return os.Remove(w.File.Name())
}
