// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcs implements the fs.FS interface using Google Cloud Storage.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"

	"cloud.google.com/go/storage"
	"github.com/polybase/zkbench/storage/fs"
	"google.golang.org/api/option"
)

// FS is an fs.FS backed by a Google Cloud Storage bucket. It owns
// its client and must be closed after use.
type FS struct {
	client *storage.Client
	bucket *storage.BucketHandle
}

var _ fs.FS = (*FS)(nil)

// NewFS constructs an FS that uses the named bucket. opts are passed
// to the storage client, e.g. option.WithoutAuthentication for
// public buckets.
func NewFS(ctx context.Context, bucketName string, opts ...option.ClientOption) (*FS, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &FS{client, client.Bucket(bucketName)}, nil
}

// Close closes the storage client.
func (fs *FS) Close() error {
	return fs.client.Close()
}

// NewWriter creates a new object and assigns metadata. A
// "Content-Type" entry sets the object's content type.
func (fs *FS) NewWriter(ctx context.Context, name string, metadata map[string]string) (fs.Writer, error) {
	ctx, cancel := context.WithCancel(ctx)
	w := fs.bucket.Object(name).NewWriter(ctx)
	meta := make(map[string]string)
	for k, v := range metadata {
		if k == "Content-Type" {
			w.ContentType = v
			continue
		}
		meta[k] = v
	}
	w.Metadata = meta
	return &wrapper{w, cancel}, nil
}

// NewReader opens the named object.
func (fs *FS) NewReader(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := fs.bucket.Object(name).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("open %s: %w", name, iofs.ErrNotExist)
	}
	return r, err
}

// wrapper implements fs.Writer; canceling the upload context aborts
// the object write.
type wrapper struct {
	*storage.Writer
	cancel context.CancelFunc
}

func (w *wrapper) Close() error {
	defer w.cancel()
	return w.Writer.Close()
}

// CloseWithError aborts the upload.
func (w *wrapper) CloseWithError(error) error {
	w.cancel()
	w.Writer.Close()
	return nil
}
