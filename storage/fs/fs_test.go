// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fs

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"reflect"
	"testing"
)

func TestMemFS(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()

	w, err := fs.NewWriter(ctx, "a/b.html", map[string]string{"Content-Type": "text/html"})
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(w, "hello ")
	io.WriteString(w, "world")
	if _, err := fs.NewReader(ctx, "a/b.html"); !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("file visible before Close: err = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err == nil {
		t.Errorf("second Close succeeded")
	}

	r, err := fs.NewReader(ctx, "a/b.html")
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(r)
	if string(data) != "hello world" {
		t.Errorf("content = %q, want %q", data, "hello world")
	}
	_, meta, _ := fs.Content("a/b.html")
	if meta["Content-Type"] != "text/html" {
		t.Errorf("metadata = %v", meta)
	}

	w, _ = fs.NewWriter(ctx, "c.svg", nil)
	io.WriteString(w, "partial")
	w.CloseWithError(errors.New("cancel"))

	if got, want := fs.Files(), []string{"a/b.html"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
}
