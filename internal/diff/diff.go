// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff compares multi-line test output.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Diff returns a human-readable description of the differences
// between have and want, or "" if they are equal. If the "diff"
// command is available the description is a unified diff labelled
// "have" and "want".
func Diff(have, want string) string {
	if have == want {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("diff command unavailable\nhave: %q\nwant: %q", have, want)
	}
	dir, err := os.MkdirTemp("", "zkbench-diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)

	f1, f2 := filepath.Join(dir, "have"), filepath.Join(dir, "want")
	if err := os.WriteFile(f1, []byte(have), 0666); err != nil {
		return err.Error()
	}
	if err := os.WriteFile(f2, []byte(want), 0666); err != nil {
		return err.Error()
	}

	cmd := "diff"
	if runtime.GOOS == "plan9" {
		cmd = "/bin/ape/diff"
	}
	data, err := exec.Command(cmd, "-u", f1, f2).CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files
		// don't match. Ignore that failure as long as we get
		// output.
		err = nil
	}
	if err != nil {
		data = append(data, []byte(err.Error())...)
	}
	return string(data)
}
