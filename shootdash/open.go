// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// viewerCommand splits the shell-quoted command line cmdline and
// appends path as its final argument.
func viewerCommand(cmdline, path string) (*exec.Cmd, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("parsing -open command %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty -open command")
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}
