// Package io reads scripts that are piped into snip instead of named by path.
package io

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadPiped returns everything piped into stdin. ok is false when stdin is an
// interactive terminal, since reading it would wait for typed input.
func ReadPiped(stdin io.Reader) (text string, ok bool, err error) {
	if stdin == nil {
		return "", false, nil
	}

	if f, isFile := stdin.(*os.File); isFile {
		stat, err := f.Stat()
		if err != nil {
			return "", false, fmt.Errorf("failed to stat stdin: %w", err)
		}
		// a character device is a terminal, not a pipe or redirected file
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", false, nil
		}
	}

	var builder strings.Builder // https://pkg.go.dev/strings#Builder
	if _, err := io.Copy(&builder, stdin); err != nil {
		return "", false, fmt.Errorf("failed to read from stdin: %w", err)
	}

	return builder.String(), true, nil
}
