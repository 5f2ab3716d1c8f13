package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvsteiner/stpio"
)

// readInstance parses the STP file at path, or stdin for "-".
func readInstance(path string, stdin io.Reader) (stpio.Instance, error) {
	if path == "-" {
		return stpio.Read(stdin)
	}
	inst, err := stpio.ParseFile(path)
	if err != nil {
		return inst, fmt.Errorf("read %s: %w", path, err)
	}

	return inst, nil
}

// openOutput returns stdout for "" or "-", or a created file.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
