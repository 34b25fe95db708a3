//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// run executes the built CLI with args, streaming output.
func run(args ...string) error {
	bin := filepath.Join(binDir, binName)
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", bin, args, err)
	}
	return nil
}

// Sheets inspects the workbook: sheet names, columns, and row samples.
func Sheets() error {
	mg.Deps(Build)
	return run("sheets")
}

// Extract dumps the leading raw rows of the CEFR sheet to kelly-150-raw.json.
func Extract() error {
	mg.Deps(Build)
	return run("extract")
}

// Vocab builds the filtered, formatted vocabulary list and ingests it
// into the store.
func Vocab() error {
	mg.Deps(Build, Init)
	if err := run("build"); err != nil {
		return err
	}
	return run("store", "ingest")
}
