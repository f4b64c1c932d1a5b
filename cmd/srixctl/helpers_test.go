package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

// runCLI executes srixctl with args and returns what it printed. Global flag
// variables are reset first because cobra keeps them between executions.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	imagePath, configPath = "", ""
	verbose, quiet, jsonOut = false, false, false
	dumpRegion = "all"
	createUID, createFill, createForce = "", "0xFFFFFFFF", false
	cfg = Config{}

	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	defer func() { stdout = orig }()

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// newTestImage creates an erased image in a temp dir and returns its path.
func newTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tag.srix")
	if _, err := runCLI(t, "create", "-i", path, "--uid", "D0021A0011223344"); err != nil {
		t.Fatalf("create: %v", err)
	}
	return path
}
