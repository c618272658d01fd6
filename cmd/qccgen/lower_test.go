package main

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleProgram = `{
	"functions": [{
		"name": "identity",
		"params": [{"name": "x", "type": "float"}],
		"return": "float",
		"body": [{"exprs": [{"kind": "return", "operand": {"kind": "value", "name": "x"}}]}]
	}]
}`

func writeSampleProgram(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.json")
	if err := os.WriteFile(path, []byte(sampleProgram), 0o644); err != nil {
		t.Fatalf("writing sample program failed: %v", err)
	}
	return path
}

func TestRunLowerSucceedsOnSampleProgram(t *testing.T) {
	path := writeSampleProgram(t)
	if err := runLower(path); err != nil {
		t.Fatalf("runLower failed: %v", err)
	}
}

func TestRunValidateSucceedsOnSampleProgram(t *testing.T) {
	path := writeSampleProgram(t)
	validateLimits = "default"
	if err := runValidate(path); err != nil {
		t.Fatalf("runValidate failed: %v", err)
	}
}

func TestRunLowerRejectsMissingFile(t *testing.T) {
	if err := runLower(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("runLower should fail for a nonexistent file")
	}
}
