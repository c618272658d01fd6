package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/types"
)

func buildSampleModule(t *testing.T) *ir.Module {
	t.Helper()
	m := ir.NewModule()
	if _, err := m.CreateGlobal("PI", types.TypeFloat); err != nil {
		t.Fatalf("CreateGlobal failed: %v", err)
	}
	fn, err := m.CreateFunction("double", types.TypeFloat)
	if err != nil {
		t.Fatalf("CreateFunction failed: %v", err)
	}
	m.AppendParameterType(fn, types.TypeFloat)
	b := m.CreateBlock(fn, "entry")
	x, err := m.CreateLocal(fn, "x", types.TypeFloat, true)
	if err != nil {
		t.Fatalf("CreateLocal failed: %v", err)
	}
	sum, err := m.EmitBinOp(b, "sum", ir.OpAddF, x, x)
	if err != nil {
		t.Fatalf("EmitBinOp failed: %v", err)
	}
	if err := m.EmitReturn(b, sum); err != nil {
		t.Fatalf("EmitReturn failed: %v", err)
	}
	return m
}

func TestPrintModuleTextContainsFunctionAndBlock(t *testing.T) {
	m := buildSampleModule(t)
	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())
	if err := p.PrintModule(m); err != nil {
		t.Fatalf("PrintModule failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "func double") {
		t.Errorf("text output should name the function, got:\n%s", out)
	}
	if !strings.Contains(out, "entry:") {
		t.Errorf("text output should show the entry block label, got:\n%s", out)
	}
}

func TestPrintModuleJSONIsValid(t *testing.T) {
	m := buildSampleModule(t)
	var buf bytes.Buffer
	p := New(&buf, Options{Format: FormatJSON, IndentSize: 2})
	if err := p.PrintModule(m); err != nil {
		t.Fatalf("PrintModule failed: %v", err)
	}

	var decoded jsonModule
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json output did not decode: %v", err)
	}
	if len(decoded.Functions) != 1 || decoded.Functions[0].Name != "double" {
		t.Errorf("decoded JSON should describe function double, got %+v", decoded)
	}
	if len(decoded.Functions[0].Blocks) != 1 {
		t.Errorf("decoded JSON should describe one block, got %d", len(decoded.Functions[0].Blocks))
	}
}
