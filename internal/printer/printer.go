// Package printer renders a lowered internal/ir.Module as text or JSON,
// for the CLI and for tests asserting block/instruction shape: an
// Options struct with a DefaultOptions preset and a Printer bound to
// one io.Writer.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/wbumiller/gmqcc/internal/ir"
)

const DefaultIndentSize = 2

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format selects text or JSON output. Default: FormatText.
	Format Format

	// IndentSize is the number of spaces per indent level (text only).
	// Default: 2.
	IndentSize int
}

// DefaultOptions returns text output at the default indent width.
func DefaultOptions() Options {
	return Options{Format: FormatText, IndentSize: DefaultIndentSize}
}

// Printer renders a Module to a bound writer according to Options.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New binds a Printer to w using opts.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// PrintModule renders every global, field and function in m.
func (p *Printer) PrintModule(m *ir.Module) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printModuleJSON(m)
	default:
		return p.printModuleText(m)
	}
}

func (p *Printer) printModuleText(m *ir.Module) error {
	indent := strings.Repeat(" ", p.opts.IndentSize)

	for _, g := range m.Globals {
		if _, err := fmt.Fprintf(p.writer, "global %s %s\n", g.Type, g); err != nil {
			return err
		}
	}
	for _, f := range m.Fields {
		if _, err := fmt.Fprintf(p.writer, "field %s %s\n", f.Type, f); err != nil {
			return err
		}
	}
	for _, fn := range m.Functions {
		if err := p.printFunctionText(fn, indent); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printFunctionText(fn *ir.Function, indent string) error {
	if _, err := fmt.Fprintf(p.writer, "func %s(%v) -> %s", fn.Value, fn.Params, fn.ReturnType); err != nil {
		return err
	}
	if fn.BuiltinIndex != 0 {
		_, err := fmt.Fprintf(p.writer, " = #%d\n", fn.BuiltinIndex)
		return err
	}
	if _, err := fmt.Fprintln(p.writer, " {"); err != nil {
		return err
	}
	for _, b := range fn.Blocks {
		if _, err := fmt.Fprintf(p.writer, "%s:\n", b.Label); err != nil {
			return err
		}
		for _, instr := range b.Instructions {
			if _, err := fmt.Fprintf(p.writer, "%s%s\n", indent, instr.String()); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(p.writer, "}")
	return err
}

// jsonModule, jsonFunction, jsonBlock are deliberately loose
// (interface{}-free but minimal) serializable shadows of the IR: the IR
// types themselves carry unexported fields and interface-typed
// instruction slices that encoding/json can't walk directly.
type jsonModule struct {
	Globals   []string       `json:"globals"`
	Fields    []string       `json:"fields"`
	Functions []jsonFunction `json:"functions"`
}

type jsonFunction struct {
	Name    string      `json:"name"`
	Params  []string    `json:"params"`
	Return  string      `json:"return"`
	Builtin int         `json:"builtin,omitempty"`
	Blocks  []jsonBlock `json:"blocks,omitempty"`
}

type jsonBlock struct {
	Label        string   `json:"label"`
	Instructions []string `json:"instructions"`
}

func (p *Printer) printModuleJSON(m *ir.Module) error {
	out := jsonModule{}
	for _, g := range m.Globals {
		out.Globals = append(out.Globals, fmt.Sprintf("%s %s", g.Type, g))
	}
	for _, f := range m.Fields {
		out.Fields = append(out.Fields, fmt.Sprintf("%s %s", f.Type, f))
	}
	for _, fn := range m.Functions {
		jf := jsonFunction{Name: fn.Value.String(), Return: fn.ReturnType.String(), Builtin: fn.BuiltinIndex}
		for _, pt := range fn.Params {
			jf.Params = append(jf.Params, pt.String())
		}
		for _, b := range fn.Blocks {
			jb := jsonBlock{Label: b.Label}
			for _, instr := range b.Instructions {
				jb.Instructions = append(jb.Instructions, instr.String())
			}
			jf.Blocks = append(jf.Blocks, jb)
		}
		out.Functions = append(out.Functions, jf)
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", strings.Repeat(" ", p.opts.IndentSize))
	return enc.Encode(out)
}
