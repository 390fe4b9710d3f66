package words

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the on-disk form of a word list:
//
//	category = "Baseball"
//	words    = ["Lucas", "Chen", "The Best"]
type File struct {
	Category string   `hcl:"category,optional"`
	Words    []string `hcl:"words"`
}

// LoadFile parses and validates an HCL word list.
func LoadFile(filename string) (*File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return ParseFile(src, filename)
}

// ParseFile parses HCL source. filename is only used in diagnostics.
func ParseFile(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := Validate(f.Words); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &f, nil
}

// Open returns a List for filename, or the built-in list when filename is
// empty.
func Open(filename string, rng Rand) (*List, error) {
	if filename == "" {
		return Default(rng), nil
	}
	f, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewList(f.Category, f.Words, rng)
}
