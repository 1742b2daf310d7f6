package pool

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/lox/buzzbingo/internal/fileutil"
)

// File represents a pool configuration file containing named pools
type File struct {
	Pools map[string]*Pool
}

// fileConfig mirrors the HCL shape of a pool file
type fileConfig struct {
	Pools []poolBlock `hcl:"pool,block"`
}

type poolBlock struct {
	Name   string   `hcl:"name,label"`
	Labels []string `hcl:"labels"`
	Free   *string  `hcl:"free,optional"`
}

// DefaultFile returns a starter pool file with a single example pool
func DefaultFile() *File {
	p, _ := FromLabels(
		"synergy", "circle back", "low-hanging fruit", "bandwidth",
		"move the needle", "deep dive", "touch base", "alignment",
		"take this offline", "paradigm shift", "quick win", "big picture",
	)
	p.SetFree(0)
	return &File{Pools: map[string]*Pool{"standup": p}}
}

// LoadFile parses an HCL pool file. The optional "free" attribute names a
// label; it must match one of the pool's labels exactly.
func LoadFile(filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var cfg fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	out := &File{Pools: make(map[string]*Pool, len(cfg.Pools))}
	for _, block := range cfg.Pools {
		p, err := FromLabels(block.Labels...)
		if err != nil {
			return nil, fmt.Errorf("pool %q: %w", block.Name, err)
		}
		if block.Free != nil {
			idx := indexOf(block.Labels, *block.Free)
			if idx < 0 {
				return nil, fmt.Errorf("pool %q: free label %q is not one of its labels", block.Name, *block.Free)
			}
			if err := p.SetFree(idx); err != nil {
				return nil, fmt.Errorf("pool %q: %w", block.Name, err)
			}
		}
		out.Pools[block.Name] = p
	}
	return out, nil
}

// Get returns the named pool, or the only pool in the file when name is
// empty and the file is unambiguous.
func (f *File) Get(name string) (*Pool, error) {
	if name == "" {
		if len(f.Pools) == 1 {
			for _, p := range f.Pools {
				return p, nil
			}
		}
		return nil, fmt.Errorf("file defines %d pools, pick one with --pool (%v)", len(f.Pools), f.Names())
	}
	p, ok := f.Pools[name]
	if !ok {
		return nil, fmt.Errorf("no pool named %q (have %v)", name, f.Names())
	}
	return p, nil
}

// Names returns the pool names in the file, sorted
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Pools))
	for name := range f.Pools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SaveFile writes the pool file back as HCL, atomically
func SaveFile(filename string, f *File) error {
	out := hclwrite.NewEmptyFile()
	body := out.Body()
	for i, name := range f.Names() {
		if i > 0 {
			body.AppendNewline()
		}
		p := f.Pools[name]
		block := body.AppendNewBlock("pool", []string{name})
		labels := p.Labels()
		vals := make([]cty.Value, len(labels))
		for j, l := range labels {
			vals[j] = cty.StringVal(l)
		}
		if len(vals) == 0 {
			block.Body().SetAttributeValue("labels", cty.ListValEmpty(cty.String))
		} else {
			block.Body().SetAttributeValue("labels", cty.ListVal(vals))
		}
		if free, ok := p.FreeLabel(); ok {
			block.Body().SetAttributeValue("free", cty.StringVal(free))
		}
	}
	return fileutil.WriteFileAtomic(filename, out.Bytes(), 0o644)
}

func indexOf(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}
