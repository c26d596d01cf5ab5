// Package problem decodes YAML problem files for the lvlsearch CLI.
//
// A file names its kind and carries exactly the matching section:
//
//	kind: graph
//	graph:
//	  nodes: 4
//	  directed: false
//	  edges:
//	    - {from: 0, to: 1, weight: 2}
//	    - {from: 1, to: 2, weight: 3}
//
// Unknown fields are rejected so typos surface as errors instead of defaults.
package problem

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/knapsack"
)

var (
	// ErrDecode indicates malformed YAML or unknown fields.
	ErrDecode = errors.New("problem: decode failed")

	// ErrUnknownKind indicates a missing or unsupported kind.
	ErrUnknownKind = errors.New("problem: unknown kind")

	// ErrMissingSection indicates the section for the declared kind is absent.
	ErrMissingSection = errors.New("problem: missing section for kind")

	// ErrWrongKind indicates a command received a file of another kind.
	ErrWrongKind = errors.New("problem: wrong kind")
)

// Kind names the problem family of a file.
type Kind string

const (
	KindGraph      Kind = "graph"
	KindKnapsack   Kind = "knapsack"
	KindQueens     Kind = "queens"
	KindSubsetSum  Kind = "subsetsum"
	KindSubsets    Kind = "subsets"
	KindAssignment Kind = "assignment"
)

// File is one decoded problem file.
type File struct {
	Kind       Kind        `yaml:"kind"`
	Graph      *Graph      `yaml:"graph,omitempty"`
	Knapsack   *Knapsack   `yaml:"knapsack,omitempty"`
	Queens     *Queens     `yaml:"queens,omitempty"`
	SubsetSum  *SubsetSum  `yaml:"subsetsum,omitempty"`
	Subsets    *Subsets    `yaml:"subsets,omitempty"`
	Assignment *Assignment `yaml:"assignment,omitempty"`
}

// Graph describes a weighted graph and an optional default source node.
type Graph struct {
	Nodes           int    `yaml:"nodes"`
	Directed        bool   `yaml:"directed"`
	KeepMinParallel bool   `yaml:"keep_min_parallel"`
	Source          int    `yaml:"source"`
	Edges           []Edge `yaml:"edges"`
}

// Edge is one weighted edge.
type Edge struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Knapsack is a 0/1 knapsack instance.
type Knapsack struct {
	Capacity int64  `yaml:"capacity"`
	Items    []Item `yaml:"items"`
}

// Item is one knapsack item.
type Item struct {
	Weight int64 `yaml:"weight"`
	Value  int64 `yaml:"value"`
}

// Queens is an N-Queens board size.
type Queens struct {
	N int `yaml:"n"`
}

// SubsetSum is a subset-sum instance.
type SubsetSum struct {
	Numbers []int64 `yaml:"numbers"`
	Target  int64   `yaml:"target"`
}

// Subsets lists the items to enumerate.
type Subsets struct {
	Items []string `yaml:"items"`
}

// Assignment is a square cost matrix.
type Assignment struct {
	Cost [][]float64 `yaml:"cost"`
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a problem document and checks that its kind and section agree.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

func (f *File) validate() error {
	var present bool
	switch f.Kind {
	case KindGraph:
		present = f.Graph != nil
	case KindKnapsack:
		present = f.Knapsack != nil
	case KindQueens:
		present = f.Queens != nil
	case KindSubsetSum:
		present = f.SubsetSum != nil
	case KindSubsets:
		present = f.Subsets != nil
	case KindAssignment:
		present = f.Assignment != nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
	if !present {
		return fmt.Errorf("%w: %s", ErrMissingSection, f.Kind)
	}

	return nil
}

// Expect returns ErrWrongKind unless the file is of kind k.
func (f *File) Expect(k Kind) error {
	if f.Kind != k {
		return fmt.Errorf("%w: have %s, want %s", ErrWrongKind, f.Kind, k)
	}

	return nil
}

// Build converts the description into a core.Graph.
func (g *Graph) Build() (*core.Graph, error) {
	var opts []core.GraphOption
	if g.Directed {
		opts = append(opts, core.WithDirected())
	}
	if g.KeepMinParallel {
		opts = append(opts, core.WithKeepMinParallel())
	}
	edges := make([]core.Edge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = core.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	return core.NewGraph(g.Nodes, edges, opts...)
}

// KnapsackItems converts the items for knapsack.Solve.
func (k *Knapsack) KnapsackItems() []knapsack.Item {
	out := make([]knapsack.Item, len(k.Items))
	for i, it := range k.Items {
		out[i] = knapsack.Item{Weight: it.Weight, Value: it.Value}
	}

	return out
}
