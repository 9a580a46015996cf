// Package graphio: the YAML document model and the four entry points.
package graphio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/temporal"
)

// document is the on-disk shape of a container.
type document struct {
	Directed   bool          `yaml:"directed"`
	Multigraph bool          `yaml:"multigraph"`
	Snapshots  []snapshotDoc `yaml:"snapshots"`
}

type snapshotDoc struct {
	Name  string    `yaml:"name"`
	Nodes []nodeDoc `yaml:"nodes,omitempty"`
	Edges []edgeDoc `yaml:"edges,omitempty"`
}

type nodeDoc struct {
	ID    string         `yaml:"id"`
	Attrs map[string]any `yaml:"attrs,omitempty"`
}

type edgeDoc struct {
	From  string         `yaml:"from"`
	To    string         `yaml:"to"`
	Attrs map[string]any `yaml:"attrs,omitempty"`
}

// Write encodes a container to w.
func Write(w io.Writer, tg *temporal.Graph) error {
	doc := document{
		Directed:   tg.Directed(),
		Multigraph: tg.Multigraph(),
	}
	names := tg.Names()
	for i, s := range tg.Snapshots() {
		sd := snapshotDoc{Name: names[i]}
		for _, id := range s.Nodes() {
			attrs, err := s.NodeAttrs(id)
			if err != nil {
				return fmt.Errorf("graphio: encode snapshot %q: %w", names[i], err)
			}
			nd := nodeDoc{ID: id}
			if len(attrs) > 0 {
				nd.Attrs = attrs
			}
			sd.Nodes = append(sd.Nodes, nd)
		}
		for _, e := range s.Edges() {
			ed := edgeDoc{From: e.From, To: e.To}
			if len(e.Attrs) > 0 {
				ed.Attrs = e.Attrs
			}
			sd.Edges = append(sd.Edges, ed)
		}
		doc.Snapshots = append(doc.Snapshots, sd)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// Read decodes a container from r.
func Read(r io.Reader) (*temporal.Graph, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	var tgOpts []temporal.Option
	var gOpts []core.Option
	if doc.Directed {
		tgOpts = append(tgOpts, temporal.WithDirected())
		gOpts = append(gOpts, core.WithDirected())
	}
	if doc.Multigraph {
		tgOpts = append(tgOpts, temporal.WithParallelEdges())
		gOpts = append(gOpts, core.WithParallelEdges())
	}
	tg := temporal.New(tgOpts...)

	for _, sd := range doc.Snapshots {
		s := core.New(gOpts...)
		for _, nd := range sd.Nodes {
			if err := s.PutNode(nd.ID, core.Attrs(nd.Attrs)); err != nil {
				return nil, fmt.Errorf("graphio: snapshot %q node %q: %w", sd.Name, nd.ID, err)
			}
		}
		for _, ed := range sd.Edges {
			if _, err := s.AddEdge(ed.From, ed.To, core.Attrs(ed.Attrs)); err != nil {
				return nil, fmt.Errorf("graphio: snapshot %q edge %s-%s: %w", sd.Name, ed.From, ed.To, err)
			}
		}
		if err := tg.Append(s, sd.Name); err != nil {
			return nil, fmt.Errorf("graphio: snapshot %q: %w", sd.Name, err)
		}
	}

	return tg, nil
}

// WriteFile encodes a container into the named file, replacing it.
func WriteFile(path string, tg *temporal.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()
	if err = Write(f, tg); err != nil {
		return err
	}

	return f.Close()
}

// ReadFile decodes a container from the named file.
func ReadFile(path string) (*temporal.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Read(f)
}
