package dataset

import (
	"fmt"
	"sort"
)

type LineageDirection string

func (dir LineageDirection) IsValid() bool {
	switch dir {
	case LineageDirectionUpstream, LineageDirectionDownstream:
		return true
	default:
		return false
	}
}

const (
	LineageDirectionUpstream   LineageDirection = "upstream"
	LineageDirectionDownstream LineageDirection = "downstream"
)

type LineageEdge struct {
	// Source is the parent dataset's ID
	Source string `json:"source"`

	// Target is the derived dataset's ID
	Target string `json:"target"`
}

// LineageNode is a dataset together with the datasets derived from it.
type LineageNode struct {
	Dataset  Dataset
	Children []*LineageNode
}

// Graph returns one edge per dataset whose parent is also in the catalog.
func (c Catalog) Graph() []LineageEdge {
	ids := newUniqueStrings(len(c.items))
	for _, d := range c.items {
		ids.add(d.ID)
	}

	var edges []LineageEdge
	for _, d := range c.items {
		if p := d.ParentID(); p != "" && ids.has(p) {
			edges = append(edges, LineageEdge{Source: p, Target: d.ID})
		}
	}
	return edges
}

// Lineage arranges the catalog into a forest. Datasets whose parent is not
// in the catalog are roots. Roots and children are sorted by ID.
func (c Catalog) Lineage() []*LineageNode {
	nodes := make(map[string]*LineageNode, len(c.items))
	order := make([]*LineageNode, 0, len(c.items))
	for _, d := range c.items {
		n := &LineageNode{Dataset: d}
		nodes[d.ID] = n
		order = append(order, n)
	}

	var roots []*LineageNode
	for _, n := range order {
		if nodes[n.Dataset.ID] != n {
			// shadowed by a later record with the same ID
			continue
		}
		if parent, ok := nodes[n.Dataset.ParentID()]; ok && parent != n {
			parent.Children = append(parent.Children, n)
			continue
		}
		roots = append(roots, n)
	}

	sortNodes(roots)
	return roots
}

func sortNodes(nodes []*LineageNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Dataset.ID < nodes[j].Dataset.ID
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}

// Upstream returns the ancestors of the dataset with the given ID, nearest
// first. The walk stops at a parent missing from the catalog.
func (c Catalog) Upstream(id string) []Dataset {
	var out []Dataset
	seen := newUniqueStrings(0)
	seen.add(id)

	current, ok := c.FindByID(id)
	for ok {
		parentID := current.ParentID()
		if parentID == "" || seen.has(parentID) {
			break
		}
		seen.add(parentID)

		current, ok = c.FindByID(parentID)
		if ok {
			out = append(out, current)
		}
	}
	return out
}

// Downstream returns every dataset derived directly or transitively from the
// dataset with the given ID, breadth first with siblings sorted by ID.
func (c Catalog) Downstream(id string) []Dataset {
	children := make(map[string][]Dataset)
	for _, d := range c.items {
		if p := d.ParentID(); p != "" {
			children[p] = append(children[p], d)
		}
	}
	for _, cs := range children {
		sort.SliceStable(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
	}

	var out []Dataset
	seen := newUniqueStrings(0)
	seen.add(id)
	queue := []string{id}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, d := range children[next] {
			if seen.has(d.ID) {
				continue
			}
			seen.add(d.ID)
			out = append(out, d)
			queue = append(queue, d.ID)
		}
	}
	return out
}

// LineageOf returns the upstream or downstream datasets of id.
func (c Catalog) LineageOf(id string, dir LineageDirection) ([]Dataset, error) {
	if !dir.IsValid() {
		return nil, fmt.Errorf("invalid lineage direction %q", dir)
	}
	if _, ok := c.FindByID(id); !ok {
		return nil, NotFoundError{ID: id}
	}

	if dir == LineageDirectionUpstream {
		return c.Upstream(id), nil
	}
	return c.Downstream(id), nil
}
