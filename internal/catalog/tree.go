// Package catalog builds the category forest from flat records and
// answers the tree queries the storefront and admin pickers need.
package catalog

import (
	"fmt"

	"dunestore/internal/domain"
)

// Node is one placed category with its resolved children.
type Node struct {
	Category domain.Category
	Children []*Node
}

// Forest is the built category hierarchy. Issues collects integrity
// problems found while building: parent references to unknown
// categories and parent chains that loop back on themselves. Offending
// links are ignored rather than followed, so building always
// terminates.
type Forest struct {
	Roots  []*Node
	Issues []string
}

// Build constructs the forest from a flat record list. Nodes are
// allocated once into an arena keyed by id and attached top-down from
// the roots; a node already placed is never placed again, which turns
// a cyclic parent chain into a reported issue instead of unbounded
// recursion.
func Build(cats []domain.Category) Forest {
	arena := make(map[string]*Node, len(cats))
	order := make([]string, 0, len(cats))
	for _, c := range cats {
		if _, dup := arena[c.ID]; dup {
			continue
		}
		arena[c.ID] = &Node{Category: c}
		order = append(order, c.ID)
	}

	childIDs := make(map[string][]string)
	var f Forest
	placed := make(map[string]bool, len(cats))

	for _, id := range order {
		n := arena[id]
		pid := n.Category.ParentID
		if pid == nil || *pid == "" {
			continue
		}
		if _, ok := arena[*pid]; !ok {
			f.Issues = append(f.Issues, fmt.Sprintf("category %q references missing parent %q", id, *pid))
			continue
		}
		childIDs[*pid] = append(childIDs[*pid], id)
	}

	var attach func(n *Node)
	attach = func(n *Node) {
		for _, cid := range childIDs[n.Category.ID] {
			if placed[cid] {
				f.Issues = append(f.Issues, fmt.Sprintf("category %q revisited; parent chain ignored", cid))
				continue
			}
			child := arena[cid]
			placed[cid] = true
			n.Children = append(n.Children, child)
			attach(child)
		}
	}

	for _, id := range order {
		n := arena[id]
		if pid := n.Category.ParentID; pid == nil || *pid == "" {
			if placed[id] {
				continue
			}
			placed[id] = true
			f.Roots = append(f.Roots, n)
			attach(n)
		}
	}

	// Anything still unplaced sits on a chain that never reaches a
	// root: either a cycle or a descendant of a dangling parent.
	for _, id := range order {
		if !placed[id] {
			f.Issues = append(f.Issues, fmt.Sprintf("category %q unreachable from any root", id))
		}
	}
	return f
}

// NamesInScope returns the names of the category called target plus
// every transitive descendant, for expanding a category filter to its
// whole subtree. An empty target yields an empty set.
func (f Forest) NamesInScope(target string) map[string]struct{} {
	out := make(map[string]struct{})
	if target == "" {
		return out
	}
	node := f.findByName(target)
	if node == nil {
		return out
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		out[n.Category.Name] = struct{}{}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(node)
	return out
}

func (f Forest) findByName(name string) *Node {
	var dfs func(n *Node) *Node
	dfs = func(n *Node) *Node {
		if n.Category.Name == name {
			return n
		}
		for _, c := range n.Children {
			if hit := dfs(c); hit != nil {
				return hit
			}
		}
		return nil
	}
	for _, r := range f.Roots {
		if hit := dfs(r); hit != nil {
			return hit
		}
	}
	return nil
}

// IndentedCategory is one row of the flattened picker list.
type IndentedCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// FlattenIndented emits the forest in pre-order with each node's
// depth, so flat select UIs can convey hierarchy by indentation. A
// parent is immediately followed by all of its descendants before any
// sibling.
func (f Forest) FlattenIndented() []IndentedCategory {
	var out []IndentedCategory
	var walk func(n *Node, level int)
	walk = func(n *Node, level int) {
		out = append(out, IndentedCategory{ID: n.Category.ID, Name: n.Category.Name, Level: level})
		for _, c := range n.Children {
			walk(c, level+1)
		}
	}
	for _, r := range f.Roots {
		walk(r, 0)
	}
	return out
}
