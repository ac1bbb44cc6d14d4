// Copyright 2020-2026 The Cocktail Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parsetree stores a parse tree as a flat, post-order array: every
// node knows only the size of its own subtree, and parent/child/sibling
// relationships are all recovered by walking backward through that size,
// rather than by storing explicit pointers.
//
// A tree is built bottom-up, the same order a recursive-descent or
// Pratt parser naturally produces it in: children are appended before the
// node that encloses them, and AddNode is told how many of the
// most-recently-appended top-level subtrees it encloses.
package parsetree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TuringQ-Infra/cocktail-lang/internal/arena"
	"github.com/TuringQ-Infra/cocktail-lang/token"
)

// Node is a single entry in a [Tree]. K is the language's node-kind
// enumeration; Tree never interprets Kind itself, only stores and walks it.
type Node[K fmt.Stringer] struct {
	Kind  K
	Token int // index into the Tree's token.Stream

	// subtreeSize is the number of nodes in this node's subtree, including
	// itself. It is the only piece of structural information a Node
	// carries: everything else (children, parent, siblings) is recovered
	// from it during a walk.
	subtreeSize int

	// hasError records that this node was produced while recovering from a
	// syntax error. It never stops the tree from being built or walked; it
	// is only a signal consumers can use to tell a best-effort node from a
	// clean one.
	hasError bool
}

// HasError reports whether n was parsed with an error.
func (n Node[K]) HasError() bool {
	return n.hasError
}

// Text returns the source text of this node's token, as reported by stream.
func (n Node[K]) Text(stream token.Stream) string {
	return stream.Text(n.Token)
}

// Index identifies a node by its position in post-order: nodes are numbered
// 0, 1, 2, ... in the order they were appended, which is also the order a
// full post-order traversal visits them in.
type Index int

// Tree is an append-only store of [Node] values, addressable by [Index] in
// post-order, and a borrowed [token.Stream] used only to render Text.
//
// The zero Tree is empty and ready to use.
type Tree[K fmt.Stringer] struct {
	nodes  arena.Arena[Node[K]]
	stream token.Stream

	// hasErrors is set the moment any node is added with hasError set, and
	// is the single flag consumers check before trusting the tree is
	// error-free, rather than walking every node to find out.
	hasErrors bool
}

// New creates a Tree backed by the given token stream, used to resolve node
// text for printing. stream may be nil if the tree will never be printed.
func New[K fmt.Stringer](stream token.Stream) *Tree[K] {
	return &Tree[K]{stream: stream}
}

// Len returns the number of nodes in the tree.
func (t *Tree[K]) Len() int {
	return t.nodes.Len()
}

func (t *Tree[K]) at(i Index) *Node[K] {
	return t.nodes.At(arena.Untyped(i) + 1)
}

// At returns a copy of the node at index i. It panics if i is out of range.
func (t *Tree[K]) At(i Index) Node[K] {
	return *t.at(i)
}

// HasErrors reports whether any node in the tree was added with hasError
// set.
func (t *Tree[K]) HasErrors() bool {
	return t.hasErrors
}

// AddLeaf appends a childless node and returns its index. hasError marks the
// node (and the whole tree, via [Tree.HasErrors]) as having been produced
// while recovering from a syntax error.
func (t *Tree[K]) AddLeaf(kind K, tok int, hasError bool) Index {
	t.nodes.New(Node[K]{Kind: kind, Token: tok, subtreeSize: 1, hasError: hasError})
	t.hasErrors = t.hasErrors || hasError
	return Index(t.nodes.Len() - 1)
}

// AddNode appends an interior node enclosing the childCount top-level
// subtrees most recently appended (which must not already be enclosed by
// another node), and returns its index. hasError marks the node itself (not
// its children) as having been produced while recovering from a syntax
// error; see [Tree.AddLeaf].
//
// For example, after appending leaves a, b, c in that order,
// AddNode(kind, tok, 2, false) encloses b and c, leaving a as a sibling
// subtree rather than a child.
func (t *Tree[K]) AddNode(kind K, tok int, childCount int, hasError bool) Index {
	size := 1
	cursor := t.nodes.Len() - 1
	for i := 0; i < childCount; i++ {
		child := t.at(Index(cursor))
		size += child.subtreeSize
		cursor -= child.subtreeSize
	}

	t.nodes.New(Node[K]{Kind: kind, Token: tok, subtreeSize: size, hasError: hasError})
	t.hasErrors = t.hasErrors || hasError
	return Index(t.nodes.Len() - 1)
}

// Postorder returns every node index in post-order (a child always precedes
// the node that encloses it).
func (t *Tree[K]) Postorder() []Index {
	indices := make([]Index, t.nodes.Len())
	for i := range indices {
		indices[i] = Index(i)
	}
	return indices
}

// PostorderFrom returns the post-order indices of the subtree rooted at i,
// namely [i-subtreeSize+1, i], in ascending (post-order) order. It has
// exactly as many elements as the subtree's size.
func (t *Tree[K]) PostorderFrom(i Index) []Index {
	node := t.at(i)
	lo := int(i) - node.subtreeSize + 1

	indices := make([]Index, node.subtreeSize)
	for j := range indices {
		indices[j] = Index(lo + j)
	}
	return indices
}

// Children returns the direct children of the node at i, in reverse source
// order (right to left) — the order the sibling jump-back walk starting at
// i-1 naturally produces them in.
func (t *Tree[K]) Children(i Index) []Index {
	node := t.at(i)
	lo := int(i) - node.subtreeSize + 1

	var children []Index
	for cursor := int(i) - 1; cursor >= lo; {
		children = append(children, Index(cursor))
		cursor -= t.at(Index(cursor)).subtreeSize
	}
	return children
}

// Roots returns the top-level nodes of the tree (those with no enclosing
// node), in reverse source order (right to left); see [Tree.Children].
func (t *Tree[K]) Roots() []Index {
	var roots []Index
	for cursor := t.nodes.Len() - 1; cursor >= 0; {
		roots = append(roots, Index(cursor))
		cursor -= t.at(Index(cursor)).subtreeSize
	}
	return roots
}

// Verify checks the tree's structural invariant by walking it in reverse
// post-order while maintaining a stack of the ancestors still open at the
// current position. For each node:
//   - if it is marked has_error but the tree's HasErrors is clear, the tree
//     is inconsistent;
//   - if its subtree has two or more nodes, its subtree must not extend past
//     its open parent's (the top of the stack), and it is then pushed as the
//     new innermost open ancestor;
//   - if it is a leaf, any ancestors whose subtree starts exactly where this
//     leaf ends are now fully covered and are popped;
//   - a subtree size less than one is always invalid.
//
// After the walk the ancestor stack must be empty, meaning every open
// subtree was eventually closed by reaching its first element. Verify
// returns false and a description of the first inconsistency found,
// otherwise true.
func (t *Tree[K]) Verify() (bool, string) {
	type ancestor struct {
		index    Index
		boundary int // terminator of this ancestor's sibling walk: one before its first descendant
	}
	var open []ancestor

	for i := t.nodes.Len() - 1; i >= 0; i-- {
		node := t.at(Index(i))
		if node.hasError && !t.hasErrors {
			return false, fmt.Sprintf("node %d is marked has_error but the tree's has_errors flag is clear", i)
		}

		switch {
		case node.subtreeSize < 1:
			return false, fmt.Sprintf("node %d has an invalid subtree size %d", i, node.subtreeSize)

		case node.subtreeSize >= 2:
			boundary := i - node.subtreeSize
			if len(open) > 0 && boundary < open[len(open)-1].boundary {
				return false, fmt.Sprintf("node %d's subtree extends past its parent's subtree", i)
			}
			open = append(open, ancestor{index: Index(i), boundary: boundary})

		default: // subtreeSize == 1: a leaf
			nextIndex := i - 1
			for len(open) > 0 && open[len(open)-1].boundary == nextIndex {
				open = open[:len(open)-1]
			}
		}
	}

	if len(open) != 0 {
		return false, "the tree's roots do not exactly cover every node"
	}

	return true, ""
}

// Fprint writes the tree to w in the stable, diff-friendly format other
// tooling parses: a root-level `[`/`]` pair wrapping one node per line,
// depth-first pre-order within each root, each line two spaces further
// indented per depth and of the form
//
//	{node_index: <int>, kind: '<name>', text: '<token-text>'[, has_error: yes][, subtree_size: <N>, children: [
//
// with interior nodes recursing into their children and closing with `]}`,
// and every node's line ending in a trailing comma. Both the trailing comma
// and the `]}` closing convention are part of the format, not incidental
// whitespace: callers diff this output across runs.
//
// Children and roots are walked in source order (left to right) here, even
// though [Tree.Children] and [Tree.Roots] themselves hand back the reverse;
// this only reorders the recursion, it does not change what either method
// returns.
func (t *Tree[K]) Fprint(w io.Writer) {
	fmt.Fprintln(w, "[")
	roots := t.Roots()
	for i := len(roots) - 1; i >= 0; i-- {
		t.fprintNode(w, roots[i], 1)
	}
	fmt.Fprintln(w, "]")
}

func (t *Tree[K]) fprintNode(w io.Writer, i Index, depth int) {
	node := t.at(i)
	indent := strings.Repeat("  ", depth)

	text := ""
	if t.stream != nil {
		text = node.Text(t.stream)
	}
	fmt.Fprintf(w, "%s{node_index: %d, kind: '%v', text: '%s'", indent, int(i), node.Kind, text)
	if node.hasError {
		io.WriteString(w, ", has_error: yes") //nolint:errcheck // bytes.Buffer/os.File writes in this package never fail
	}

	children := t.Children(i)
	if len(children) == 0 {
		fmt.Fprintln(w, "},")
		return
	}

	fmt.Fprintf(w, ", subtree_size: %d, children: [\n", node.subtreeSize)
	for j := len(children) - 1; j >= 0; j-- {
		t.fprintNode(w, children[j], depth+1)
	}
	fmt.Fprintf(w, "%s]},\n", indent)
}

// Print writes the tree's dump (see [Tree.Fprint]) to stdout.
func (t *Tree[K]) Print() {
	t.Fprint(os.Stdout)
}
