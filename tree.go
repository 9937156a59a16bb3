package huffzip

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// nodeIndex addresses a node within a tree's arena.
type nodeIndex int32

const noNode = nodeIndex(-1)

// node is either a leaf {symbol, weight} or an internal node {weight, left,
// right}.  Internal nodes built by the decoder may be missing a child when
// the code is incomplete.
type node struct {
	weight uint64
	left   nodeIndex
	right  nodeIndex
	symbol Symbol
	leaf   bool
}

func (n *node) child(bit uint32) nodeIndex {
	if bit == 0 {
		return n.left
	}
	return n.right
}

// tree is a binary tree stored as an arena of nodes.  Every node except the
// root has exactly one parent, so dropping the arena frees the whole tree.
//
// Nodes are appended in creation order, which makes a node's index its
// insertion sequence number as far as nodeQueue is concerned.
type tree struct {
	nodes    []node
	root     nodeIndex
	weighted bool
}

func newTree(capacity int, weighted bool) *tree {
	return &tree{
		nodes:    make([]node, 0, capacity),
		root:     noNode,
		weighted: weighted,
	}
}

func (t *tree) addLeaf(symbol Symbol, weight uint64) nodeIndex {
	t.nodes = append(t.nodes, node{
		weight: weight,
		left:   noNode,
		right:  noNode,
		symbol: symbol,
		leaf:   true,
	})
	return nodeIndex(len(t.nodes) - 1)
}

func (t *tree) addInternal(left, right nodeIndex) nodeIndex {
	lw := t.nodes[left].weight
	rw := t.nodes[right].weight
	sum := lw + rw
	assert.Assertf(sum >= lw, "node weight overflow: %d + %d", lw, rw)
	t.nodes = append(t.nodes, node{
		weight: sum,
		left:   left,
		right:  right,
	})
	return nodeIndex(len(t.nodes) - 1)
}

// addEmpty appends an internal node with no children yet.
func (t *tree) addEmpty() nodeIndex {
	t.nodes = append(t.nodes, node{left: noNode, right: noNode})
	return nodeIndex(len(t.nodes) - 1)
}

// buildTree constructs a Huffman tree from the given frequencies, which must
// contain at least one present symbol.
//
// Leaves are inserted in ascending symbol order.  The queue breaks weight
// ties by insertion order, so the same frequencies always produce the same
// tree.
func buildTree(ft *FrequencyTable) (*tree, error) {
	symbolCount := ft.SymbolCount()
	assert.Assertf(symbolCount >= 1, "buildTree called with %d symbols", symbolCount)

	capacity := nodeCapacity(symbolCount)
	t := newTree(capacity, true)
	q := newNodeQueue(t, capacity)

	for symbol, count := range ft {
		if count == 0 {
			continue
		}
		if err := q.push(t.addLeaf(Symbol(symbol), count)); err != nil {
			return nil, err
		}
	}

	for q.Len() > 1 {
		a := q.pop()
		b := q.pop()
		if err := q.push(t.addInternal(a, b)); err != nil {
			return nil, err
		}
	}

	t.root = q.pop()
	return t, nil
}

// buildDecodeTree constructs a fresh tree from a table of codes by walking
// each code's bits from the first to the last, creating internal nodes on
// demand and placing the symbol at the final node reached.
func buildDecodeTree(table CodeTable) (*tree, error) {
	t := newTree(2*len(table)+1, false)
	t.root = t.addEmpty()

	for _, hc := range table {
		assert.Assertf(hc.Size >= 1 && hc.Size <= MaxCodeSize, "code for %s has size %d", hc.Symbol, hc.Size)

		cur := t.root
		for i := byte(0); i < hc.Size; i++ {
			if t.nodes[cur].leaf {
				return nil, fmt.Errorf("%w: code %s for %s passes through the code for %s", ErrMalformedHeader, hc, hc.Symbol, t.nodes[cur].symbol)
			}
			bit := hc.Bit(i)
			next := t.nodes[cur].child(bit)
			if next == noNode {
				next = t.addEmpty()
				if bit == 0 {
					t.nodes[cur].left = next
				} else {
					t.nodes[cur].right = next
				}
			}
			cur = next
		}

		n := &t.nodes[cur]
		if n.leaf {
			return nil, fmt.Errorf("%w: code %s is shared by %s and %s", ErrMalformedHeader, hc, n.symbol, hc.Symbol)
		}
		if n.left != noNode || n.right != noNode {
			return nil, fmt.Errorf("%w: code %s for %s is a prefix of another code", ErrMalformedHeader, hc, hc.Symbol)
		}
		n.symbol = hc.Symbol
		n.leaf = true
	}

	return t, nil
}

// Dump writes a programmer-readable, indented rendition of the tree to the
// given writer.  The walk is iterative, so deep trees are fine.
func (t *tree) Dump(w io.Writer) (int64, error) {
	type stackItem struct {
		i     nodeIndex
		depth int
	}

	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if t.root != noNode {
		stack := []stackItem{{t.root, 0}}
		for len(stack) != 0 {
			item := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n := &t.nodes[item.i]
			buf.WriteByte('\t')
			buf.WriteString(strings.Repeat("  ", item.depth))
			switch {
			case n.leaf && t.weighted:
				fmt.Fprintf(&buf, "(%s: %d)\n", n.symbol, n.weight)
			case n.leaf:
				fmt.Fprintf(&buf, "(%s)\n", n.symbol)
			case t.weighted:
				fmt.Fprintf(&buf, "(%d)\n", n.weight)
			default:
				buf.WriteString("()\n")
			}

			if n.right != noNode {
				stack = append(stack, stackItem{n.right, item.depth + 1})
			}
			if n.left != noNode {
				stack = append(stack, stackItem{n.left, item.depth + 1})
			}
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
