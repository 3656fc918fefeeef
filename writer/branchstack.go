package writer

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/fine-structures/wln/graph"
)

// branchStack tracks the open multi-valent symbols the DFS transcriber
// (spec §4.6) still owes a closing '&' to. It's a thin graph.SymbolID
// wrapper over gods/stacks/arraystack -- the named-container idiom the
// teacher reaches for over a raw slice-as-stack (spec §10).
type branchStack struct {
	s *arraystack.Stack
}

func newBranchStack() *branchStack {
	return &branchStack{s: arraystack.New()}
}

func (b *branchStack) push(id graph.SymbolID) { b.s.Push(id) }

func (b *branchStack) pop() (graph.SymbolID, bool) {
	v, ok := b.s.Pop()
	if !ok {
		return 0, false
	}
	return v.(graph.SymbolID), true
}

func (b *branchStack) peek() (graph.SymbolID, bool) {
	v, ok := b.s.Peek()
	if !ok {
		return 0, false
	}
	return v.(graph.SymbolID), true
}

func (b *branchStack) empty() bool { return b.s.Empty() }
