package pathfind

import "github.com/lixenwraith/neon-maze/maze"

// heapNode pairs a frontier cell with its f-score.
type heapNode struct {
	cell   maze.Cell
	fScore int
}

// cellHeap is an inline binary min-heap on fScore. Avoids the interface
// indirection of container/heap on the pathfinding hot path.
type cellHeap struct {
	nodes []heapNode
}

func newCellHeap(capacity int) *cellHeap {
	return &cellHeap{nodes: make([]heapNode, 0, capacity)}
}

func (h *cellHeap) len() int {
	return len(h.nodes)
}

func (h *cellHeap) push(n heapNode) {
	h.nodes = append(h.nodes, n)
	h.siftUp(len(h.nodes) - 1)
}

func (h *cellHeap) pop() heapNode {
	top := h.nodes[0]
	last := len(h.nodes) - 1
	h.nodes[0] = h.nodes[last]
	h.nodes = h.nodes[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return top
}

func (h *cellHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.nodes[parent].fScore <= h.nodes[i].fScore {
			break
		}
		h.nodes[parent], h.nodes[i] = h.nodes[i], h.nodes[parent]
		i = parent
	}
}

func (h *cellHeap) siftDown(i int) {
	n := len(h.nodes)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.nodes[left].fScore < h.nodes[smallest].fScore {
			smallest = left
		}
		if right < n && h.nodes[right].fScore < h.nodes[smallest].fScore {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.nodes[i], h.nodes[smallest] = h.nodes[smallest], h.nodes[i]
		i = smallest
	}
}
