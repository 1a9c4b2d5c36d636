package planner

import (
	"sort"

	"github.com/cognitask/cognitask/models"
)

// Node is one task in a reconstructed hierarchy.
type Node struct {
	Task     models.Task
	Children []*Node
}

// BuildForest reconstructs the parent/child hierarchy from a flat task
// slice. Roots keep the order of the input; children are sorted oldest
// first. A task whose parent is absent from the input is promoted to a
// root so it never disappears from the view.
func BuildForest(tasks []models.Task) []*Node {
	present := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		present[t.ID] = true
	}

	children := make(map[string][]models.Task)
	var roots []models.Task
	for _, t := range tasks {
		if t.ParentID != nil && present[*t.ParentID] {
			children[*t.ParentID] = append(children[*t.ParentID], t)
			continue
		}
		roots = append(roots, t)
	}
	for id := range children {
		sort.SliceStable(children[id], func(i, j int) bool {
			return children[id][i].CreatedAt.Before(children[id][j].CreatedAt)
		})
	}

	var build func(t models.Task) *Node
	build = func(t models.Task) *Node {
		n := &Node{Task: t}
		for _, c := range children[t.ID] {
			n.Children = append(n.Children, build(c))
		}
		return n
	}

	forest := make([]*Node, 0, len(roots))
	for _, r := range roots {
		forest = append(forest, build(r))
	}
	return forest
}
