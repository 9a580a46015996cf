// Package temporal: aggregate queries over the snapshot sequence.
//
// Three counting regimes coexist:
//   - per-snapshot:  Order() / Size() return one count per time step;
//   - temporal:      TemporalOrder() / TemporalSize() deduplicate node and
//     edge identities across the whole sequence;
//   - total:         TotalOrder() / TotalSize() sum per-snapshot counts
//     including duplicates.
package temporal

// Order returns the node count of each snapshot, in order. Complexity: O(T).
func (tg *Graph) Order() []int {
	out := make([]int, len(tg.snapshots))
	for i, s := range tg.snapshots {
		out[i] = s.Order()
	}

	return out
}

// Size returns the edge count of each snapshot, in order. Complexity: O(T).
func (tg *Graph) Size() []int {
	out := make([]int, len(tg.snapshots))
	for i, s := range tg.snapshots {
		out[i] = s.Size()
	}

	return out
}

// TemporalNodes returns every node ID appearing in at least one snapshot,
// deduplicated, in first-appearance order across the sequence.
// Complexity: O(ΣV).
func (tg *Graph) TemporalNodes() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range tg.snapshots {
		for _, id := range s.Nodes() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}

// TemporalEdges returns every (source, target) pair appearing in at least
// one snapshot, deduplicated, in first-appearance order. Undirected pairs
// are normalized so (b, a) and (a, b) count once. Complexity: O(ΣE).
func (tg *Graph) TemporalEdges() [][2]string {
	seen := make(map[[2]string]struct{})
	var out [][2]string
	for _, s := range tg.snapshots {
		for _, e := range s.Edges() {
			k := [2]string{e.From, e.To}
			if !tg.directed && k[1] < k[0] {
				k[0], k[1] = k[1], k[0]
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, [2]string{e.From, e.To})
		}
	}

	return out
}

// TemporalOrder returns the number of distinct temporal nodes.
func (tg *Graph) TemporalOrder() int { return len(tg.TemporalNodes()) }

// TemporalSize returns the number of distinct temporal edges.
func (tg *Graph) TemporalSize() int { return len(tg.TemporalEdges()) }

// TotalOrder returns the sum of snapshot node counts, duplicates included.
func (tg *Graph) TotalOrder() int {
	total := 0
	for _, s := range tg.snapshots {
		total += s.Order()
	}

	return total
}

// TotalSize returns the sum of snapshot edge counts, duplicates included.
func (tg *Graph) TotalSize() int {
	total := 0
	for _, s := range tg.snapshots {
		total += s.Size()
	}

	return total
}

// Degree returns the degree of a node in each snapshot, 0 where the node
// is absent. Complexity: O(ΣE).
func (tg *Graph) Degree(id string) []int {
	out := make([]int, len(tg.snapshots))
	for i, s := range tg.snapshots {
		if !s.HasNode(id) {
			continue
		}
		d, err := s.Degree(id)
		if err == nil {
			out[i] = d
		}
	}

	return out
}

// TotalDegree returns the node's degree summed over all snapshots.
func (tg *Graph) TotalDegree(id string) int {
	total := 0
	for _, d := range tg.Degree(id) {
		total += d
	}

	return total
}
