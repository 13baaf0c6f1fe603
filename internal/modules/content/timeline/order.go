package timeline

import (
	"fmt"
	"strings"
)

// Direction of an adjacent move.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// ConflictError reports a reorder request that is not a permutation of the
// current collection. Failing closed keeps the display orders contiguous.
type ConflictError struct {
	Missing    []string // current members absent from the request
	Unexpected []string // request ids that are not current members
}

func (e *ConflictError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing ids: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected ids: "+strings.Join(e.Unexpected, ", "))
	}
	return fmt.Sprintf("reorder is not a permutation of the timeline (%s)", strings.Join(parts, "; "))
}

// NextOrder returns the display order for an appended item: one past the
// current maximum, or 0 for an empty collection.
func NextOrder(maxExisting int, empty bool) int {
	if empty {
		return 0
	}
	return maxExisting + 1
}

// MoveAdjacent returns the id sequence with the item at index swapped with
// its neighbour. Out-of-bounds moves return the sequence unchanged.
func MoveAdjacent(ids []string, index int, dir Direction) []string {
	target := index - 1
	if dir == MoveDown {
		target = index + 1
	}
	if index < 0 || index >= len(ids) || target < 0 || target >= len(ids) {
		return ids
	}
	out := make([]string, len(ids))
	copy(out, ids)
	out[index], out[target] = out[target], out[index]
	return out
}

// ReorderPlan maps every member id to its positional index in the desired
// ordering. The request must be an exact permutation of currentIDs;
// anything else returns a ConflictError naming the mismatched ids, so the
// post-call invariant "orders are exactly 0..n-1" always holds.
func ReorderPlan(currentIDs, orderedIDs []string) (map[string]int, error) {
	current := make(map[string]bool, len(currentIDs))
	for _, id := range currentIDs {
		current[id] = true
	}

	plan := make(map[string]int, len(orderedIDs))
	var unexpected []string
	for i, id := range orderedIDs {
		if _, dup := plan[id]; dup {
			unexpected = append(unexpected, id)
			continue
		}
		if !current[id] {
			unexpected = append(unexpected, id)
			continue
		}
		plan[id] = i
	}

	var missing []string
	for _, id := range currentIDs {
		if _, ok := plan[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 || len(unexpected) > 0 {
		return nil, &ConflictError{Missing: missing, Unexpected: unexpected}
	}
	return plan, nil
}
