package physics

import "github.com/ormakov/roidfield/internal/core"

// Collidable is a per-tick snapshot of a collidable entity: its handle,
// post-integration position, and circular collision radius.
type Collidable struct {
	ID     EntityID
	Pos    core.Vec2
	Radius float64
}

// CollisionPair reports that two distinct entities overlapped this tick.
// Each unordered pair appears at most once per tick.
type CollisionPair struct {
	A, B EntityID
}

// DetectCollisions runs the full O(n²) pairwise scan and returns this
// tick's collision pairs. Pure function: the input is not mutated.
//
// The overlap test is distance(a, b) < a.Radius, only the testing
// entity's radius, not the sum of radii. Combined with the dedup rule
// below, a pair recorded from one side can suppress the test the other
// side would have made with its own radius. Gameplay tuning depends on
// both behaviors; do not "fix" them to summed-radius detection.
//
// Pair output order follows input order. Callers must not depend on it.
func DetectCollisions(items []Collidable) []CollisionPair {
	hits := make(map[EntityID][]EntityID, len(items))

	for _, a := range items {
		if _, ok := hits[a.ID]; !ok {
			hits[a.ID] = nil
		}

		for _, b := range items {
			// Don't collide with self
			if a.ID == b.ID {
				continue
			}

			if a.Pos.Distance(b.Pos) < a.Radius {
				// Skip if B already recorded this overlap against A.
				// Only already-visited entities have entries, so the
				// check is order dependent.
				if recorded, ok := hits[b.ID]; ok && contains(recorded, a.ID) {
					continue
				}
				hits[a.ID] = append(hits[a.ID], b.ID)
			}
		}
	}

	var pairs []CollisionPair
	for _, a := range items {
		for _, other := range hits[a.ID] {
			pairs = append(pairs, CollisionPair{A: a.ID, B: other})
		}
	}
	return pairs
}

func contains(ids []EntityID, id EntityID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
