package importer

import "parklegacy.dev/internal/world"

// repairFreeListCycles walks the null-entity list and cuts any link that
// revisits a record or escapes the pool. Returns the number of links cut.
// Legacy saves are known to ship with corrupted free lists; the import
// continues on a repaired, acyclic list.
func repairFreeListCycles(pool *world.EntityPool) int {
	repaired := 0
	var seen [world.MaxEntities]bool

	cur := pool.ListHead[world.EntityListNull]
	if cur != world.NullEntityIndex && int(cur) >= world.MaxEntities {
		pool.ListHead[world.EntityListNull] = world.NullEntityIndex
		return 1
	}
	var prev uint16 = world.NullEntityIndex
	for cur != world.NullEntityIndex {
		if seen[cur] {
			pool.Entities[prev].SetNext(world.NullEntityIndex)
			repaired++
			break
		}
		seen[cur] = true
		next := pool.Entities[cur].Next()
		if next != world.NullEntityIndex && int(next) >= world.MaxEntities {
			pool.Entities[cur].SetNext(world.NullEntityIndex)
			repaired++
			break
		}
		prev, cur = cur, next
	}
	return repaired
}

// repairSpatialCycles does the same for every bucket of the spatial index,
// following the in-quadrant links. A record may legitimately appear in only
// one bucket, so the visited set spans the whole pass.
func repairSpatialCycles(pool *world.EntityPool) int {
	repaired := 0
	var seen [world.MaxEntities]bool

	for b := range pool.SpatialIndex {
		cur := pool.SpatialIndex[b]
		if cur != world.NullEntityIndex && int(cur) >= world.MaxEntities {
			pool.SpatialIndex[b] = world.NullEntityIndex
			repaired++
			continue
		}
		var prev uint16 = world.NullEntityIndex
		for cur != world.NullEntityIndex {
			if seen[cur] {
				if prev == world.NullEntityIndex {
					pool.SpatialIndex[b] = world.NullEntityIndex
				} else {
					pool.Entities[prev].SetNextInQuadrant(world.NullEntityIndex)
				}
				repaired++
				break
			}
			seen[cur] = true
			next := pool.Entities[cur].NextInQuadrant()
			if next != world.NullEntityIndex && int(next) >= world.MaxEntities {
				pool.Entities[cur].SetNextInQuadrant(world.NullEntityIndex)
				repaired++
				break
			}
			prev, cur = cur, next
		}
	}
	return repaired
}

// countDisjointEntities reports records reachable from none of the entity
// lists. Disjoint records are harmless leaks, so they are only counted.
func countDisjointEntities(pool *world.EntityPool) int {
	var reachable [world.MaxEntities]bool
	for list := 0; list < world.NumEntityLists; list++ {
		cur := pool.ListHead[list]
		steps := 0
		for cur != world.NullEntityIndex && int(cur) < world.MaxEntities && steps < world.MaxEntities {
			if reachable[cur] {
				break
			}
			reachable[cur] = true
			cur = pool.Entities[cur].Next()
			steps++
		}
	}
	disjoint := 0
	for i := range pool.Entities {
		if !reachable[i] {
			disjoint++
		}
	}
	return disjoint
}
