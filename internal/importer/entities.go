package importer

import (
	"parklegacy.dev/internal/s6"
	"parklegacy.dev/internal/world"
)

// reconcileEntities copies the legacy sprite array verbatim, frees the pool
// slots the legacy format cannot express, and indexes the quadrant chains
// the records carry. The destination free count grows by exactly the
// capacity delta. Quadrant links are taken as recorded; the cycle repair
// passes run afterwards.
func (im *Importer) reconcileEntities(d *s6.Data, w *world.World) {
	pool := &w.Entities

	for i := 0; i < s6.MaxSprites; i++ {
		copy(pool.Entities[i][:], d.Sprites[i][:])
	}
	for i := range d.SpriteListsHead {
		pool.ListHead[i] = d.SpriteListsHead[i]
		pool.ListCount[i] = d.SpriteListsCount[i]
	}

	// Slots beyond the legacy capacity join the head of the free list.
	for i := s6.MaxSprites; i < world.MaxEntities; i++ {
		e := &pool.Entities[i]
		e.MarkFree(uint16(i))
		e.SetNext(pool.ListHead[world.EntityListNull])
		pool.ListHead[world.EntityListNull] = uint16(i)
	}
	pool.ListCount[world.EntityListNull] += world.MaxEntities - s6.MaxSprites

	pool.IndexQuadrantChains()
}
