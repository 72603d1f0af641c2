package world

import "encoding/binary"

// Entity capacities. The pool is larger than the legacy save format's 10000
// records; imports free-fill the slots beyond what the source provides.
const (
	MaxEntities      = 10240
	EntityRecordSize = 256
	NumEntityLists   = 6

	// EntityListNull is the list collecting free records.
	EntityListNull = 0

	NullEntityIndex = 0xFFFF
)

// Entity identifier tags, stored in the record's first byte.
const (
	EntityVehicle = 0
	EntityPeep    = 1
	EntityMisc    = 2
	EntityLitter  = 3
	EntityNull    = 0xFF
)

// Peep states consulted when recounting riders.
const (
	PeepStateEnteringRide = 4
	PeepStateOnRide       = 5
)

// Entity is one 256-byte record, kept in the legacy layout. Accessors read
// and write the handful of fields the importer and its structural repairs
// touch; everything else passes through untouched.
type Entity [EntityRecordSize]byte

const (
	entityOffIdentifier     = 0x00
	entityOffNextInQuadrant = 0x02
	entityOffNext           = 0x04
	entityOffPrevious       = 0x06
	entityOffListOffset     = 0x08
	entityOffIndex          = 0x0A
	entityOffX              = 0x0E
	entityOffY              = 0x10
	entityOffZ              = 0x12
	entityOffPeepState      = 0x2F
	entityOffPeepRide       = 0x30
)

func (e *Entity) Identifier() uint8 { return e[entityOffIdentifier] }
func (e *Entity) IsNull() bool      { return e[entityOffIdentifier] == EntityNull }

func (e *Entity) Index() uint16    { return binary.LittleEndian.Uint16(e[entityOffIndex:]) }
func (e *Entity) Next() uint16     { return binary.LittleEndian.Uint16(e[entityOffNext:]) }
func (e *Entity) Previous() uint16 { return binary.LittleEndian.Uint16(e[entityOffPrevious:]) }
func (e *Entity) NextInQuadrant() uint16 {
	return binary.LittleEndian.Uint16(e[entityOffNextInQuadrant:])
}

func (e *Entity) X() uint16 { return binary.LittleEndian.Uint16(e[entityOffX:]) }
func (e *Entity) Y() uint16 { return binary.LittleEndian.Uint16(e[entityOffY:]) }

func (e *Entity) PeepState() uint8        { return e[entityOffPeepState] }
func (e *Entity) PeepCurrentRide() uint16 { return binary.LittleEndian.Uint16(e[entityOffPeepRide:]) }

func (e *Entity) SetIdentifier(v uint8) { e[entityOffIdentifier] = v }
func (e *Entity) SetIndex(v uint16)     { binary.LittleEndian.PutUint16(e[entityOffIndex:], v) }
func (e *Entity) SetNext(v uint16)      { binary.LittleEndian.PutUint16(e[entityOffNext:], v) }
func (e *Entity) SetPrevious(v uint16)  { binary.LittleEndian.PutUint16(e[entityOffPrevious:], v) }
func (e *Entity) SetNextInQuadrant(v uint16) {
	binary.LittleEndian.PutUint16(e[entityOffNextInQuadrant:], v)
}
func (e *Entity) SetListOffset(v uint16) { binary.LittleEndian.PutUint16(e[entityOffListOffset:], v) }
func (e *Entity) SetXY(x, y uint16) {
	binary.LittleEndian.PutUint16(e[entityOffX:], x)
	binary.LittleEndian.PutUint16(e[entityOffY:], y)
}

// MarkFree clears the record to the null shape used by the free list.
func (e *Entity) MarkFree(index uint16) {
	*e = Entity{}
	e.SetIdentifier(EntityNull)
	e.SetIndex(index)
	e.SetNext(NullEntityIndex)
	e.SetPrevious(NullEntityIndex)
	e.SetNextInQuadrant(NullEntityIndex)
	binary.LittleEndian.PutUint16(e[entityOffX:], 0xFFFF)
}

// Spatial index geometry: one bucket per map tile plus one overflow bucket
// for off-map entities.
const (
	SpatialIndexSize = MapSize*MapSize + 1
	OffMapBucket     = MapSize * MapSize
)

// SpatialBucket maps a world-unit position to its index bucket. The x
// coordinate 0xFFFF marks an off-map entity.
func SpatialBucket(x, y uint16) int {
	if x == 0xFFFF {
		return OffMapBucket
	}
	tx := int(x) >> 5
	ty := int(y) >> 5
	if tx >= MapSize || ty >= MapSize {
		return OffMapBucket
	}
	return tx<<8 | ty
}

// EntityPool is the flat entity table, the per-kind linked lists and the
// spatial index over them.
type EntityPool struct {
	Entities  [MaxEntities]Entity
	ListHead  [NumEntityLists]uint16
	ListCount [NumEntityLists]uint16

	SpatialIndex [SpatialIndexSize]uint16
}

// Reset frees every record and empties the lists and spatial index.
func (p *EntityPool) Reset() {
	for i := range p.Entities {
		p.Entities[i].MarkFree(uint16(i))
	}
	for i := range p.ListHead {
		p.ListHead[i] = NullEntityIndex
		p.ListCount[i] = 0
	}
	for i := range p.SpatialIndex {
		p.SpatialIndex[i] = NullEntityIndex
	}
}

// IndexQuadrantChains derives the spatial bucket heads for the quadrant
// links already present in the entity records. The links themselves are
// kept exactly as recorded, bad ones included, so a later repair pass sees
// what the source actually contained. A chain head is a record nothing
// links to; a record reachable only through a cycle is hung off its bucket
// directly so the cycle shows up on a walk from the heads.
func (p *EntityPool) IndexQuadrantChains() {
	for i := range p.SpatialIndex {
		p.SpatialIndex[i] = NullEntityIndex
	}

	var referenced, visited [MaxEntities]bool
	for i := range p.Entities {
		e := &p.Entities[i]
		if e.IsNull() {
			continue
		}
		if next := e.NextInQuadrant(); int(next) < MaxEntities {
			referenced[next] = true
		}
	}

	// walk marks every record on the chain from start, returning the tail
	// and whether the chain ends in a null link rather than running into a
	// cycle or out of the pool.
	walk := func(start uint16) (tail uint16, clean bool) {
		cur := start
		for {
			if visited[cur] {
				return cur, false
			}
			visited[cur] = true
			next := p.Entities[cur].NextInQuadrant()
			if next == NullEntityIndex {
				return cur, true
			}
			if int(next) >= MaxEntities {
				return cur, false
			}
			cur = next
		}
	}

	for i := range p.Entities {
		e := &p.Entities[i]
		if e.IsNull() || referenced[i] || visited[i] {
			continue
		}
		bucket := SpatialBucket(e.X(), e.Y())
		head := p.SpatialIndex[bucket]
		if head == NullEntityIndex {
			p.SpatialIndex[bucket] = uint16(i)
			walk(uint16(i))
			continue
		}
		// A second chain landing in an occupied bucket goes in front when
		// it ends cleanly; one that runs into a cycle stays unindexed
		// rather than orphaning the chain already there.
		if tail, clean := walk(uint16(i)); clean {
			p.Entities[tail].SetNextInQuadrant(head)
			p.SpatialIndex[bucket] = uint16(i)
		}
	}

	// Records reachable only through a cycle have no natural head.
	for i := range p.Entities {
		e := &p.Entities[i]
		if e.IsNull() || visited[i] {
			continue
		}
		bucket := SpatialBucket(e.X(), e.Y())
		if p.SpatialIndex[bucket] != NullEntityIndex {
			continue
		}
		p.SpatialIndex[bucket] = uint16(i)
		walk(uint16(i))
	}
}
