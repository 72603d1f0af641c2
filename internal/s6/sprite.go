package s6

import "encoding/binary"

// Sprite is one raw 256-byte legacy entity record. The reconciler copies it
// verbatim into the destination pool, so only the handful of fields the
// import logic inspects get accessors here.
type Sprite [SpriteRecordSize]byte

// Entity identifiers (byte 0).
const (
	SpriteIdentifierVehicle = 0x00
	SpriteIdentifierPeep    = 0x01
	SpriteIdentifierMisc    = 0x02
	SpriteIdentifierLitter  = 0x03
	SpriteIdentifierNull    = 0xFF
)

// Peep states the rider recount cares about.
const (
	PeepStateEnteringRide = 4
	PeepStateOnRide       = 5
)

// Byte offsets within the legacy entity record.
const (
	spriteOffIdentifier     = 0x00
	spriteOffNextInQuadrant = 0x02
	spriteOffNext           = 0x04
	spriteOffPrevious       = 0x06
	spriteOffListOffset     = 0x08
	spriteOffIndex          = 0x0A
	spriteOffX              = 0x0E
	spriteOffY              = 0x10
	spriteOffZ              = 0x12
	spriteOffPeepState      = 0x2F
	spriteOffPeepRide       = 0x30
)

func (s *Sprite) Identifier() uint8 { return s[spriteOffIdentifier] }
func (s *Sprite) IsNull() bool      { return s.Identifier() == SpriteIdentifierNull }

func (s *Sprite) PeepState() uint8 { return s[spriteOffPeepState] }
func (s *Sprite) PeepCurrentRide() uint16 {
	return binary.LittleEndian.Uint16(s[spriteOffPeepRide:])
}

func (s *Sprite) SetIdentifier(v uint8) { s[spriteOffIdentifier] = v }
func (s *Sprite) SetPeepState(v uint8)  { s[spriteOffPeepState] = v }
func (s *Sprite) SetPeepCurrentRide(v uint16) {
	binary.LittleEndian.PutUint16(s[spriteOffPeepRide:], v)
}
func (s *Sprite) SetNext(v uint16) {
	binary.LittleEndian.PutUint16(s[spriteOffNext:], v)
}
func (s *Sprite) SetNextInQuadrant(v uint16) {
	binary.LittleEndian.PutUint16(s[spriteOffNextInQuadrant:], v)
}
func (s *Sprite) SetXY(x, y uint16) {
	binary.LittleEndian.PutUint16(s[spriteOffX:], x)
	binary.LittleEndian.PutUint16(s[spriteOffY:], y)
}
