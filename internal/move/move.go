// Package move implements the packed 32-bit move encoding: pack/unpack of
// (orientation, x, y, piece, player) into a single uint32, plus the two
// reserved sentinels (a pass, and an internal "no move" marker).
package move

// Move is the unpacked representation of a placement.
type Move struct {
	Orientation uint8 // 0..7
	X, Y        uint8 // 0..13
	Piece       uint8 // 0..20
	Player      uint8 // 0..1
}

const (
	orientationBits = 3
	orientationMask = 0x7 // bits 0-2

	yShift = 3
	yMask  = 0xF << yShift // bits 3-6

	xShift = 7
	xMask  = 0xF << xShift // bits 7-10

	pieceShift = 11
	pieceMask  = 0x1F << pieceShift // bits 11-15

	playerShift = 16
	playerMask  = 0x1 << playerShift // bit 16
)

// Null is the sentinel packed value for a pass: piece field = 31 (an
// out-of-range piece id), every other field zero.
const Null uint32 = 0xF800

// Invalid is a reserved sentinel distinct from any value Pack can
// produce, available to signal "no move here" without colliding with a
// legal pack or with Null. No package in this module uses it.
const Invalid uint32 = 0xFFFFFFFF

// Pack encodes m into its 32-bit wire/table representation. The caller
// is responsible for keeping fields within range; Pack does not validate.
func Pack(m Move) uint32 {
	return uint32(m.Orientation)&orientationMask |
		uint32(m.Y)<<yShift |
		uint32(m.X)<<xShift |
		uint32(m.Piece)<<pieceShift |
		uint32(m.Player)<<playerShift
}

// Unpack decodes a packed move. Behaviour is defined for any bit pattern,
// including Null (all fields read back as the packed sentinel's fields:
// piece 31, rest zero) and Invalid.
func Unpack(packed uint32) Move {
	return Move{
		Orientation: uint8(packed & orientationMask),
		Y:           uint8((packed & yMask) >> yShift),
		X:           uint8((packed & xMask) >> xShift),
		Piece:       uint8((packed & pieceMask) >> pieceShift),
		Player:      uint8((packed & playerMask) >> playerShift),
	}
}

// Orientation extracts just the orientation field from a packed move.
func Orientation(packed uint32) uint8 { return uint8(packed & orientationMask) }

// X extracts just the x field from a packed move.
func X(packed uint32) uint8 { return uint8((packed & xMask) >> xShift) }

// Y extracts just the y field from a packed move.
func Y(packed uint32) uint8 { return uint8((packed & yMask) >> yShift) }

// Piece extracts just the piece field from a packed move.
func Piece(packed uint32) uint8 { return uint8((packed & pieceMask) >> pieceShift) }

// Player extracts just the player field from a packed move.
func Player(packed uint32) uint8 { return uint8((packed & playerMask) >> playerShift) }
