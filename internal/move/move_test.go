package move

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	for orientation := uint8(0); orientation < 8; orientation++ {
		for piece := uint8(0); piece < 21; piece++ {
			for player := uint8(0); player < 2; player++ {
				m := Move{Orientation: orientation, X: 7, Y: 11, Piece: piece, Player: player}
				got := Unpack(Pack(m))
				if got != m {
					t.Fatalf("round trip mismatch: got %+v, want %+v", got, m)
				}
			}
		}
	}
}

func TestPackUnpackCoordinateRange(t *testing.T) {
	for x := uint8(0); x < 14; x++ {
		for y := uint8(0); y < 14; y++ {
			m := Move{Orientation: 3, X: x, Y: y, Piece: 9, Player: 1}
			got := Unpack(Pack(m))
			if got.X != x || got.Y != y {
				t.Fatalf("coordinate mismatch for (%d,%d): got (%d,%d)", x, y, got.X, got.Y)
			}
		}
	}
}

func TestNullMoveSentinel(t *testing.T) {
	if Null != 0xF800 {
		t.Fatalf("Null = %#x, want 0xF800", Null)
	}
	if Piece(Null) != 31 {
		t.Fatalf("Null piece field = %d, want 31", Piece(Null))
	}
	if Orientation(Null) != 0 || X(Null) != 0 || Y(Null) != 0 || Player(Null) != 0 {
		t.Fatalf("Null should have zero orientation/x/y/player fields, got %+v", Unpack(Null))
	}
}

func TestNullNeverProducedByPack(t *testing.T) {
	for piece := uint8(0); piece < 21; piece++ {
		m := Move{Piece: piece}
		if Pack(m) == Null {
			t.Fatalf("Pack produced Null for piece %d", piece)
		}
	}
}

func TestInvalidDistinctFromNull(t *testing.T) {
	if Invalid == Null {
		t.Fatalf("Invalid must not equal Null")
	}
}
