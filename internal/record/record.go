// Package record encodes and decodes the packed training-record format
// used to persist self-play positions: 15 little-endian uint32 words,
// 60 bytes total (spec §6).
package record

import (
	"encoding/binary"
	"fmt"

	"github.com/blokuscore/engine/internal/board"
)

// Size is the on-disk byte length of one record.
const Size = 15 * 4

// Result mirrors board.Result but with the record format's own bit
// values (0=A_WON, 1=B_WON, 2=DRAW), independent of board.Result's
// iota ordering.
type Result uint8

const (
	ResultAWon Result = iota
	ResultBWon
	ResultDraw
)

// Record is one labeled training position.
type Record struct {
	Occ       [2][board.Size]uint32
	Visits    uint32
	WinCount  uint32
	SideToMove board.Player
	Result    Result
}

// FromState captures a training record for s, labeling it with the
// search statistics (visits, win count) of whichever move the caller is
// about to commit and the eventual game result.
func FromState(s *board.State, visits, winCount uint32, result Result) Record {
	r := Record{
		Visits:     visits,
		WinCount:   winCount,
		SideToMove: s.Player,
		Result:     result,
	}
	for row := 0; row < board.Size; row++ {
		r.Occ[board.PlayerA][row] = s.Occ[board.PlayerA][row]
		r.Occ[board.PlayerB][row] = s.Occ[board.PlayerB][row]
	}
	return r
}

// Encode serialises r into exactly Size bytes, little-endian.
func Encode(r Record) [Size]byte {
	var out [Size]byte
	for row := 0; row < board.Size; row++ {
		word := (r.Occ[board.PlayerA][row] & 0x3FFF) | ((r.Occ[board.PlayerB][row] & 0x3FFF) << 16)
		binary.LittleEndian.PutUint32(out[row*4:], word)
	}

	meta := (r.Visits & 0x3FFF) |
		((r.WinCount & 0x3FFF) << 14) |
		(uint32(r.SideToMove&0x3) << 28) |
		(uint32(r.Result&0x3) << 30)
	binary.LittleEndian.PutUint32(out[14*4:], meta)
	return out
}

// Decode parses Size bytes back into a Record.
func Decode(data []byte) (Record, error) {
	if len(data) != Size {
		return Record{}, fmt.Errorf("record: expected %d bytes, got %d", Size, len(data))
	}

	var r Record
	for row := 0; row < board.Size; row++ {
		word := binary.LittleEndian.Uint32(data[row*4:])
		r.Occ[board.PlayerA][row] = word & 0x3FFF
		r.Occ[board.PlayerB][row] = (word >> 16) & 0x3FFF
	}

	meta := binary.LittleEndian.Uint32(data[14*4:])
	r.Visits = meta & 0x3FFF
	r.WinCount = (meta >> 14) & 0x3FFF
	r.SideToMove = board.Player((meta >> 28) & 0x3)
	r.Result = Result((meta >> 30) & 0x3)
	return r, nil
}
