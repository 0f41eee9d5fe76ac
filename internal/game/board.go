package game

import (
	"fmt"
	"strings"
)

// Cell visual types, stored in the low five bits of a cell byte.
//
//   - 0 is a revealed blank cell, 1 to 8 are revealed cells showing their
//     adjacent mine count.
//   - 9 to 15 are the unrevealed looks: pressed and unpressed question
//     marks, the three post-game mine states, the flag and the plain
//     unrevealed cell.
//   - 16 marks a border cell. Border cells surround the playable area in a
//     one-cell ring and never transition to anything else; neighbor scans
//     rely on them reading as "already handled".
const (
	BlkBlank     = 0  // revealed, no adjacent mines
	BlkGuessDown = 9  // question mark, pressed
	BlkMineDown  = 10 // mine exposed after a loss
	BlkWrongFlag = 11 // flag on a mine-free cell, shown after a loss
	BlkExplode   = 12 // the mine that ended the game
	BlkGuessUp   = 13 // question mark
	BlkFlag      = 14
	BlkBlankUp   = 15 // unrevealed
	blkBorder    = 16
)

// Cell byte layout: two independent bits on top of the visual type.
// Setting the visual type must never touch the mine or visited bits.
const (
	maskMine  = 0x80
	maskVisit = 0x40
	maskBits  = 0xE0
	maskData  = 0x1F
)

// The grid is a flat array with a fixed stride of 32 so that indexing is a
// shift and an add regardless of the configured width. 1600 bytes covers
// the largest supported board plus its border ring.
const (
	gridStride = 32
	cellCount  = 40 * 40

	// Playable area limits. Width is capped by the stride (the border
	// column at width+1 must stay below 32).
	MaxWidth  = 30
	MaxHeight = 24
)

// Board owns the packed cell storage for one game. Playable coordinates
// are 1-indexed, (1,1) to (width,height); row 0, column 0 and the first
// row/column past the playable area hold border cells.
//
// Accessors do not bounds-check: callers either validate coordinates with
// Valid or rely on the border ring to absorb off-by-one neighbor scans.
type Board struct {
	cells  [cellCount]byte
	width  int
	height int
}

func index(x, y int) int { return y<<5 + x }

// Reset prepares the board for a new game: every playable cell unrevealed
// with no mine, and the border ring marked. Must run before any other
// board operation.
func (b *Board) Reset(width, height int) {
	b.width = width
	b.height = height
	for i := range b.cells {
		b.cells[i] = BlkBlankUp
	}
	for x := 0; x <= width+1; x++ {
		b.cells[index(x, 0)] = blkBorder
		b.cells[index(x, height+1)] = blkBorder
	}
	for y := 0; y <= height+1; y++ {
		b.cells[index(0, y)] = blkBorder
		b.cells[index(width+1, y)] = blkBorder
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Valid reports whether (x,y) lies in the playable area.
func (b *Board) Valid(x, y int) bool {
	return x > 0 && y > 0 && x <= b.width && y <= b.height
}

func (b *Board) PlaceMine(x, y int)  { b.cells[index(x, y)] |= maskMine }
func (b *Board) RemoveMine(x, y int) { b.cells[index(x, y)] &^= maskMine }
func (b *Board) HasMine(x, y int) bool {
	return b.cells[index(x, y)]&maskMine != 0
}

func (b *Board) MarkVisited(x, y int) { b.cells[index(x, y)] |= maskVisit }
func (b *Board) IsVisited(x, y int) bool {
	return b.cells[index(x, y)]&maskVisit != 0
}

// VisualType returns the cell's visual type (0..16).
func (b *Board) VisualType(x, y int) int {
	return int(b.cells[index(x, y)] & maskData)
}

// SetVisualType replaces the visual type, preserving the mine and visited
// bits.
func (b *Board) SetVisualType(x, y, blk int) {
	i := index(x, y)
	b.cells[i] = b.cells[i]&maskBits | byte(blk)
}

func (b *Board) IsBorder(x, y int) bool  { return b.VisualType(x, y) == blkBorder }
func (b *Board) IsFlagged(x, y int) bool { return b.VisualType(x, y) == BlkFlag }
func (b *Board) IsMarked(x, y int) bool  { return b.VisualType(x, y) == BlkGuessUp }

// String renders the playable area for logs and test failures: mines as
// '*', unrevealed as '#', flags as 'F', revealed counts as digits.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 1; y <= b.height; y++ {
		for x := 1; x <= b.width; x++ {
			var ch string
			switch blk := b.VisualType(x, y); {
			case b.HasMine(x, y) && !b.IsVisited(x, y):
				ch = "*"
			case blk == BlkFlag:
				ch = "F"
			case blk == BlkBlankUp:
				ch = "#"
			case blk <= 8:
				ch = fmt.Sprint(blk)
			default:
				ch = "!"
			}
			sb.WriteString(ch + " ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
