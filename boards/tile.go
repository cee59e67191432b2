package boards

type Color uint8

const (
	ColorNone Color = iota
	Color1
	Color2
	Color3
)

// Tile packs a cell into one byte: walkable flag, star flag, color.
// The zero value is void: not walkable, no color, never a star.
type Tile uint8

const (
	TileVoid Tile = 0

	tileColorMask Tile = 0b0011
	tileStar      Tile = 0b0100
	tileWalkable  Tile = 0b1000
)

func NewTile(color Color, star bool) Tile {
	t := tileWalkable | Tile(color&0b11)
	if star {
		t |= tileStar
	}
	return t
}

func (t Tile) IsVoid() bool {
	return t&tileWalkable == 0
}

func (t Tile) Color() Color {
	if t.IsVoid() {
		return ColorNone
	}
	return Color(t & tileColorMask)
}

func (t Tile) HasStar() bool {
	return t&tileStar != 0
}

func (t Tile) WithColor(color Color) Tile {
	if t.IsVoid() {
		return t
	}
	return (t &^ tileColorMask) | Tile(color&0b11)
}

func (t Tile) WithoutStar() Tile {
	return t &^ tileStar
}
