package boards

import "strings"

// Board is a rectangular grid of tiles. Width and height are parameters,
// not constants; the observed puzzle boards happen to be 16x16.
type Board struct {
	Width  int
	Height int
	Cells  []Tile
}

func New(width, height int) Board {
	return Board{
		Width:  width,
		Height: height,
		Cells:  make([]Tile, width*height),
	}
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

func (b Board) At(x, y int) Tile {
	return b.Cells[y*b.Width+x]
}

func (b *Board) Set(x, y int, t Tile) {
	b.Cells[y*b.Width+x] = t
}

func (b Board) Clone() Board {
	cells := make([]Tile, len(b.Cells))
	copy(cells, b.Cells)
	return Board{
		Width:  b.Width,
		Height: b.Height,
		Cells:  cells,
	}
}

func (b Board) Stars() int {
	n := 0
	for _, t := range b.Cells {
		if t.HasStar() {
			n++
		}
	}
	return n
}

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// Hash is FNV-1a over dimensions and cells. Deterministic across runs, so
// loop detection kicks in at the same step count on every execution.
func (b Board) Hash() uint64 {
	h := uint64(fnvOffset)
	h = (h ^ uint64(b.Width)) * fnvPrime
	h = (h ^ uint64(b.Height)) * fnvPrime
	for _, t := range b.Cells {
		h = (h ^ uint64(t)) * fnvPrime
	}
	return h
}

func (b Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			t := b.At(x, y)
			if t.IsVoid() {
				sb.WriteByte('.')
				continue
			}
			ch := byte('n')
			switch t.Color() {
			case Color1:
				ch = 'r'
			case Color2:
				ch = 'g'
			case Color3:
				ch = 'b'
			}
			if t.HasStar() {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		if y < b.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseRows builds a board from row strings: '.' or ' ' is void, 'n' a
// colorless tile, 'r' 'g' 'b' colored tiles, uppercase carries a star.
func ParseRows(rows []string) (Board, bool) {
	if len(rows) == 0 {
		return Board{}, false
	}
	width := len(rows[0])
	board := New(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return Board{}, false
		}
		for x := range width {
			ch := row[x]
			star := ch >= 'A' && ch <= 'Z'
			if star {
				ch += 'a' - 'A'
			}
			var color Color
			switch ch {
			case '.', ' ':
				if star {
					return Board{}, false
				}
				continue
			case 'n':
				color = ColorNone
			case 'r':
				color = Color1
			case 'g':
				color = Color2
			case 'b':
				color = Color3
			default:
				return Board{}, false
			}
			board.Set(x, y, NewTile(color, star))
		}
	}
	return board, true
}
