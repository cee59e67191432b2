package boards

import (
	"fmt"
	"testing"
)

func TestTilePacking(t *testing.T) {
	if !TileVoid.IsVoid() {
		t.Fatal()
	}
	if TileVoid.HasStar() {
		t.Fatal()
	}

	tile := NewTile(Color2, true)
	if tile.IsVoid() {
		t.Fatal()
	}
	if tile.Color() != Color2 {
		t.Fatalf("got %v", tile.Color())
	}
	if !tile.HasStar() {
		t.Fatal()
	}

	painted := tile.WithColor(Color3)
	if painted.Color() != Color3 {
		t.Fatalf("got %v", painted.Color())
	}
	if !painted.HasStar() {
		t.Fatal("paint must preserve the star")
	}

	cleared := painted.WithoutStar()
	if cleared.HasStar() {
		t.Fatal()
	}
	if cleared.Color() != Color3 {
		t.Fatal()
	}

	// painting void is a no-op
	if !TileVoid.WithColor(Color1).IsVoid() {
		t.Fatal()
	}
}

func TestDirection(t *testing.T) {
	if DirUp.Right() != DirRight {
		t.Fatal()
	}
	if DirUp.Left() != DirLeft {
		t.Fatal()
	}
	if DirLeft.Right() != DirUp {
		t.Fatal()
	}
	for d := DirUp; d <= DirLeft; d++ {
		if d.Left().Right() != d {
			t.Fatalf("left then right from %v", d)
		}
		if d.Right().Right().Right().Right() != d {
			t.Fatalf("four rights from %v", d)
		}
	}
	dx, dy := DirDown.Delta()
	if dx != 0 || dy != 1 {
		t.Fatalf("got %d %d", dx, dy)
	}
}

func TestParseRows(t *testing.T) {
	board, ok := ParseRows([]string{
		"..rR.",
		".ggg.",
		"..B..",
	})
	if !ok {
		t.Fatal()
	}
	if board.Width != 5 || board.Height != 3 {
		t.Fatalf("got %dx%d", board.Width, board.Height)
	}
	if board.Stars() != 2 {
		t.Fatalf("got %d stars", board.Stars())
	}
	if board.At(0, 0) != TileVoid {
		t.Fatal()
	}
	if board.At(3, 0).Color() != Color1 || !board.At(3, 0).HasStar() {
		t.Fatal()
	}
	if board.At(2, 2).Color() != Color3 {
		t.Fatal()
	}

	if str := board.String(); str != "..rR.\n.ggg.\n..B.." {
		t.Fatalf("got %q", str)
	}

	// ragged rows
	if _, ok := ParseRows([]string{"..", "..."}); ok {
		t.Fatal()
	}
	// unknown cell
	if _, ok := ParseRows([]string{"x"}); ok {
		t.Fatal()
	}
	// empty
	if _, ok := ParseRows(nil); ok {
		t.Fatal()
	}
}

func TestBoardCloneAndHash(t *testing.T) {
	board, ok := ParseRows([]string{
		"rgb",
		"nRn",
	})
	if !ok {
		t.Fatal()
	}

	clone := board.Clone()
	if clone.Hash() != board.Hash() {
		t.Fatal("clone must hash equal")
	}

	clone.Set(0, 0, clone.At(0, 0).WithColor(Color3))
	if clone.Hash() == board.Hash() {
		t.Fatal("mutation must change the hash")
	}
	if board.At(0, 0).Color() != Color1 {
		t.Fatal("clone mutation leaked into the original")
	}

	if str := fmt.Sprintf("%v", board.At(1, 1).HasStar()); str != "true" {
		t.Fatalf("got %s", str)
	}
}
