package boards

type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

func (d Direction) Left() Direction {
	return (d + 3) % 4
}

func (d Direction) Right() Direction {
	return (d + 1) % 4
}

func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "invalid"
}

func ParseDirection(str string) (Direction, bool) {
	switch str {
	case "up", "north":
		return DirUp, true
	case "right", "east":
		return DirRight, true
	case "down", "south":
		return DirDown, true
	case "left", "west":
		return DirLeft, true
	}
	return 0, false
}

type Pose struct {
	X   int
	Y   int
	Dir Direction
}
