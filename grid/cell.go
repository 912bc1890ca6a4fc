package grid

// Cell is a grid coordinate, column first
type Cell struct {
	Col, Row int
}

// Dir is a cardinal direction, indexes DirVectors
type Dir int8

// Direction constants
// Index into DirVectors: N=0, E=1, S=2, W=3
const (
	DirNone  Dir = -1
	DirN     Dir = 0
	DirE     Dir = 1
	DirS     Dir = 2
	DirW     Dir = 3
	DirCount Dir = 4
)

// DirVectors holds (col, row) deltas matching DirN..DirW
var DirVectors = [DirCount][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

var dirOpposite = [DirCount]Dir{DirS, DirW, DirN, DirE}

var dirNames = [DirCount]string{"N", "E", "S", "W"}

// Valid reports whether d is one of the four cardinal directions
func (d Dir) Valid() bool {
	return d >= DirN && d < DirCount
}

// Opposite returns the 180° reverse, DirNone for an invalid direction
func (d Dir) Opposite() Dir {
	if !d.Valid() {
		return DirNone
	}
	return dirOpposite[d]
}

// Delta returns the unit (col, row) step, zero for an invalid direction
func (d Dir) Delta() (dc, dr int) {
	if !d.Valid() {
		return 0, 0
	}
	return DirVectors[d][0], DirVectors[d][1]
}

func (d Dir) String() string {
	if !d.Valid() {
		return "-"
	}
	return dirNames[d]
}

// DirFromDelta maps a unit delta to its direction, DirNone if the delta is not cardinal
func DirFromDelta(dc, dr int) Dir {
	for d := DirN; d < DirCount; d++ {
		if DirVectors[d][0] == dc && DirVectors[d][1] == dr {
			return d
		}
	}
	return DirNone
}
