package spatial

// Visited is a generation-stamped set of primitive ids. Begin starts a new
// generation in O(1), so one Visited can serve many queries without
// clearing. Independent query purposes (redraw patches, picking) each own
// their own Visited and never disturb each other.
type Visited struct {
	stamp []uint32
	gen   uint32
}

// Begin starts a new, empty generation able to hold ids below n.
func (v *Visited) Begin(n int) {
	if n > len(v.stamp) {
		grown := make([]uint32, n)
		copy(grown, v.stamp)
		v.stamp = grown
	}
	v.gen++
	if v.gen == 0 {
		clear(v.stamp)
		v.gen = 1
	}
}

// Visit marks id and reports whether it was unmarked in this generation.
// Ids outside the range given to Begin grow the set.
func (v *Visited) Visit(id int) bool {
	if id < 0 {
		return false
	}
	if id >= len(v.stamp) {
		grown := make([]uint32, id+1+id/2)
		copy(grown, v.stamp)
		v.stamp = grown
	}
	if v.stamp[id] == v.gen {
		return false
	}
	v.stamp[id] = v.gen
	return true
}

// Has reports whether id was visited in this generation.
func (v *Visited) Has(id int) bool {
	return id >= 0 && id < len(v.stamp) && v.stamp[id] == v.gen && v.gen != 0
}
