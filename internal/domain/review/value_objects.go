package review

const (
	MinRating = 1
	MaxRating = 5
)

type Rating struct {
	value int
}

// NewRating clamps out-of-range values into [1,5] instead of rejecting them,
// matching what the allocator does on its side of the sync.
func NewRating(v int) Rating {
	if v < MinRating {
		v = MinRating
	}
	if v > MaxRating {
		v = MaxRating
	}
	return Rating{value: v}
}

func (r Rating) Value() int { return r.value }
