package tapes

type cellInt interface {
	int8 | int16 | int32 | int64
}

// cells is width-specific storage. Values cross the boundary as int64 and are truncated on the way in.
type cells interface {
	len() int
	get(i int) int64
	set(i int, v int64)
	add(i int, delta int64)
}

type cellSlice[T cellInt] []T

func (c cellSlice[T]) len() int {
	return len(c)
}

func (c cellSlice[T]) get(i int) int64 {
	return int64(c[i])
}

func (c cellSlice[T]) set(i int, v int64) {
	c[i] = T(v)
}

func (c cellSlice[T]) add(i int, delta int64) {
	c[i] += T(delta)
}

func makeCells(width Width, size int) cells {
	switch width {
	case Byte:
		return make(cellSlice[int8], size)
	case Word:
		return make(cellSlice[int16], size)
	case DWord:
		return make(cellSlice[int32], size)
	case QWord:
		return make(cellSlice[int64], size)
	}
	panic("unreachable: unknown width")
}
