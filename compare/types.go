package compare

// Signed matches every signed integer kind, including named types built on them.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches every unsigned integer kind. uint16 doubles as the
// "char" kind (a UTF-16 code unit).
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer matches all integer kinds.
type Integer interface {
	Signed | Unsigned
}

// Float matches the IEEE-754 kinds.
type Float interface {
	~float32 | ~float64
}

// Number is the set of kinds that have a natural order (see Natural).
type Number interface {
	Integer | Float
}
