package compare

import (
	"sync"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalStrings orders strings so that embedded numbers compare
// numerically ("file2" before "file10"). Strings the natural order
// considers equivalent (for example "a01" and "a1") fall back to byte-wise
// order, so the result is a total order.
func NaturalStrings(a, b string) int {
	if a == b {
		return 0
	}

	// natsort reports equivalent strings as preceding each other both ways.
	ab := natsort.Compare(a, b)
	ba := natsort.Compare(b, a)

	switch {
	case ab == ba:
		return Ordered(a, b)
	case ab:
		return -1
	default:
		return 1
	}
}

// Collated returns a locale-aware string comparator for the given language.
// Strings the collator ranks equal but that differ in bytes fall back to
// byte-wise order, so the result is a total order. The underlying collator
// keeps scratch buffers, so calls are serialized.
func Collated(tag language.Tag, opts ...collate.Option) Comparator[string] {
	var mut sync.Mutex

	col := collate.New(tag, opts...)

	return func(a, b string) int {
		mut.Lock()
		defer mut.Unlock()

		if r := col.CompareString(a, b); r != 0 {
			return r
		}

		return Ordered(a, b)
	}
}
