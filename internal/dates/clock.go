package dates

import "time"

// Clock supplies "today" to the classification and reporting code. Injecting
// it keeps every computation deterministic under test.
type Clock interface {
	Today() Date
}

type systemClock struct{}

func (systemClock) Today() Date { return FromTime(time.Now()) }

// System returns a Clock backed by the wall clock.
func System() Clock { return systemClock{} }

// Fixed returns a Clock pinned to d.
func Fixed(d Date) Clock { return fixedClock{d} }

type fixedClock struct{ d Date }

func (c fixedClock) Today() Date { return c.d }
