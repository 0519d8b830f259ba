package intervalset

import (
	"cmp"
	"math"
)

// signedInt and unsignedInt use ~ so that named types based on the
// built-in integers also satisfy them.
type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// clampSteps narrows a 64-bit distance to uint, degrading to
// (math.MaxUint, false) when it does not fit.
func clampSteps(d uint64) (uint, bool) {
	if d > uint64(math.MaxUint) {
		return math.MaxUint, false
	}
	return uint(d), true
}

// signedSteps relies on two's complement conversion: the wrapped uint64
// subtraction yields the true distance for any pair with end >= start.
func signedSteps[T signedInt](start, end T) (uint, bool) {
	if end < start {
		return 0, false
	}
	return clampSteps(uint64(end) - uint64(start))
}

func unsignedSteps[T unsignedInt](start, end T) (uint, bool) {
	if end < start {
		return 0, false
	}
	return clampSteps(uint64(end) - uint64(start))
}

// Int8 is the 8-bit signed index type.
type Int8 int8

func (x Int8) Compare(other Int8) int { return cmp.Compare(x, other) }

func (x Int8) Forward() (Int8, bool) {
	if x == math.MaxInt8 {
		return x, false
	}
	return x + 1, true
}

func (x Int8) Backward() (Int8, bool) {
	if x == math.MinInt8 {
		return x, false
	}
	return x - 1, true
}

func (x Int8) Steps(end Int8) (uint, bool) { return signedSteps(x, end) }

func (Int8) Min() Int8 { return math.MinInt8 }
func (Int8) Max() Int8 { return math.MaxInt8 }

// Int16 is the 16-bit signed index type.
type Int16 int16

func (x Int16) Compare(other Int16) int { return cmp.Compare(x, other) }

func (x Int16) Forward() (Int16, bool) {
	if x == math.MaxInt16 {
		return x, false
	}
	return x + 1, true
}

func (x Int16) Backward() (Int16, bool) {
	if x == math.MinInt16 {
		return x, false
	}
	return x - 1, true
}

func (x Int16) Steps(end Int16) (uint, bool) { return signedSteps(x, end) }

func (Int16) Min() Int16 { return math.MinInt16 }
func (Int16) Max() Int16 { return math.MaxInt16 }

// Int32 is the 32-bit signed index type.
type Int32 int32

func (x Int32) Compare(other Int32) int { return cmp.Compare(x, other) }

func (x Int32) Forward() (Int32, bool) {
	if x == math.MaxInt32 {
		return x, false
	}
	return x + 1, true
}

func (x Int32) Backward() (Int32, bool) {
	if x == math.MinInt32 {
		return x, false
	}
	return x - 1, true
}

func (x Int32) Steps(end Int32) (uint, bool) { return signedSteps(x, end) }

func (Int32) Min() Int32 { return math.MinInt32 }
func (Int32) Max() Int32 { return math.MaxInt32 }

// Int64 is the 64-bit signed index type.
type Int64 int64

func (x Int64) Compare(other Int64) int { return cmp.Compare(x, other) }

func (x Int64) Forward() (Int64, bool) {
	if x == math.MaxInt64 {
		return x, false
	}
	return x + 1, true
}

func (x Int64) Backward() (Int64, bool) {
	if x == math.MinInt64 {
		return x, false
	}
	return x - 1, true
}

func (x Int64) Steps(end Int64) (uint, bool) { return signedSteps(x, end) }

func (Int64) Min() Int64 { return math.MinInt64 }
func (Int64) Max() Int64 { return math.MaxInt64 }

// Int is the platform-width signed index type.
type Int int

func (x Int) Compare(other Int) int { return cmp.Compare(x, other) }

func (x Int) Forward() (Int, bool) {
	if x == math.MaxInt {
		return x, false
	}
	return x + 1, true
}

func (x Int) Backward() (Int, bool) {
	if x == math.MinInt {
		return x, false
	}
	return x - 1, true
}

func (x Int) Steps(end Int) (uint, bool) { return signedSteps(x, end) }

func (Int) Min() Int { return math.MinInt }
func (Int) Max() Int { return math.MaxInt }

// Uint8 is the 8-bit unsigned index type.
type Uint8 uint8

func (x Uint8) Compare(other Uint8) int { return cmp.Compare(x, other) }

func (x Uint8) Forward() (Uint8, bool) {
	if x == math.MaxUint8 {
		return x, false
	}
	return x + 1, true
}

func (x Uint8) Backward() (Uint8, bool) {
	if x == 0 {
		return x, false
	}
	return x - 1, true
}

func (x Uint8) Steps(end Uint8) (uint, bool) { return unsignedSteps(x, end) }

func (Uint8) Min() Uint8 { return 0 }
func (Uint8) Max() Uint8 { return math.MaxUint8 }

// Uint16 is the 16-bit unsigned index type.
type Uint16 uint16

func (x Uint16) Compare(other Uint16) int { return cmp.Compare(x, other) }

func (x Uint16) Forward() (Uint16, bool) {
	if x == math.MaxUint16 {
		return x, false
	}
	return x + 1, true
}

func (x Uint16) Backward() (Uint16, bool) {
	if x == 0 {
		return x, false
	}
	return x - 1, true
}

func (x Uint16) Steps(end Uint16) (uint, bool) { return unsignedSteps(x, end) }

func (Uint16) Min() Uint16 { return 0 }
func (Uint16) Max() Uint16 { return math.MaxUint16 }

// Uint32 is the 32-bit unsigned index type.
type Uint32 uint32

func (x Uint32) Compare(other Uint32) int { return cmp.Compare(x, other) }

func (x Uint32) Forward() (Uint32, bool) {
	if x == math.MaxUint32 {
		return x, false
	}
	return x + 1, true
}

func (x Uint32) Backward() (Uint32, bool) {
	if x == 0 {
		return x, false
	}
	return x - 1, true
}

func (x Uint32) Steps(end Uint32) (uint, bool) { return unsignedSteps(x, end) }

func (Uint32) Min() Uint32 { return 0 }
func (Uint32) Max() Uint32 { return math.MaxUint32 }

// Uint64 is the 64-bit unsigned index type.
type Uint64 uint64

func (x Uint64) Compare(other Uint64) int { return cmp.Compare(x, other) }

func (x Uint64) Forward() (Uint64, bool) {
	if x == math.MaxUint64 {
		return x, false
	}
	return x + 1, true
}

func (x Uint64) Backward() (Uint64, bool) {
	if x == 0 {
		return x, false
	}
	return x - 1, true
}

func (x Uint64) Steps(end Uint64) (uint, bool) { return unsignedSteps(x, end) }

func (Uint64) Min() Uint64 { return 0 }
func (Uint64) Max() Uint64 { return math.MaxUint64 }

// Uint is the platform-width unsigned index type.
type Uint uint

func (x Uint) Compare(other Uint) int { return cmp.Compare(x, other) }

func (x Uint) Forward() (Uint, bool) {
	if x == math.MaxUint {
		return x, false
	}
	return x + 1, true
}

func (x Uint) Backward() (Uint, bool) {
	if x == 0 {
		return x, false
	}
	return x - 1, true
}

func (x Uint) Steps(end Uint) (uint, bool) { return unsignedSteps(x, end) }

func (Uint) Min() Uint { return 0 }
func (Uint) Max() Uint { return math.MaxUint }
