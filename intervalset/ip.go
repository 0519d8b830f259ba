package intervalset

import (
	"cmp"
	"fmt"
	"math"
	"math/bits"
	"net/netip"
)

// IPv4 is the 32-bit address index type. The underlying integer is the
// big-endian value of the address, so ordering and stepping follow
// numeric address order.
type IPv4 uint32

// IPv4FromAddr converts a netip address. 4-in-6 mapped addresses are
// unmapped first; ok is false for plain IPv6 addresses.
func IPv4FromAddr(a netip.Addr) (IPv4, bool) {
	a = a.Unmap()
	if !a.Is4() {
		return 0, false
	}
	b := a.As4()
	return IPv4(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), true
}

// ParseIPv4 parses a dotted-quad address.
func ParseIPv4(s string) (IPv4, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return 0, err
	}
	x, ok := IPv4FromAddr(a)
	if !ok {
		return 0, fmt.Errorf("not an IPv4 address: %s", s)
	}
	return x, nil
}

// Addr returns the netip form of the address.
func (x IPv4) Addr() netip.Addr {
	return netip.AddrFrom4([4]byte{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)})
}

func (x IPv4) Compare(other IPv4) int { return cmp.Compare(x, other) }

func (x IPv4) Forward() (IPv4, bool) {
	if x == math.MaxUint32 {
		return x, false
	}
	return x + 1, true
}

func (x IPv4) Backward() (IPv4, bool) {
	if x == 0 {
		return x, false
	}
	return x - 1, true
}

func (x IPv4) Steps(end IPv4) (uint, bool) {
	if end < x {
		return 0, false
	}
	return clampSteps(uint64(end) - uint64(x))
}

func (IPv4) Min() IPv4 { return 0 }
func (IPv4) Max() IPv4 { return math.MaxUint32 }

func (x IPv4) String() string { return x.Addr().String() }

// IPv6 is the 128-bit address index type, stored as a big-endian
// hi/lo pair of 64-bit words.
type IPv6 struct {
	hi, lo uint64
}

// IPv6FromAddr converts a netip address; ok is false unless the address
// is IPv6 (4-in-6 mapped addresses are accepted as their 128-bit value).
func IPv6FromAddr(a netip.Addr) (IPv6, bool) {
	if !a.Is6() {
		return IPv6{}, false
	}
	b := a.As16()
	hi := uint64(0)
	lo := uint64(0)
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(b[i])
		lo = lo<<8 | uint64(b[i+8])
	}
	return IPv6{hi: hi, lo: lo}, true
}

// ParseIPv6 parses a textual IPv6 address.
func ParseIPv6(s string) (IPv6, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return IPv6{}, err
	}
	x, ok := IPv6FromAddr(a)
	if !ok {
		return IPv6{}, fmt.Errorf("not an IPv6 address: %s", s)
	}
	return x, nil
}

// Addr returns the netip form of the address.
func (x IPv6) Addr() netip.Addr {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(x.hi >> (56 - 8*i))
		b[i+8] = byte(x.lo >> (56 - 8*i))
	}
	return netip.AddrFrom16(b)
}

func (x IPv6) Compare(other IPv6) int {
	if c := cmp.Compare(x.hi, other.hi); c != 0 {
		return c
	}
	return cmp.Compare(x.lo, other.lo)
}

func (x IPv6) Forward() (IPv6, bool) {
	if x.hi == math.MaxUint64 && x.lo == math.MaxUint64 {
		return x, false
	}
	lo, carry := bits.Add64(x.lo, 1, 0)
	return IPv6{hi: x.hi + carry, lo: lo}, true
}

func (x IPv6) Backward() (IPv6, bool) {
	if x.hi == 0 && x.lo == 0 {
		return x, false
	}
	lo, borrow := bits.Sub64(x.lo, 1, 0)
	return IPv6{hi: x.hi - borrow, lo: lo}, true
}

func (x IPv6) Steps(end IPv6) (uint, bool) {
	if end.Compare(x) < 0 {
		return 0, false
	}
	lo, borrow := bits.Sub64(end.lo, x.lo, 0)
	hi, _ := bits.Sub64(end.hi, x.hi, borrow)
	if hi != 0 {
		return math.MaxUint, false
	}
	return clampSteps(lo)
}

func (IPv6) Min() IPv6 { return IPv6{} }
func (IPv6) Max() IPv6 { return IPv6{hi: math.MaxUint64, lo: math.MaxUint64} }

func (x IPv6) String() string { return x.Addr().String() }
