//go:generate go run github.com/dmarkham/enumer -type=Domain -trimprefix=Domain -transform=lower
package calc

// Domain selects the index type a set expression is evaluated over.
type Domain int

const (
	DomainU8 Domain = iota
	DomainU16
	DomainU32
	DomainU64
	DomainI8
	DomainI16
	DomainI32
	DomainI64
	DomainChar
	DomainIPv4
	DomainIPv6
)
