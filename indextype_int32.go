//go:build symfact_int32

package symfact

// Int is the index type used throughout the package.  This is the
// 32-bit variant, selected with the symfact_int32 build tag.  Problems
// whose workspace does not fit 32-bit indexing fail with
// ErrOutOfMemory; use the default 64-bit build for those.
type Int = int32

const (
	intBytes = 4
	intMax   = Int(1<<31 - 1)
)
