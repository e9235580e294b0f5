//go:build !symfact_int32

package symfact

// Int is the index type used throughout the package.  Two static widths
// are provided: the default 64-bit build, and a 32-bit build selected
// with the symfact_int32 build tag.  The algorithms are identical; only
// the overflow gate and the storage granule accounting change.
type Int = int64

const (
	intBytes = 8
	intMax   = Int(1<<63 - 1)
)
