// Package tensor provides the strided array engine for the mdarray project.
package tensor

// DataType represents runtime type information for tensors.
//
// Every tensor stores a single fixed-width floating-point element type.
type DataType int

// Supported data types for tensors.
const (
	Float64 DataType = iota
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}
