package binding

import (
	"math"
	"sort"

	"calclang/pkg/value"
)

// constants are the read-only named numbers. They shadow environment
// variables of the same name and cannot be assigned.
var constants = map[string]value.Value{
	"PI":  value.Number(math.Pi),
	"TAU": value.Number(2 * math.Pi),
	"PHI": value.Number(math.Phi),
	"E":   value.Number(math.E),
}

// LookupConstant returns the value of a named constant.
func LookupConstant(name string) (value.Value, bool) {
	v, ok := constants[name]
	return v, ok
}

// IsConstant reports whether name is reserved for a constant.
func IsConstant(name string) bool {
	_, ok := constants[name]
	return ok
}

// ConstantNames returns the constant names in sorted order.
func ConstantNames() []string {
	names := make([]string, 0, len(constants))
	for name := range constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
