package codegen

// BackendOptions contains options that can be passed to backends
type BackendOptions struct {
	// Debug enables debug output
	Debug bool

	// Custom backend-specific options
	CustomOptions map[string]interface{}
}

// Features a Backend may advertise via SupportsFeature.
const (
	FeatureFloatingPoint = "floating_point"
	Feature32BitPointers = "32bit_pointers"
	FeatureIndirectCalls = "indirect_calls"
)
