package domain

// CommonOptions contains shared options for generation runs.
type CommonOptions struct {
	Verbose bool
	DryRun  bool
}

// DefaultCommonOptions returns CommonOptions with default values.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{}
}
