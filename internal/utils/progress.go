package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescScanning = "Scanning"
	DescReading  = "Reading"
)

// NewProgressBar creates a consistently styled progress bar writing to w.
//
// Parameters:
//   - total: Total number of items. Use -1 for unknown totals (spinner mode).
//   - description: Text shown before the bar (e.g., DescScanning).
//   - w: Destination; use os.Stderr so stdout keeps only report lines.
//
// Example:
//
//	bar := utils.NewProgressBar(len(stores), utils.DescScanning, os.Stderr)
//	defer bar.Finish()
//
//	for _, store := range stores {
//	    // list store
//	    bar.Add(1)
//	}
func NewProgressBar(total int, description string, w io.Writer) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
