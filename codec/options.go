package codec

import "github.com/Krymelte/trm/encoding"

type config struct {
	nulStripRetry bool
	previewMinRun int
}

func defaultConfig() config {
	return config{
		nulStripRetry: false,
		previewMinRun: encoding.DefaultMinPrintableRun,
	}
}

// Option configures a Decode call.
type Option func(*config)

// WithNULStripRetry enables the destructive last-resort retry: when neither
// the binary nor the text stage matches, all NUL bytes are stripped and
// both stages run once more before falling back to the raw wrapper.
func WithNULStripRetry() Option {
	return func(c *config) {
		c.nulStripRetry = true
	}
}

// WithPreviewMinRun overrides the minimum printable run length the raw
// fallback extracts into its preview.
func WithPreviewMinRun(minRun int) Option {
	return func(c *config) {
		c.previewMinRun = minRun
	}
}
