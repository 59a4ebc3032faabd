package encoding

// DefaultMinPrintableRun is the minimum length of a byte run extracted by
// ExtractPrintable when callers do not override it.
const DefaultMinPrintableRun = 4

// isPrintableByte reports whether b reads as text in either charset the
// resolver produces: printable ASCII, or the Latin-1 printable range that
// survives the Windows-1252 fallback.
func isPrintableByte(b byte) bool {
	return (b >= 0x20 && b <= 0x7E) || b >= 0xA0
}

// ExtractPrintable scans a binary buffer for maximal runs of consecutive
// printable bytes of at least minRun length and returns them decoded, in
// buffer order.
//
// The result is a diagnostic preview only; it carries no information needed
// to reconstruct the buffer and must never feed back into decoding.
//
// Parameters:
//   - data: Buffer to scan
//   - minRun: Minimum run length; values < 1 use DefaultMinPrintableRun
//
// Returns:
//   - []string: Extracted substrings in order, nil when none qualify
func ExtractPrintable(data []byte, minRun int) []string {
	if minRun < 1 {
		minRun = DefaultMinPrintableRun
	}

	var (
		runs  []string
		start = -1
	)

	flush := func(end int) {
		if start >= 0 && end-start >= minRun {
			text, _ := DecodeString(data[start:end])
			runs = append(runs, text)
		}
		start = -1
	}

	for i, b := range data {
		if isPrintableByte(b) {
			if start < 0 {
				start = i
			}

			continue
		}

		flush(i)
	}
	flush(len(data))

	return runs
}
