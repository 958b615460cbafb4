package rematch

// PCRE2 option bits and info codes, 8-bit library flavor.
const (
	// pcre2Caseless maps to PCRE2_CASELESS.
	pcre2Caseless uint32 = 0x0000_0008
	// pcre2DotAll maps to PCRE2_DOTALL.
	pcre2DotAll uint32 = 0x0000_0020
	// pcre2Multiline maps to PCRE2_MULTILINE.
	pcre2Multiline uint32 = 0x0000_0400
	// pcre2Ungreedy maps to PCRE2_UNGREEDY.
	pcre2Ungreedy uint32 = 0x0004_0000
	// pcre2UTF maps to PCRE2_UTF; subjects are Go strings, so UTF-8 mode
	// is always on.
	pcre2UTF uint32 = 0x0008_0000
	// pcre2Anchored maps to PCRE2_ANCHORED.
	pcre2Anchored uint32 = 0x8000_0000

	// pcre2InfoCaptureCount tells pcre2_pattern_info to return the number
	// of capturing subpatterns (PCRE2_INFO_CAPTURECOUNT).
	pcre2InfoCaptureCount uint32 = 4
)
