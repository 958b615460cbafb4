package rematch

import (
	"fmt"
	"runtime"
	"sync"
	"unicode/utf8"
	"unsafe"

	"github.com/ebitengine/purego"
)

// loadPCRE2 loads the PCRE2 shared library and registers the symbols on
// first use. Loading lazily instead of in init keeps the stdlib engine
// usable on hosts without libpcre2.
var loadPCRE2 = sync.OnceValue(func() error {
	var libPath string

	switch runtime.GOOS {
	case "darwin":
		libPath = "libpcre2-8.dylib"
	case "linux", "freebsd":
		libPath = "libpcre2-8.so"
	case "windows":
		libPath = "pcre2-8.dll"
	default:
		return fmt.Errorf("GOOS=%s is not supported", runtime.GOOS)
	}

	lib, err := openLibrary(libPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", libPath, err)
	}

	// Register the functions by their PCRE2 symbol names.
	// (For the 8-bit versions, the symbols are suffixed with "_8".)
	funcs := [][2]any{
		{&pcre2_compile, "pcre2_compile_8"},
		{&pcre2_code_free, "pcre2_code_free_8"},
		{&pcre2_pattern_info, "pcre2_pattern_info_8"},
		{&pcre2_match, "pcre2_match_8"},
		{&pcre2_match_data_create_from_pattern, "pcre2_match_data_create_from_pattern_8"},
		{&pcre2_match_data_free, "pcre2_match_data_free_8"},
		{&pcre2_get_ovector_pointer, "pcre2_get_ovector_pointer_8"},
	}

	for _, f := range funcs {
		purego.RegisterLibFunc(f[0], lib, f[1].(string))
	}

	return nil
})

// PCREAvailable reports whether the PCRE2 shared library could be loaded
// on this host.
func PCREAvailable() bool {
	return loadPCRE2() == nil
}

// pcreProgram is a pattern compiled by PCRE2.
type pcreProgram struct {
	code      uintptr // pointer to compiled pcre2_code
	matchData uintptr // cached match data
	groups    int     // captures + 1 for the whole-match group
	anchored  bool
}

func compilePCRE(pattern string, flags Flags) (program, error) {
	if err := loadPCRE2(); err != nil {
		return nil, &PatternError{Pattern: pattern, Offset: -1, Err: err}
	}

	opts := pcre2UTF
	if flags&CaseInsensitive != 0 {
		opts |= pcre2Caseless
	}
	if flags&Multiline != 0 {
		opts |= pcre2Multiline
	}
	if flags&DotAll != 0 {
		opts |= pcre2DotAll
	}
	if flags&Ungreedy != 0 {
		opts |= pcre2Ungreedy
	}
	if flags&Anchored != 0 {
		opts |= pcre2Anchored
	}

	patBytes := []byte(pattern)

	var patPtr *uint8

	if len(patBytes) == 0 {
		var dummy byte = 0
		patPtr = &dummy
	} else {
		patPtr = (*uint8)(unsafe.Pointer(&patBytes[0]))
	}

	var errcode int32
	var errOffset uint64

	code := pcre2_compile(patPtr, uint64(len(patBytes)), opts, &errcode, &errOffset, 0)
	if code == 0 {
		return nil, &PatternError{
			Pattern: pattern,
			Offset:  int(errOffset),
			Err:     fmt.Errorf("pcre2 error code %d", errcode),
		}
	}

	var captures uint32
	pcre2_pattern_info(code, pcre2InfoCaptureCount, uintptr(unsafe.Pointer(&captures)))

	return &pcreProgram{
		code:     code,
		groups:   int(captures) + 1,
		anchored: flags&Anchored != 0,
	}, nil
}

// ensureMatchData creates the match data object on first use. It is
// sized from the pattern, so the ovector always has room for every
// group.
func (p *pcreProgram) ensureMatchData() uintptr {
	if p.matchData == 0 {
		p.matchData = pcre2_match_data_create_from_pattern(p.code, 0)
	}

	return p.matchData
}

// exec runs one PCRE2 match attempt at the given start offset and
// returns the ovector as start/end byte pairs, one pair per group.
// Non-participating groups come back as -1/-1 (PCRE2_UNSET narrows to -1).
func (p *pcreProgram) exec(subject []byte, off int) []int {
	if p.code == 0 || len(subject) == 0 || off > len(subject) {
		return nil
	}

	md := p.ensureMatchData()
	if md == 0 {
		return nil
	}

	subjectPtr := (*uint8)(unsafe.Pointer(&subject[0]))

	ret := pcre2_match(p.code, subjectPtr, uint64(len(subject)), uint64(off), 0, md, 0)
	if ret < 0 {
		return nil
	}

	ovector := pcre2_get_ovector_pointer(md)
	if ovector == nil {
		return nil
	}

	result := make([]int, p.groups*2)
	size := unsafe.Sizeof(uint64(0))

	for i := range result {
		v := *(*uint64)(ptr(uintptr(ptr(ovector)) + uintptr(i)*size))
		result[i] = int(v)
	}

	return result
}

func (p *pcreProgram) findAll(text string, from, to int) []RawMatch {
	if from >= to {
		return nil
	}

	subject := stringToBytesUnsafe(text[:to])

	var raws []RawMatch

	pos := from
	for pos <= to {
		ov := p.exec(subject, pos)
		if ov == nil {
			break
		}

		groups := make([]ByteSpan, p.groups)
		for g := range groups {
			groups[g] = ByteSpan{Start: ov[2*g], End: ov[2*g+1]}
		}

		raws = append(raws, RawMatch{
			Kind:   KindMatch,
			Span:   groups[0],
			Groups: groups,
		})

		if p.anchored {
			break
		}

		if end := ov[1]; end > pos {
			pos = end
		} else {
			// Empty match: advance one rune to avoid an infinite loop.
			_, size := utf8.DecodeRune(subject[pos:])
			if size == 0 {
				break
			}
			pos += size
		}
	}

	return raws
}

func (p *pcreProgram) hasMatch(text string, from, to int) bool {
	if from >= to {
		return false
	}

	subject := stringToBytesUnsafe(text[:to])
	if p.code == 0 {
		return false
	}

	md := p.ensureMatchData()
	if md == 0 {
		return false
	}

	subjectPtr := (*uint8)(unsafe.Pointer(&subject[0]))

	return pcre2_match(p.code, subjectPtr, uint64(len(subject)), uint64(from), 0, md, 0) >= 0
}

func (p *pcreProgram) groupCount() int {
	return p.groups
}

// close frees the resources associated with the compiled pattern.
func (p *pcreProgram) close() {
	if p.matchData != 0 {
		pcre2_match_data_free(p.matchData)
		p.matchData = 0
	}

	if p.code != 0 {
		pcre2_code_free(p.code)
		p.code = 0
	}
}
