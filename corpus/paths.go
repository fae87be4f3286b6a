package corpus

import (
	"fmt"
	"strings"
)

var (
	targetExts = []string{".en", ".eng"}
	sourceExts = []string{".sv", ".swe"}
)

// ResolvePaths picks the source and target corpus files from the
// command line arguments. With no arguments the defaults are used and
// usedDefaults is true. Otherwise each argument is matched by extension
// (.en/.eng for the target, .sv/.swe for the source) and arguments that
// match neither are ignored; a side left without a file is an error
// wrapping ErrMissingPath.
func ResolvePaths(args []string, defaultSource, defaultTarget string) (source, target string, usedDefaults bool, err error) {
	if len(args) == 0 {
		source, target, usedDefaults = defaultSource, defaultTarget, true
	} else {
		for _, a := range args {
			switch {
			case hasExt(a, targetExts):
				target = a
			case hasExt(a, sourceExts):
				source = a
			}
		}
	}

	if source == "" {
		return "", "", usedDefaults, fmt.Errorf("%w: no source corpus (expected a file ending in %s)",
			ErrMissingPath, strings.Join(sourceExts, " or "))
	}
	if target == "" {
		return "", "", usedDefaults, fmt.Errorf("%w: no target corpus (expected a file ending in %s)",
			ErrMissingPath, strings.Join(targetExts, " or "))
	}
	return source, target, usedDefaults, nil
}

func hasExt(fn string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(fn, ext) {
			return true
		}
	}
	return false
}
