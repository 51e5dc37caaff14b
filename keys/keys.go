// Package keys derives bucket storage keys from repository-relative paths.
package keys

import (
	"errors"
	"strings"
)

// Prefix is the fixed top-level folder all published objects live under.
// It is part of the destination bucket's layout contract.
const Prefix = "others"

// Rejection reasons returned by Derive.
var (
	ErrTooFewSegments = errors.New("path needs at least category/batch/filename segments")
	ErrNoCategory     = errors.New("first segment carries no category after an underscore")
)

// Derive maps a repository-relative path to its storage key.
//
// The first segment must look like "01_economist": everything after its
// first underscore is the category. The last segment is the filename,
// kept verbatim. Middle segments (date or batch folders) are discarded.
//
//	01_economist/te_2025.04.26/TheEconomist.2025.04.26.pdf
//	  -> others/economist/TheEconomist.2025.04.26.pdf
//
// Paths are split on "/" regardless of the host platform so that the
// mapping stays a pure function of the repository layout.
func Derive(repoPath string) (string, error) {
	segments := strings.Split(repoPath, "/")
	if len(segments) < 3 {
		return "", ErrTooFewSegments
	}

	first := segments[0]
	i := strings.Index(first, "_")
	if i <= 0 {
		return "", ErrNoCategory
	}
	category := first[i+1:]
	filename := segments[len(segments)-1]

	return Prefix + "/" + category + "/" + filename, nil
}
