package clustermap

import (
	"strconv"
	"strings"
)

// cutToken splits the first whitespace-separated token off s.
// An empty tok means s held no further tokens.
// Complexity: O(len(s)).
func cutToken(s string) (tok, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}

	return s[:i], s[i+1:]
}

// cutQuoted extracts the text strictly between the first and second '"' in s
// and returns the remainder after the closing quote. ok is false when either
// quote is missing; the two lookups are kept separate so that the
// missing-closing-quote failure mode stays precise.
func cutQuoted(s string) (name, rest string, ok bool) {
	open := strings.IndexByte(s, '"')
	if open < 0 {
		return "", s, false
	}
	n := strings.IndexByte(s[open+1:], '"')
	if n < 0 {
		return "", s, false
	}

	return s[open+1 : open+1+n], s[open+2+n:], true
}

// isNotDigit reports whether r falls outside '0'..'9'; any such rune acts as
// a path delimiter (canonically ':' or '.').
func isNotDigit(r rune) bool {
	return r < '0' || r > '9'
}

// parsePath decodes a tree path token such as "1:1:2" into its ordered
// module indices. Indexing is 1-based at every level: an element of 0 yields
// ErrInvalidPathElement. A token without any digit run decodes to an empty
// path. Complexity: O(len(tok)).
func parsePath(tok string) (Path, error) {
	runs := strings.FieldsFunc(tok, isNotDigit)
	path := make(Path, 0, len(runs))
	for _, run := range runs {
		n, err := strconv.ParseUint(run, 10, 64)
		if err != nil {
			return nil, ErrMalformedRecord
		}
		if n == 0 {
			return nil, ErrInvalidPathElement
		}
		path = append(path, n)
	}

	return path, nil
}
