package pathparse

import "strings"

// prefixLen returns the length of the prefix at the start of p, which must
// already use forward slashes. Alternatives are tried in order: a scheme of
// two or more ASCII alphanumerics followed by "://", an optional drive
// letter and colon followed by "/", and finally a bare "/".
func prefixLen(p string) int {
	n := 0
	for n < len(p) && isAlnum(p[n]) {
		n++
	}

	if n >= 2 && strings.HasPrefix(p[n:], "://") {
		return n + len("://")
	}

	if len(p) >= 3 && isLetter(p[0]) && p[1] == ':' && p[2] == '/' {
		return 3
	}

	if len(p) >= 1 && p[0] == '/' {
		return 1
	}

	return 0
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isLetter(c) || ('0' <= c && c <= '9')
}

// toSlash converts every backslash in p to a forward slash.
func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
