package pathparse

import (
	"strings"
)

// Parts is a path decomposed into its prefix and hierarchy.
type Parts struct {
	// Prefix is empty for relative paths. Otherwise it always ends with "/".
	Prefix string `json:"prefix" yaml:"prefix"`
	// Hierarchy never ends with "/".
	Hierarchy string `json:"hierarchy" yaml:"hierarchy"`
}

// Parse decomposes path into [Parts].
func Parse(path string) Parts {
	prefix, hierarchy := Split(path)

	return Parts{Prefix: prefix, Hierarchy: hierarchy}
}

// IsAbsolute reports whether the parts have a prefix.
func (p Parts) IsAbsolute() bool {
	return p.Prefix != ""
}

// String joins the prefix and hierarchy back into a path.
func (p Parts) String() string {
	return p.Prefix + p.Hierarchy
}

// Split splits path into a prefix and a hierarchy. Backslashes are
// converted to forward slashes first, and trailing slashes are removed from
// the hierarchy. Split is total: any string, including "", has a valid
// decomposition.
//
//	Split("C:\\foo")       // "C:/", "foo"
//	Split("vfs123://foo/") // "vfs123://", "foo"
//	Split("foo/bar")       // "", "foo/bar"
func Split(path string) (prefix, hierarchy string) {
	p := toSlash(path)
	n := prefixLen(p)

	return p[:n], strings.TrimRight(p[n:], "/")
}

// Prefix returns the prefix of path. See [Split].
func Prefix(path string) string {
	prefix, _ := Split(path)

	return prefix
}

// Hierarchy returns the hierarchy of path. See [Split].
func Hierarchy(path string) string {
	_, hierarchy := Split(path)

	return hierarchy
}

// IsAbsolute reports whether path has a non-empty prefix.
func IsAbsolute(path string) bool {
	return Prefix(path) != ""
}

// Segments splits hierarchy on "/" and resolves it lexically: empty and "."
// segments are dropped, and ".." removes the preceding segment. A ".." with
// nothing left to remove is discarded, so the result never climbs above
// the start of the hierarchy.
func Segments(hierarchy string) []string {
	segments := []string{}

	for _, s := range strings.Split(toSlash(hierarchy), "/") {
		switch s {
		case "", ".":
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, s)
		}
	}

	return segments
}

// Normalize returns the shortest equivalent of path: separators are
// converted to "/", repeated separators are collapsed, and "." and ".."
// segments are resolved using [Segments]. The prefix is kept as is.
// Normalize is idempotent.
func Normalize(path string) string {
	prefix, hierarchy := Split(path)

	return prefix + strings.Join(Segments(hierarchy), "/")
}

// Append joins suffix onto the absolute path and normalizes the result.
//
// It returns a [*PathError] wrapping [ErrRequiresAbsoluteBase] if path is
// relative, or [ErrRejectsAbsoluteSuffix] if suffix is absolute.
func Append(path, suffix string) (string, error) {
	if !IsAbsolute(path) {
		return "", newPathError(ErrRequiresAbsoluteBase, "append", path, suffix)
	}

	if IsAbsolute(suffix) {
		return "", newPathError(ErrRejectsAbsoluteSuffix, "append", path, suffix)
	}

	return Normalize(path + "/" + suffix), nil
}

// Join appends each element of elems to base in order, as [Append] does.
// With no elements it returns the normalized base.
func Join(base string, elems ...string) (string, error) {
	if !IsAbsolute(base) {
		return "", newPathError(ErrRequiresAbsoluteBase, "join", append([]string{base}, elems...)...)
	}

	out := Normalize(base)
	for _, elem := range elems {
		var err error

		out, err = Append(out, elem)
		if err != nil {
			return "", err
		}
	}

	return out, nil
}

// Dirname returns the normalized parent of the absolute path. The parent of
// a prefix-only path is the prefix itself.
func Dirname(path string) (string, error) {
	if !IsAbsolute(path) {
		return "", newPathError(ErrRequiresAbsoluteBase, "dirname", path)
	}

	return Append(path, "..")
}

// RelativeTo returns the path of target relative to source. Both must be
// absolute.
//
// If the prefixes differ, or the paths share no leading segment, there is
// no meaningful relative path and target is returned unchanged. Otherwise
// the result starts with "../" for every source segment past the shared
// run, or with "./" when target is source or one of its descendants.
//
//	RelativeTo("/foo/bar", "/foo/baz")     // "../baz"
//	RelativeTo("/foo/bar", "/foo/bar/baz") // "./baz"
//	RelativeTo("/foo/bar", "/foo/bar")     // "./"
func RelativeTo(source, target string) (string, error) {
	sourcePrefix, sourceHierarchy := Split(source)
	targetPrefix, targetHierarchy := Split(target)

	if sourcePrefix == "" || targetPrefix == "" {
		return "", newPathError(ErrRequiresAbsoluteBase, "relative to", source, target)
	}

	sourceSegments := Segments(sourceHierarchy)
	targetSegments := Segments(targetHierarchy)

	common := 0
	for common < len(sourceSegments) && common < len(targetSegments) &&
		sourceSegments[common] == targetSegments[common] {
		common++
	}

	if sourcePrefix != targetPrefix || common == 0 {
		return target, nil
	}

	traverser := strings.Repeat("../", len(sourceSegments)-common)
	remainder := strings.Join(targetSegments[common:], "/")

	if traverser == "" {
		return "./" + remainder, nil
	}

	return traverser + remainder, nil
}
