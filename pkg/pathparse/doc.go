// Package pathparse provides lexical operations on path strings.
//
// A path is decomposed into a prefix and a hierarchy. The prefix identifies
// the root of the path and is one of a URL-like scheme ("vfs://"), a drive
// letter ("C:/"), the POSIX root ("/"), or empty for relative paths. The
// hierarchy is the slash-separated list of segments that follows.
//
// Backslashes are accepted as separators anywhere in the input and are
// always converted to forward slashes. No function in this package touches
// the filesystem.
package pathparse
