// Package version holds the build version of kclpath.
package version
