//go:build !debug

package mess

// assertHashConsistent is a no-op in non-debug builds. See debug.go.
func assertHashConsistent(*Position) {}
