//go:build !linux && !windows

package glbind

var threadID = func() int { return 0 }
