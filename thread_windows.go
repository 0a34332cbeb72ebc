package glbind

import "golang.org/x/sys/windows"

var threadID = func() int {
	return int(windows.GetCurrentThreadId())
}
