package glbind

import "golang.org/x/sys/unix"

var threadID = unix.Gettid
