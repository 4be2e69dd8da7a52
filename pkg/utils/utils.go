// pkg/utils/utils.go
package utils

import (
	"log/slog"
	"runtime"

	"golang.org/x/sys/unix"
)

// CheckFileDescriptorLimit warns if the connection count might exceed the open file limit on POSIX.
func CheckFileDescriptorLimit(logger *slog.Logger, connections int) {
	if runtime.GOOS == "windows" {
		return
	}
	var rLimit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rLimit); err == nil {
		if uint64(connections) >= rLimit.Cur-100 { // 100 is a safety margin
			logger.Warn("Connection count is close to the file descriptor limit.",
				"connections", connections,
				"limit", rLimit.Cur,
			)
		}
	}
}
