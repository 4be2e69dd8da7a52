package pinger

import (
	"log/slog"
	"time"

	"github.com/go-ping/ping"
)

// pingHostFunc is a package-level variable that defaults to the actual Ping function.
var pingHostFunc = Ping

// CheckReachable pings the target host once and reports whether it responded.
// Used as an opt-in preflight before any connection is opened.
func CheckReachable(host string, timeout time.Duration, parentLogger *slog.Logger) bool {
	pingerLogger := parentLogger.With(slog.String("component", "pinger"))
	pingerLogger.Info("Starting reachability check.", "host", host, "timeout", timeout)

	reachable := pingHostFunc(host, timeout)
	if reachable {
		pingerLogger.Debug("Host is reachable.", "host", host)
	} else {
		pingerLogger.Warn("Host is unreachable or timed out.", "host", host)
	}
	return reachable
}

// Ping returns true if host responds to a single echo request within timeout.
// Runs in unprivileged UDP mode so no root is required.
func Ping(host string, timeout time.Duration) bool {
	pinger, err := ping.NewPinger(host)
	if err != nil {
		return false
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(false)
	if err := pinger.Run(); err != nil {
		return false
	}
	return pinger.Statistics().PacketsRecv > 0
}
