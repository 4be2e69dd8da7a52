package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// Config holds all configuration settings for the application.
type Config struct {
	Host        string
	Port        int
	Connections int
	MaxStall    time.Duration
	Timeout     time.Duration
	Strict      bool
	Ping        bool
	OutputFile  string
	LogFile     string
	LogLevel    string
}

// Load parses command-line flags and returns a populated Config struct.
func Load() (*Config, error) {
	host := flag.String("host", "localhost", "Host the target server is running on.")
	port := flag.Int("port", 8080, "TCP port the target server is listening on.")
	connections := flag.Int("connections", 1, "Number of concurrent connections to open.")
	maxStall := flag.Duration("max-stall", 5*time.Second, "Upper bound of the two random idle stalls per connection.")
	timeout := flag.Duration("timeout", 0, "Dial and per-operation deadline. 0 disables deadlines entirely.")
	strict := flag.Bool("strict", false, "Exit non-zero if any connection fails.")
	doPing := flag.Bool("ping", false, "Check host reachability before opening connections.")
	outputFile := flag.String("output", "", "Optional CSV file for per-connection results.")
	logLevel := flag.String("loglevel", "INFO", "Log level: DEBUG, INFO, WARN or ERROR.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "A concurrent TCP load harness: opens N timed request/response exchanges against a running server.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *host == "" {
		return nil, fmt.Errorf("--host must not be empty")
	}
	if *port < 1 || *port > 65535 {
		return nil, fmt.Errorf("--port must be in the range 1-65535")
	}
	// 0 is a valid boundary: launch no workers and return immediately.
	if *connections < 0 {
		return nil, fmt.Errorf("--connections must not be negative")
	}
	if *maxStall < 0 {
		return nil, fmt.Errorf("--max-stall must not be negative")
	}
	if *timeout < 0 {
		return nil, fmt.Errorf("--timeout must not be negative")
	}

	cfg := &Config{
		Host:        *host,
		Port:        *port,
		Connections: *connections,
		MaxStall:    *maxStall,
		Timeout:     *timeout,
		Strict:      *strict,
		Ping:        *doPing,
		OutputFile:  *outputFile,
		LogFile:     "loadharness.log",
		LogLevel:    *logLevel,
	}

	return cfg, nil
}
