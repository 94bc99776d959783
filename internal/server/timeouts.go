package server

import "time"

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// defaultShutdownTimeout applies when the config leaves the timeout unset.
var defaultShutdownTimeout = 10 * time.Second
