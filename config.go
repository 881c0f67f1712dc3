package cpusched

import "github.com/rs/zerolog"

// Config holds construction-time configuration for a Scheduler. It carries
// only ambient/diagnostic knobs; the scheduler itself has no file, network,
// or environment-variable surface.
type Config struct {
	// Logger receives dispatch traces at Debug level and programmer-error
	// diagnostics at Error level. The zero value is a no-op logger, so a
	// caller that never sets it gets silent operation by default.
	Logger zerolog.Logger
}

// DefaultConfig returns a Config with a disabled (no-op) logger.
func DefaultConfig() Config {
	return Config{Logger: zerolog.Nop()}
}
