// Command cpusched-demo replays a couple of canned arrival traces through
// the cpusched library and prints the scheduling decisions and resulting
// averages. It exists to make the library's external interface concrete;
// it is not a general-purpose simulator driver.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/go-foundations/cpusched"
	"github.com/go-foundations/cpusched/examples"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "verbose", false, "enable debug-level scheduler tracing")
	flag.Parse()

	cfg := cpusched.DefaultConfig()
	if verbose {
		cfg.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	examples.Run(cfg, examples.FCFSTrace())
	examples.Run(cfg, examples.RoundRobinTrace())
}
