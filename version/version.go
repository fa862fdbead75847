package version

import "runtime"

// Set via ldflags at build time.
var (
	GitRelease    = "dev"
	GitCommit     = ""
	GitCommitDate = ""
)

// GoInfo is the Go runtime version the binary was built with.
var GoInfo = runtime.Version()
