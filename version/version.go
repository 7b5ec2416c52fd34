// Package version holds the build version of the agent.
package version

// Version is set at build time via -ldflags "-X .../version.Version=x.y.z".
var Version = "0.3.0"
