// Package consts holds build-wide constants shared across the runtime:
// the version string embedders can surface (e.g. from a "version" base
// library entry) and the debug-logging gate logger reads.
package consts

const VERSION = "0.1.0"

// Debug gates logger.I/E/W. Off by default; embedders that build with
// -ldflags "-X github.com/embedlang/lkcore/consts.Debug=true" won't work
// since this is a bool, not a string — set it from an init() in a build
// tag file, or flip it directly for local debugging.
var Debug = false
