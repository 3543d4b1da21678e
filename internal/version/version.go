// internal/version/version.go
package version

// Version is the picalc release string, overridable at build time with
// -ldflags "-X picalc/internal/version.Version=...".
var Version = "0.2.0"
