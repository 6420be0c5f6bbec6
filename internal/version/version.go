package version

// Version is the version of the proxy, overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/teamwork-proxy/internal/version.Version=...".
var Version = "0.1.0-dev"
