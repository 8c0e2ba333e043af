package internal

// Version is the application version, overridden at build time via
// -ldflags "-X codeberg.org/snonux/vocadrill/internal.Version=...".
var Version = "0.1.0"
