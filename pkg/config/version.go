package config

// Version is the version of the binary, set at build time via ldflags.
var Version string
