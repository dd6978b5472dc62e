package fmtplugin

import "os"

// Environment variable names used by the shebangfmt plugin protocol.
const (
	EnvPlugin     = "SHEBANGFMT_PLUGIN"
	EnvPluginMode = "SHEBANGFMT_PLUGIN_MODE"
)

// ModeMetadata asks the plugin to print its manifest and exit.
const ModeMetadata = "metadata"

// IsPlugin returns true if the current process was launched as a plugin by
// a host formatting framework.
func IsPlugin() bool {
	return os.Getenv(EnvPlugin) == "1"
}

// IsMetadataMode returns true if the plugin should output its manifest and exit.
func IsMetadataMode() bool {
	return os.Getenv(EnvPluginMode) == ModeMetadata
}
