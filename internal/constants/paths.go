// Package constants contains names shared across jsonsettings packages.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "jsonsettings"

	// LogFilename is the default log file name.
	LogFilename = "jsonsettings.log"

	// ConfigFilename is the default application config file name.
	ConfigFilename = "config.yml"
)
