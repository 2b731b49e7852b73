package config

// AppVersion is rewritten by the bumpversion task in scripts/tasks.
var AppVersion = "0.4.2"

const (
	AppName = "minecode"
	LogFile = "minecode.log"
	CfgFile = "config.toml"
)
