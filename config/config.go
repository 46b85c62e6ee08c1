package config

import (
	_ "embed"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("UHUB_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("UHUB_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("UHUB_LISTEN")
}

func GetPort() int {
	if port := os.Getenv("UHUB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 3000
}

// GetSecret returns the HMAC key used to sign and verify bearer tokens.
// The fallback is for development only; deployments must set UHUB_JWT_SECRET.
func GetSecret() string {
	if secret := os.Getenv("UHUB_JWT_SECRET"); secret != "" {
		return secret
	}
	return "change_this_secret_in_production"
}
