package config

import "time"

type Server interface {
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DSN() string
	MigrationDirectory() string
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
}
