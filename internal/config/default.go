package config

import "time"

type ctxKey string

const (
	UsernameKey ctxKey = "username"
	DeviceKey   ctxKey = "device"
)

const (
	DefaultCacheTime = time.Hour

	// MaxRefreshTokens caps the number of live refresh records per user.
	// The oldest records by insertion order are evicted on login.
	MaxRefreshTokens = 5

	// UnknownDevice is recorded when the client sends no User-Agent.
	UnknownDevice = "Unknown"
)
