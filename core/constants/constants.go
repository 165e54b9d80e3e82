package constants

import "time"

// Request handling
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultTimeout        = 10 * time.Second
)

// Echo context keys
const (
	ContextTokenData = "token_data"
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Database pool defaults
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Redis key prefixes
const (
	RedisKeyLoginAttempt   = "login_attempt:"
	RedisKeyTokenBlacklist = "token_blacklist:"
)

// Login throttling
const (
	MaxLoginAttempts   = 10
	LoginAttemptWindow = 15 * time.Minute
)

// Upload handling
const (
	UploadBaseDir       = "uploads"
	UploadFilenameBytes = 16
	MaxUploadImages     = 10
)

// AllowedImageExtensions is the allow-list applied to image upload fields.
var AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// AllowedVideoExtensions is the allow-list applied to video upload fields.
var AllowedVideoExtensions = []string{".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm"}
