// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix used for Redis availability cache keys.
const AvailabilityCachePrefix = "avail:"

// AvailabilityCacheTTL is the time-to-live for cached availability reads.
// Commit-time validation never reads through this cache.
const AvailabilityCacheTTL = 30 * time.Second

// ChatContextPrefix is the prefix used for Redis conversation-context keys.
const ChatContextPrefix = "chat:ctx:"

// ChatContextTTL is the time-to-live for conversation contexts.
const ChatContextTTL = 24 * time.Hour
