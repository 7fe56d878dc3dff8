package utils

import "time"

// TechnicianCachePrefix is the prefix used for Redis technician profile cache keys.
const TechnicianCachePrefix = "technician:"

// TechnicianCacheTTL is the time-to-live for cached technician profiles.
const TechnicianCacheTTL = 10 * time.Minute
