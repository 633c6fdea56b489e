package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultSlowRequestThreshold = 200 * time.Millisecond

// slowRequestThreshold reads SLOW_REQUEST_MS, falling back to 200ms.
func slowRequestThreshold() time.Duration {
	if env := os.Getenv("SLOW_REQUEST_MS"); env != "" {
		if ms, err := strconv.Atoi(env); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultSlowRequestThreshold
}

func PerformanceLogger() gin.HandlerFunc {
	threshold := slowRequestThreshold()

	return func(c *gin.Context) {
		start := time.Now()

		// Process request
		c.Next()

		// Calculate latency
		latency := time.Since(start)

		// Log all requests with timing
		log.Printf("[PERF] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		// Alert for slow requests
		if latency > threshold {
			log.Printf("SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
