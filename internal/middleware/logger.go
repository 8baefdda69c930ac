package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request, tagging authenticated calls with the
// caller's user id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		user := UserID(c)
		if user == "" {
			user = "-"
		}
		log.Printf("%s %s %d %v user=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), user)
	}
}
