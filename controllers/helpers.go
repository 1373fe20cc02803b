package controllers

import "github.com/gin-gonic/gin"

// sessionToken pulls the session token the storefront echoes back on every
// cart and checkout call. Query param wins over the header, matching the
// URL-over-stored precedence of the resolver.
func sessionToken(c *gin.Context) string {
	if st := c.Query("st"); st != "" {
		return st
	}
	return c.GetHeader("X-Session-Token")
}
