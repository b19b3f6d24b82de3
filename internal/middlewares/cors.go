// Package middlewares holds the HTTP middleware shared by the API.
package middlewares

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// CORS allows browser clients from any origin to call the API.
func CORS() func(c *ginext.Context) {
	return func(c *ginext.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
