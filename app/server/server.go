package server

import (
	"github.com/gin-gonic/gin"
)

// New returns an HTTP handler serving the published digest archive as static
// files, index.html included. Used by the optional --serve mode to preview
// the output directory locally.
func New(outputDir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.Static("/digests", outputDir)
	engine.GET("/", func(c *gin.Context) {
		c.Redirect(302, "/digests/index.html")
	})

	return engine
}
