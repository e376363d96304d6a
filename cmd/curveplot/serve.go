package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// serveChart blocks serving the rendered chart page until the process
// is killed.
func serveChart(addr string, page []byte) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
	log.Printf("serving chart on %s", addr)
	return router.Run(addr)
}
