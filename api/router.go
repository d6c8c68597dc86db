package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"coinapi/service"
)

// NewRouter builds the gin engine with middleware and all routes registered
func NewRouter(users service.UserService, transfers service.TransferService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	h := NewUserHandler(users, transfers)
	r.POST("/users/:userName", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:userName", h.GetUser)
	r.PUT("/users/:userName/:toUserName/:coinsToTransfer", h.Transfer)

	return r
}
