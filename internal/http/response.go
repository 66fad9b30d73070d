package http

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape of every API route.
type Envelope struct {
	IsSuccess bool        `json:"isSuccess"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message"`
}

func respondOK(c *gin.Context, data interface{}, message string) {
	c.JSON(200, Envelope{IsSuccess: true, Data: data, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{IsSuccess: false, Message: message})
}

// isUpdate reports whether a save payload addresses an existing row. Zero,
// negative and omitted ids all mean insert.
func isUpdate(id int64) bool {
	return id > 0
}
