package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RecoverJSON turns a panic into the same {error} body as any other 500.
func RecoverJSON(c *gin.Context, recovered any) {
	msg := "erro interno"
	switch v := recovered.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	}
	RespondError(c, msg, http.StatusInternalServerError)
	c.Abort()
}
