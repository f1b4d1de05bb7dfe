package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads the :id path parameter. On failure it writes the 400
// response itself and reports false.
func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

func currentUserID(c *gin.Context) int {
	userID, _ := c.Get("userID")
	id, _ := userID.(int)
	return id
}

func isAdmin(c *gin.Context) bool {
	role, _ := c.Get("role")
	r, _ := role.(string)
	return r == "admin"
}
