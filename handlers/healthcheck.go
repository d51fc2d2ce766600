package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckConnection reports whether the store is reachable.
func CheckConnection(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product catalog api is running"})
	}
}
