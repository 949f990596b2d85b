package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

type authRequest struct {
	Password string `json:"password"`
}

// Auth checks the site password so the client can unlock the game
func (s *Server) Auth(c *gin.Context) {
	if s.sitePassword == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgSiteNotConfigured})
		return
	}

	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgAuthFailed})
		return
	}

	if !s.passwordMatches(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": msgInvalidPassword})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "authToken": "authenticated"})
}

// requireSitePassword rejects requests without the site password header
func (s *Server) requireSitePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.GetHeader(headerSitePassword)
		if password == "" || !s.passwordMatches(password) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
			return
		}
		c.Next()
	}
}

func (s *Server) passwordMatches(password string) bool {
	if s.sitePassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.sitePassword)) == 1
}
