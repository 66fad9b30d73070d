package middleware

import (
	"net/http"
	"strings"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/utils"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token (or the token cookie) and
// stores the parsed claims in the gin context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"isSuccess": false, "message": "No autenticado"})
			return
		}

		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"isSuccess": false, "message": "Sesión inválida o expirada"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// AdminMiddleware rejects requests whose user is not an administrator. The
// flag is checked against the database row, not the token, so revoking admin
// takes effect immediately.
func AdminMiddleware(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		dni, err := utils.GetDNIFromClaims(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"isSuccess": false, "message": "No autenticado"})
			return
		}

		var user entity.Usuario
		if err := ctx.DB.First(&user, "dni = ?", dni).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"isSuccess": false, "message": "No autenticado"})
			return
		}

		if !user.EsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"isSuccess": false, "message": "Acceso restringido a administradores"})
			return
		}

		c.Next()
	}
}
