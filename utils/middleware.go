package utils

import (
	"github.com/HenryDP/UnaAventuraMasCR/models"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/exp/slices"
)

var adminRoles = []string{models.RoleSuperAdmin, models.RoleEditor}

// AdminOnlyMiddleware ensures the requester holds an editor or super-admin
// session that has not been revoked.
func AdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if !slices.Contains(adminRoles, claims.Role) {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"error": "forbidden", "message": "se requiere acceso de administrador"})
		return
	}
	if token := jwt.GetVerifiedToken(ctx); token != nil && SessionRevoked(string(token.Token)) {
		ctx.StopWithJSON(iris.StatusUnauthorized, iris.Map{"error": "unauthorized", "message": "sesión cerrada"})
		return
	}
	ctx.Values().Set("actorID", claims.ID)
	ctx.Next()
}

// SuperAdminOnlyMiddleware restricts team management to the super admin.
func SuperAdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != models.RoleSuperAdmin {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"error": "forbidden", "message": "se requiere acceso de super administrador"})
		return
	}
	ctx.Next()
}
