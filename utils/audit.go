package utils

import (
	"encoding/json"
	"net"

	"github.com/HenryDP/UnaAventuraMasCR/models"
	"github.com/HenryDP/UnaAventuraMasCR/storage"
	"github.com/kataras/iris/v12"
)

// Audit records an admin action with before/after snapshots. Best-effort:
// a failed audit write never blocks the action itself.
func Audit(ctx iris.Context, action, resourceType, resourceID string, before interface{}, after interface{}) {
	if storage.DB == nil {
		return
	}
	var beforeStr, afterStr string
	if before != nil {
		if b, err := json.Marshal(before); err == nil {
			beforeStr = string(b)
		}
	}
	if after != nil {
		if a, err := json.Marshal(after); err == nil {
			afterStr = string(a)
		}
	}
	var actorID, actorRole string
	if claims := CurrentSession(ctx); claims != nil {
		actorID = claims.ID
		actorRole = claims.Role
	}
	entry := models.AuditLog{
		ActorID:      actorID,
		ActorRole:    actorRole,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		BeforeJSON:   beforeStr,
		AfterJSON:    afterStr,
		IPAddress:    clientIP(ctx),
	}
	storage.DB.Create(&entry)
}

func clientIP(ctx iris.Context) string {
	if ip := ctx.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	ip, _, _ := net.SplitHostPort(ctx.RemoteAddr())
	return ip
}
