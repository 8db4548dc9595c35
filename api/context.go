package api

import (
	"context"
)

type keyType string

const adminUserKey keyType = "adminUser"

// ctxWithAdminUser records the authenticated admin subject on the context
func ctxWithAdminUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminUserKey, username)
}

// adminUserFromCtx retrieves the authenticated admin subject, if any
func adminUserFromCtx(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(adminUserKey).(string)
	return username, ok
}
