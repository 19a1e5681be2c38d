package api

import (
	"context"
)

type keyType string

const adminUserKey keyType = "adminUser"

// ctxWithAdminUser records the authenticated admin username on the context
func ctxWithAdminUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminUserKey, username)
}

// ctxAdminUser retrieves the authenticated admin username, if any
func ctxAdminUser(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(adminUserKey).(string)
	return value, ok
}
