// index for context values
package wctx

import (
	"context"
)

type key int

const (
	chainIDKey key = 1
	methodKey  key = 2
	reqIDKey   key = 3
	versionKey key = 4
)

func WithChainID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, chainIDKey, id)
}

func ChainID(ctx context.Context) uint64 {
	id, _ := ctx.Value(chainIDKey).(uint64)
	return id
}

// json-rpc method of the in flight request
func WithMethod(ctx context.Context, m string) context.Context {
	return context.WithValue(ctx, methodKey, m)
}

func Method(ctx context.Context) string {
	m, _ := ctx.Value(methodKey).(string)
	return m
}

func WithReqID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey, id)
}

func ReqID(ctx context.Context) string {
	id, _ := ctx.Value(reqIDKey).(string)
	return id
}

func WithVersion(ctx context.Context, v string) context.Context {
	return context.WithValue(ctx, versionKey, v)
}

func Version(ctx context.Context) string {
	v, _ := ctx.Value(versionKey).(string)
	return v
}
