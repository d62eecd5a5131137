package services

import "context"

type requestMetaKey struct{}

// RequestMeta describes the console request an action runs for.
type RequestMeta struct {
	TraceID   string
	IPAddress string
	UserAgent string
}

func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

func RequestMetaFrom(ctx context.Context) RequestMeta {
	if ctx == nil {
		return RequestMeta{}
	}
	meta, _ := ctx.Value(requestMetaKey{}).(RequestMeta)
	return meta
}

func getRequestID(ctx context.Context) string {
	return RequestMetaFrom(ctx).TraceID
}
