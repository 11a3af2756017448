package rbac

import "context"

type ctxKey int

const (
	ctxKeyRole ctxKey = iota
	ctxKeySubject
	ctxKeyName
)

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, ctxKeyRole, role)
}

func RoleFromContext(ctx context.Context) string {
	s, _ := ctx.Value(ctxKeyRole).(string)
	return s
}

// WithSubject records the authenticated learner's email.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ctxKeySubject, sub)
}

func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(ctxKeySubject).(string)
	return s
}

// WithName records the display name used on result rows and reports.
func WithName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ctxKeyName, name)
}

func NameFromContext(ctx context.Context) string {
	s, _ := ctx.Value(ctxKeyName).(string)
	return s
}
