package middleware

import (
	"context"
	"net/http"

	"inn/config"
	"inn/infras/jwt"
	"inn/infras/otel"
	"inn/permissions"
	"inn/shared/constant"
	"inn/shared/failure"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Session guards protected routes behind the session cookie.
type Session interface {
	Guard(http.Handler) http.Handler
}

type sessionImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewSessionMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) Session {
	return &sessionImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Guard verifies the session cookie on protected endpoints. The check runs
// before the handler, so an unauthenticated request never reaches the store.
func (m *sessionImpl) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "session.middleware")

		rctx := chi.RouteContext(ctx)
		method := request.Method
		path := rctx.Routes.Find(chi.NewRouteContext(), method, request.URL.Path)

		scope.SetAttributes(map[string]any{
			"middleware.type": "session",
			"http.path":       path,
			"http.method":     method,
		})

		if m.permission == nil || !m.permission.FindPermissions(path, method).Protected {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		sessionCookie, err := request.Cookie(m.cfg.Session.CookieName)
		if err != nil {
			err := failure.Unauthorized(constant.ResponseErrorUnauthenticated)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.ValidateSessionToken(sessionCookie.Value)
		if err != nil {
			err := failure.Unauthorized(constant.ResponseErrorUnauthenticated)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if claims.Email == constant.Empty {
			err := failure.Unauthorized(constant.ResponseErrorUnauthenticated)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
