package auth

import (
	"net/http"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/auth/model/dto"
	"inn/internal/domains/auth/service"
	"inn/shared/constant"
	"inn/shared/validator"
	"inn/transport/http/cookie"
	"inn/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Auth, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/session", handler.CreateSession)
		r.Post("/logout", handler.Logout)
	})
}

// CreateSession issues a session cookie for the supplied identity.
// @Summary Create a session
// @Description Sign a session token for the given identity and set it as an
// @Description HTTP-only cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Create Session Request"
// @Success 200 {object} dto.CreateSessionResponse "Session created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/session [post]
func (handler *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSession")
	defer scope.End()

	req := dto.CreateSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	token, err := handler.service.CreateSession(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create session")

		response.WithError(w, err)

		return
	}

	cookie.SetSession(w, handler.cfg, token)

	scope.AddEvent("Session created for " + req.Email)

	response.WithJSON(w, http.StatusOK, dto.CreateSessionResponse{Success: true})
}

// Logout clears the session cookie.
// @Summary Log out
// @Description Expire the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.CreateSessionResponse "Session cleared"
// @Router /v1/auth/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	cookie.ClearSession(w, handler.cfg)

	scope.AddEvent("Session cleared")

	response.WithJSON(w, http.StatusOK, dto.CreateSessionResponse{Success: true})
}
