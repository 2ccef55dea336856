package service

import (
	"context"
	"fmt"
	"inn/config"
	"inn/infras/jwt"
	"inn/infras/otel"
	"inn/internal/domains/auth/model/dto"
	"inn/shared/constant"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	CreateSession(ctx context.Context, req dto.CreateSessionRequest) (string, error)
}

type serviceImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// CreateSession signs a session token for the supplied identity. The identity
// payload is taken at face value; there is no credential check here.
func (s *serviceImpl) CreateSession(ctx context.Context, req dto.CreateSessionRequest) (token string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	token, err = s.jwtService.GenerateSessionToken(req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session token")

		return constant.Empty, fmt.Errorf("failed to generate session token: %w", err)
	}

	return token, nil
}
