package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/service"
)

func TestNewHandlers_HTTPHandlerCreated(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Server.HTTPAddress = "localhost:8080"

	handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddressIsAnError(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, &config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, handlers)
}
