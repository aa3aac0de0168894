package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
)

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, testServerConfig(), testImagesConfig(), log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, testServerConfig(), h.server)
	assert.Equal(t, testImagesConfig(), h.images)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, testServerConfig(), testImagesConfig(), logger.Nop())
	h2 := NewHandler(&service.Services{}, testServerConfig(), testImagesConfig(), logger.Nop())

	assert.NotSame(t, h1, h2)
}
