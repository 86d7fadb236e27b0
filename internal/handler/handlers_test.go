package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/mock"
	"github.com/MKhiriev/go-poster-keeper/internal/service"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &service.Services{
		AuthService:    mock.NewMockAuthService(ctrl),
		PosterService:  mock.NewMockPosterService(ctrl),
		AppInfoService: mock.NewMockAppInfoService(ctrl),
	}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both", cfg: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "grpc only", cfg: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "none", cfg: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(newTestServices(t), tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_MissingServices(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	_, err := NewHandlers(nil, cfg, logger.Nop())
	require.ErrorIs(t, err, errNoServices)

	partial := newTestServices(t)
	partial.PosterService = nil
	_, err = NewHandlers(partial, cfg, logger.Nop())
	require.ErrorIs(t, err, errNoServices)
}
