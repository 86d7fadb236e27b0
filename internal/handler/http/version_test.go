package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-poster-keeper/models"
)

func TestGetServerVersion_WritesAppInfo(t *testing.T) {
	h, m := newTestHandler(t)
	info := models.AppInfo{Version: "v1.2.3", ServerTime: 1_700_000_000_000}
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(info)

	rec := serve(t, h, http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.AppInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, info, got)
}
