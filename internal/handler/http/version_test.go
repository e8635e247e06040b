package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/lacnutry/models"
)

func TestGetAppVersion_WritesVersionInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, false)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionInfo{Version: "1.2.3", Date: "N/A", Commit: "abc"})

	rec := f.do(http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.2.3","date":"N/A","commit":"abc"}`, rec.Body.String())
}
