package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandmixture/profile-card/internal/entity"
	"github.com/grandmixture/profile-card/internal/service"
)

const testAPIKey = "narayan"

type stubProfileService struct {
	png       []byte
	renderErr error
	lastOpts  service.RenderOptions

	info    *entity.CharacterInfoResponse
	infoErr error
}

func (s *stubProfileService) RenderProfileCard(ctx context.Context, uid, region string, opts service.RenderOptions) ([]byte, error) {
	s.lastOpts = opts
	return s.png, s.renderErr
}

func (s *stubProfileService) CharacterInfo(ctx context.Context, uid, region string) (*entity.CharacterInfoResponse, error) {
	return s.info, s.infoErr
}

func setupRouter(stub *stubProfileService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return InitRoutes(NewProfileHandler(stub, testAPIKey, 150))
}

func doRequest(router *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestOutfitImageValidation(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing uid",
			url:        "/outfit-image?region=ind&key=narayan",
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing uid or region",
		},
		{
			name:       "missing region",
			url:        "/outfit-image?uid=12345&key=narayan",
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing uid or region",
		},
		{
			name:       "missing key",
			url:        "/outfit-image?uid=12345&region=ind",
			wantStatus: http.StatusForbidden,
			wantError:  "Invalid or missing API key",
		},
		{
			name:       "wrong key",
			url:        "/outfit-image?uid=12345&region=ind&key=wrong",
			wantStatus: http.StatusForbidden,
			wantError:  "Invalid or missing API key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&stubProfileService{})

			w := doRequest(router, tt.url)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, errorBody(t, w))
		})
	}
}

func TestOutfitImageSuccess(t *testing.T) {
	stub := &stubProfileService{png: []byte("png-bytes")}
	router := setupRouter(stub)

	w := doRequest(router, "/outfit-image?uid=12345&region=ind&key=narayan")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", w.Body.String())
}

func TestOutfitImageOptionDefaults(t *testing.T) {
	stub := &stubProfileService{png: []byte("png")}
	router := setupRouter(stub)

	doRequest(router, "/outfit-image?uid=12345&region=ind&key=narayan")

	assert.Equal(t, 150, stub.lastOpts.WeaponSize)
	assert.True(t, stub.lastOpts.RemoveBackground)
}

func TestOutfitImageOptionOverrides(t *testing.T) {
	stub := &stubProfileService{png: []byte("png")}
	router := setupRouter(stub)

	doRequest(router, "/outfit-image?uid=12345&region=ind&key=narayan&weapon_size=200&remove_bg=false&char_width=10&char_height=10")

	assert.Equal(t, 200, stub.lastOpts.WeaponSize)
	assert.False(t, stub.lastOpts.RemoveBackground)
}

func TestOutfitImageErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantError string
	}{
		{
			name:      "player info unavailable",
			err:       entity.ErrPlayerInfoUnavailable,
			wantError: "Failed to fetch player info",
		},
		{
			name:      "background unavailable",
			err:       entity.ErrBackgroundUnavailable,
			wantError: "Failed to fetch background image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&stubProfileService{renderErr: tt.err})

			w := doRequest(router, "/outfit-image?uid=12345&region=ind&key=narayan")

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.wantError, errorBody(t, w))
		})
	}
}

func TestCharacterInfoSuccess(t *testing.T) {
	stub := &stubProfileService{
		info: &entity.CharacterInfoResponse{
			SkillID:       9,
			PngURL:        "https://characters.example.com/kelly.png",
			CharacterName: "Kelly",
			CharacterInfo: entity.CharacterDetails{
				Description:      "The sprinter",
				SkillName:        "Dash",
				SkillDescription: "Sprinting speed increased",
			},
			CharacterConfig: entity.CharacterRect,
		},
	}
	router := setupRouter(stub)

	w := doRequest(router, "/character-info?uid=12345&region=ind&key=narayan")

	require.Equal(t, http.StatusOK, w.Code)

	var body entity.CharacterInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, *stub.info, body)
}

func TestCharacterInfoErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "no skill",
			err:        entity.ErrSkillNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "Skill ID not found",
		},
		{
			name:       "no character image",
			err:        entity.ErrCharacterImageMissing,
			wantStatus: http.StatusNotFound,
			wantError:  "Png Image not found in character response",
		},
		{
			name:       "character service down",
			err:        entity.ErrCharacterInfoUnavailable,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to get character info",
		},
		{
			name:       "player info unavailable",
			err:        entity.ErrPlayerInfoUnavailable,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to fetch player info",
		},
		{
			name:       "unexpected failure",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Exception: " + assert.AnError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&stubProfileService{infoErr: tt.err})

			w := doRequest(router, "/character-info?uid=12345&region=ind&key=narayan")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, errorBody(t, w))
		})
	}
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(&stubProfileService{})

	w := doRequest(router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
