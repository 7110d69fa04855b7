package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/service"
	"github.com/Alianda23/art-exhibit-hub-72/internal/store"
	"github.com/Alianda23/art-exhibit-hub-72/internal/token"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// parseTokenByFixture resolves the fixture token strings used across the
// router tests: "admin-token" is an administrator, "user-token" a regular
// account, anything else fails verification.
func parseTokenByFixture(ctx context.Context, raw string) (models.Token, error) {
	switch raw {
	case "admin-token":
		return models.Token{SignedString: raw, UserID: 1, IsAdmin: true}, nil
	case "user-token":
		return models.Token{SignedString: raw, UserID: 2}, nil
	case "expired-token":
		return models.Token{}, token.ErrTokenExpired
	default:
		return models.Token{}, token.ErrTokenMalformed
	}
}

func newTestServices() *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: parseTokenByFixture,
			registerFn: func(ctx context.Context, f *form.Form) (models.User, error) {
				if missing := f.Missing("name", "email", "password"); len(missing) > 0 {
					return models.User{}, service.NewValidationError(missing)
				}
				return models.User{ID: 10, Name: f.Get("name"), Email: f.Get("email")}, nil
			},
			loginFn: func(ctx context.Context, f *form.Form) (models.User, error) {
				if missing := f.Missing("email", "password"); len(missing) > 0 {
					return models.User{}, service.NewValidationError(missing)
				}
				return models.User{ID: 10, Email: f.Get("email")}, nil
			},
		},
		ArtworkService:    &mockArtworkService{},
		ExhibitionService: &mockExhibitionService{},
		ContactService:    &mockContactService{},
		PaymentService:    &mockPaymentService{},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, t.TempDir(), logger.Nop())
}

func doRequest(h *Handler, method, target, contentType, body string, headers map[string]string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	for k, v := range headers {
		r.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, r)
	return w
}

func TestIndex(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodGet, "/", "", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Welcome to the Art Gallery API"}`, w.Body.String())
}

func TestRegisterMissingPassword(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodPost, "/register", "application/json",
		`{"name":"A","email":"a@b.com"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "password")
	// errors still carry CORS headers
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegisterSuccess(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodPost, "/register", "application/json",
		`{"name":"A","email":"a@b.com","password":"secret"}`, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(10), resp.ID)
}

func TestLoginURLEncodedBody(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodPost, "/login", "application/x-www-form-urlencoded",
		"email=a%40b.com&password=secret", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "stub-token", resp.Token)
	assert.Equal(t, "a@b.com", resp.User.Email)
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	services := newTestServices()
	services.AuthService.(*mockAuthService).adminLoginFn = func(ctx context.Context, f *form.Form) (models.User, error) {
		return models.User{}, service.ErrNotAdmin
	}
	h := newTestHandler(t, services)

	w := doRequest(h, http.MethodPost, "/admin-login", "application/json",
		`{"email":"a@b.com","password":"secret"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateArtworkAuthLadder(t *testing.T) {
	services := newTestServices()
	services.ArtworkService.(*mockArtworkService).createFn = func(ctx context.Context, f *form.Form) (models.Artwork, error) {
		return models.Artwork{ID: 1, Title: f.Get("title")}, nil
	}
	h := newTestHandler(t, services)

	body := `{"title":"T","artist":"A","price":"10"}`

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nonsense", http.StatusUnauthorized},
		{"expired token", "Bearer expired-token", http.StatusUnauthorized},
		{"non-admin token", "Bearer user-token", http.StatusForbidden},
		{"admin token", "Bearer admin-token", http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.authHeader != "" {
				headers["Authorization"] = tt.authHeader
			}

			w := doRequest(h, http.MethodPost, "/artworks", "application/json", body, headers)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCreateArtworkMultipart(t *testing.T) {
	var gotForm *form.Form
	services := newTestServices()
	services.ArtworkService.(*mockArtworkService).createFn = func(ctx context.Context, f *form.Form) (models.Artwork, error) {
		gotForm = f
		return models.Artwork{ID: 2, Title: f.Get("title")}, nil
	}
	h := newTestHandler(t, services)

	boundary := "testboundary"
	body := strings.Join([]string{
		"--" + boundary,
		`Content-Disposition: form-data; name="title"`,
		"",
		"Nightfall",
		"--" + boundary,
		`Content-Disposition: form-data; name="image"; filename="x.png"`,
		"Content-Type: image/png",
		"",
		"PNGDATA",
		"--" + boundary + "--",
		"",
	}, "\r\n")

	w := doRequest(h, http.MethodPost, "/artworks",
		"multipart/form-data; boundary="+boundary, body,
		map[string]string{"Authorization": "Bearer admin-token"})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, gotForm)
	assert.Equal(t, "Nightfall", gotForm.Get("title"))
	require.NotNil(t, gotForm.File)
	assert.Equal(t, "x.png", gotForm.File.Filename)
	assert.Equal(t, []byte("PNGDATA"), gotForm.File.Data)
}

func TestGetArtworkNotFound(t *testing.T) {
	services := newTestServices()
	services.ArtworkService.(*mockArtworkService).getFn = func(ctx context.Context, id int64) (models.Artwork, error) {
		return models.Artwork{}, store.ErrArtworkNotFound
	}
	h := newTestHandler(t, services)

	w := doRequest(h, http.MethodGet, "/artworks/99", "", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestListArtworksEmptySliceNotNull(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodGet, "/artworks", "", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestPaymentsRequireAuth(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodPost, "/payments", "application/json",
		`{"phoneNumber":"254700000000","amount":"10"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(h, http.MethodPost, "/payments", "application/json",
		`{"phoneNumber":"254700000000","amount":"10"}`,
		map[string]string{"Authorization": "Bearer user-token"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaticMissingFile(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodGet, "/static/uploads/missing.png", "", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"file not found"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticServesFile(t *testing.T) {
	services := newTestServices()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "uploads"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uploads", "a.png"), []byte{0x89, 0x50}, 0o644))

	h := NewHandler(services, dir, logger.Nop())

	w := doRequest(h, http.MethodGet, "/static/uploads/a.png", "", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 0x50}, w.Body.Bytes())
}

func TestStaticRejectsTraversal(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodGet, "/static/../secrets.txt", "", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOptionsPreflight(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodOptions, "/artworks", "", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	assert.Empty(t, w.Body.String())
}

func TestUnknownRouteNotFound(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodGet, "/no-such-route", "", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

// stubMessageRepository backs the real contact service in router tests so
// the status-update field contract is exercised end-to-end.
type stubMessageRepository struct {
	gotID     int64
	gotStatus string
}

func (s *stubMessageRepository) CreateMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	return message, nil
}

func (s *stubMessageRepository) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return nil, nil
}

func (s *stubMessageRepository) UpdateMessageStatus(ctx context.Context, id int64, status string) error {
	s.gotID, s.gotStatus = id, status
	return nil
}

func TestUpdateMessageStatusByMessageID(t *testing.T) {
	repo := &stubMessageRepository{}
	services := newTestServices()
	services.ContactService = service.NewContactService(repo, logger.Nop())
	h := newTestHandler(t, services)

	w := doRequest(h, http.MethodPost, "/messages/status", "application/json",
		`{"message_id":12,"status":"read"}`,
		map[string]string{"Authorization": "Bearer admin-token"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(12), repo.gotID)
	assert.Equal(t, "read", repo.gotStatus)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
}

func TestUpdateMessageStatusMissingMessageID(t *testing.T) {
	services := newTestServices()
	services.ContactService = service.NewContactService(&stubMessageRepository{}, logger.Nop())
	h := newTestHandler(t, services)

	w := doRequest(h, http.MethodPost, "/messages/status", "application/json",
		`{"status":"read"}`,
		map[string]string{"Authorization": "Bearer admin-token"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message_id")
}

func TestMessagesRequireAdmin(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	w := doRequest(h, http.MethodGet, "/messages", "", "",
		map[string]string{"Authorization": "Bearer user-token"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(h, http.MethodGet, "/messages", "", "",
		map[string]string{"Authorization": "Bearer admin-token"})
	assert.Equal(t, http.StatusOK, w.Code)
}
