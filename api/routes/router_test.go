package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/logixport/logixport-backend/api/web"
	"github.com/logixport/logixport-backend/internal/admin"
	"github.com/logixport/logixport-backend/internal/auth"
	"github.com/logixport/logixport-backend/internal/documents"
	"github.com/logixport/logixport-backend/internal/incoterms"
	"github.com/logixport/logixport-backend/internal/shipments"
	"github.com/logixport/logixport-backend/internal/tariffs"
	"github.com/logixport/logixport-backend/internal/users"
	pkgAuth "github.com/logixport/logixport-backend/pkg/auth"
	"github.com/logixport/logixport-backend/pkg/config"
	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
	"github.com/logixport/logixport-backend/pkg/logger"
	"github.com/logixport/logixport-backend/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubUserLoader map[uint]*models.User

func (s stubUserLoader) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("user %d not found", id)
	}
	return user, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest, clientIP string) (*auth.LoginResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Me(ctx context.Context, userID uint) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID, Email: "me@logixport.test"}, nil
}

type stubRegisterService struct{}

func (stubRegisterService) Register(ctx context.Context, req auth.RegisterRequest) (*users.UserDTO, error) {
	return &users.UserDTO{ID: 1, Email: req.Email}, nil
}

type stubShipmentsService struct{}

func (stubShipmentsService) Create(ctx context.Context, req shipments.CreateShipmentRequest) (*shipments.ShipmentDTO, error) {
	panic("unimplemented")
}

func (stubShipmentsService) ListByClient(ctx context.Context, clientID uint) ([]shipments.ShipmentDTO, error) {
	return []shipments.ShipmentDTO{}, nil
}

func (stubShipmentsService) UpdateStatus(ctx context.Context, shipmentID uint, req shipments.UpdateStatusRequest) (*shipments.ShipmentDTO, error) {
	panic("unimplemented")
}

type stubDocumentsService struct{}

func (stubDocumentsService) ListCategories(ctx context.Context) ([]documents.CategoryDTO, error) {
	return []documents.CategoryDTO{}, nil
}

func (stubDocumentsService) CreateCategory(ctx context.Context, req documents.CreateCategoryRequest) (*documents.CategoryDTO, error) {
	panic("unimplemented")
}

func (stubDocumentsService) List(ctx context.Context, categoryID uint) ([]documents.DocumentDTO, error) {
	return []documents.DocumentDTO{}, nil
}

func (stubDocumentsService) Get(ctx context.Context, id uint) (*documents.DocumentDTO, error) {
	panic("unimplemented")
}

func (stubDocumentsService) Create(ctx context.Context, req documents.CreateDocumentRequest) (*documents.DocumentDTO, error) {
	panic("unimplemented")
}

func (stubDocumentsService) CreateReference(ctx context.Context, req documents.CreateReferenceRequest) (*documents.ReferenceDTO, error) {
	panic("unimplemented")
}

func (stubDocumentsService) ListSupplements(ctx context.Context) ([]documents.SupplementDTO, error) {
	return []documents.SupplementDTO{}, nil
}

func (stubDocumentsService) CreateSupplement(ctx context.Context, req documents.CreateSupplementRequest) (*documents.SupplementDTO, error) {
	panic("unimplemented")
}

type stubTariffsService struct{}

func (stubTariffsService) List(ctx context.Context, filter tariffs.ListFilter) ([]tariffs.TariffDTO, error) {
	return []tariffs.TariffDTO{}, nil
}

type stubIncotermsService struct{}

func (stubIncotermsService) List(ctx context.Context) ([]incoterms.IncotermDTO, error) {
	return []incoterms.IncotermDTO{}, nil
}

func (stubIncotermsService) GetByCode(ctx context.Context, code string) (*incoterms.IncotermDTO, error) {
	panic("unimplemented")
}

type stubAdminService struct{}

func (stubAdminService) Stats(ctx context.Context) (*admin.StatsDTO, error) {
	return &admin.StatsDTO{DocumentsPerCategory: map[string]int64{}}, nil
}

func (stubAdminService) ListUsers(ctx context.Context) ([]users.UserDTO, error) {
	return []users.UserDTO{}, nil
}

func (stubAdminService) SetUserActive(ctx context.Context, userID uint, active bool) (*users.UserDTO, error) {
	panic("unimplemented")
}

func (stubAdminService) ListDocuments(ctx context.Context) ([]documents.DocumentDTO, error) {
	return []documents.DocumentDTO{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "logixport-test",
			ExpirationMinutes: 60,
			RememberMeDays:    7,
		},
	}
}

func testUsers() stubUserLoader {
	return stubUserLoader{
		1: {ID: 1, Email: "cliente@logixport.test", Role: enums.RoleUser, IsActive: true},
		2: {ID: 2, Email: "admin@logixport.test", Role: enums.RoleAdmin, IsActive: true},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	renderer, err := web.NewRenderer(logg)
	if err != nil {
		t.Fatalf("building renderer: %v", err)
	}
	registry := prometheus.NewRegistry()

	return NewRouter(Deps{
		Cfg:             cfg,
		Logg:            logg,
		DB:              stubPinger{},
		Redis:           nil,
		Users:           testUsers(),
		AuthService:     stubAuthService{},
		RegisterService: stubRegisterService{},
		Shipments:       stubShipmentsService{},
		Documents:       stubDocumentsService{},
		Tariffs:         stubTariffsService{},
		Incoterms:       stubIncotermsService{},
		Admin:           stubAdminService{},
		Renderer:        renderer,
		Registry:        registry,
		HTTPMetrics:     metrics.NewHTTPMetrics(registry),
	})
}

func buildToken(t *testing.T, cfg *config.Config, userID uint, role enums.Role) string {
	t.Helper()

	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: userID,
		Role:   role,
		Email:  "token@logixport.test",
	}, time.Minute)
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}
	return token
}

func TestPublicPagesServeWithoutToken(t *testing.T) {
	router := newTestRouter(t, testConfig())

	for _, path := range []string{"/", "/login", "/register", "/information", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestAnonymousRegistrationReachesHandler(t *testing.T) {
	router := newTestRouter(t, testConfig())

	body := strings.NewReader(`{"email":"nuevo@logixport.test","password":"superclave1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for anonymous signup got %d", resp.Code)
	}

	var envelope struct {
		Data users.UserDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Data.Email != "nuevo@logixport.test" {
		t.Fatalf("unexpected registered email %q", envelope.Data.Email)
	}
}

func TestAPIRejectsMissingToken(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON error for API path got content type %q", ct)
	}
}

func TestWebPagesRedirectToLoginWithoutToken(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for unauthenticated page got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login got %q", loc)
	}
}

func TestBearerTokenReachesProtectedAPI(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, 1, enums.RoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data users.UserDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if envelope.Data.Email != "cliente@logixport.test" {
		t.Fatalf("expected loaded user email got %q", envelope.Data.Email)
	}
}

func TestSessionCookieReachesProtectedPage(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: buildToken(t, cfg, 1, enums.RoleUser)})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for cookie session got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected HTML page got content type %q", ct)
	}
}

func TestAdminGroupRequiresAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(t, cfg)

	nonAdmin := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	nonAdmin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, 1, enums.RoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, nonAdmin)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin got %d", resp.Code)
	}

	adminReq := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	adminReq.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, 2, enums.RoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, adminReq)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d body %s", resp.Code, resp.Body.String())
	}
}

func TestAdminPageRedirectsNonAdminToDashboard(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: buildToken(t, cfg, 1, enums.RoleUser)})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for non-admin page got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard got %q", loc)
	}
}

func TestLegacyTemplatePathsRedirect(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/templates/pages/login", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301 got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login got %q", loc)
	}
}

func TestUnknownAPIPathReturnsJSON404(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, 1, enums.RoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON 404 for API path got content type %q", ct)
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics got %d", resp.Code)
	}
}
