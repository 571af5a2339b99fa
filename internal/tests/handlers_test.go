package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	httpapi "github.com/N4th0wl/HangTuah-Website/internal/api/http"
	"github.com/N4th0wl/HangTuah-Website/internal/domain"
	"github.com/N4th0wl/HangTuah-Website/internal/mocks"
	"github.com/N4th0wl/HangTuah-Website/internal/service"
)

// handlerEnv wires real services over mocked repositories behind the full
// route table, so tests exercise routing, auth middleware, and status-code
// mapping end to end.
type handlerEnv struct {
	ledger   *mocks.OrderLedger
	menuRepo *mocks.MenuRepository
	userRepo *mocks.UserRepository
	stats    *mocks.StatsRepository
	notifier *mocks.Notifier
	images   *mocks.ImageStore
	qr       *mocks.QRGenerator
	tokens   *service.TokenManager
	router   *mux.Router
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	env := &handlerEnv{
		ledger:   new(mocks.OrderLedger),
		menuRepo: new(mocks.MenuRepository),
		userRepo: new(mocks.UserRepository),
		stats:    new(mocks.StatsRepository),
		notifier: new(mocks.Notifier),
		images:   new(mocks.ImageStore),
		qr:       new(mocks.QRGenerator),
		tokens:   service.NewTokenManager([]byte("unit-test-secret"), time.Hour),
	}

	handler := httpapi.NewHandler(
		service.NewAccountService(env.userRepo, env.tokens),
		service.NewMenuService(env.menuRepo, env.ledger, nil, env.images),
		service.NewOrderService(env.ledger, env.qr, env.notifier),
		service.NewReportService(env.stats),
		service.NewContactService(env.notifier),
		env.images,
		env.tokens,
	)

	env.router = mux.NewRouter()
	handler.RegisterRoutes(env.router, t.TempDir())
	return env
}

func (e *handlerEnv) tokenFor(t *testing.T, user *domain.User) string {
	token, err := e.tokens.Issue(user)
	require.NoError(t, err)
	return token
}

func (e *handlerEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	env := newHandlerEnv(t)

	rec := env.do(http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server is running")
}

func TestAuthMiddleware(t *testing.T) {
	env := newHandlerEnv(t)
	userToken := env.tokenFor(t, &domain.User{ID: 3, Username: "budi", Role: domain.RoleUser})
	adminToken := env.tokenFor(t, &domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin})

	env.ledger.On("ListOrdersByUser", 3).Return([]domain.Order{}, nil)
	env.ledger.On("AdminListOrders").Return([]domain.Order{}, nil)

	testCases := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{name: "no token", method: http.MethodGet, path: "/api/orders", token: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", method: http.MethodGet, path: "/api/orders", token: "not.a.jwt", wantStatus: http.StatusUnauthorized},
		{name: "valid user token", method: http.MethodGet, path: "/api/orders", token: userToken, wantStatus: http.StatusOK},
		{name: "user token on admin route", method: http.MethodGet, path: "/api/admin/orders", token: userToken, wantStatus: http.StatusForbidden},
		{name: "admin token on admin route", method: http.MethodGet, path: "/api/admin/orders", token: adminToken, wantStatus: http.StatusOK},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rec := env.do(testCase.method, testCase.path, testCase.token, nil)
			assert.Equal(t, testCase.wantStatus, rec.Code)
		})
	}
}

func TestRegisterEndpoint(t *testing.T) {
	testCases := []struct {
		name       string
		body       map[string]string
		repoErr    error
		wantStatus int
	}{
		{
			name:       "created",
			body:       map[string]string{"username": "budi", "email": "budi@example.com", "password": "secret-password"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "short password",
			body:       map[string]string{"username": "budi", "email": "budi@example.com", "password": "short"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       map[string]string{"username": "budi", "email": "taken@example.com", "password": "secret-password"},
			repoErr:    domain.ErrConflict,
			wantStatus: http.StatusConflict,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			env := newHandlerEnv(t)
			env.userRepo.On("CreateUser", mock.AnythingOfType("*domain.User")).Return(testCase.repoErr).Maybe()

			rec := env.do(http.MethodPost, "/api/auth/register", "", testCase.body)

			assert.Equal(t, testCase.wantStatus, rec.Code)
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := &domain.User{ID: 3, Username: "budi", Email: "budi@example.com", PasswordHash: string(hash), Role: domain.RoleUser}

	t.Run("valid credentials", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.userRepo.On("GetUserByEmail", "budi@example.com").Return(stored, nil).Once()

		rec := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "budi@example.com",
			"password": "secret-password",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		claims, err := env.tokens.Parse(body.Data.Token)
		require.NoError(t, err)
		assert.Equal(t, 3, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.userRepo.On("GetUserByEmail", "budi@example.com").Return(stored, nil).Once()

		rec := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "budi@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.userRepo.On("GetUserByEmail", "ghost@example.com").Return(nil, domain.ErrNotFound).Once()

		rec := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "ghost@example.com",
			"password": "secret-password",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMenuEndpoints(t *testing.T) {
	env := newHandlerEnv(t)

	env.menuRepo.On("ListMenuItems", "food", "").Return([]domain.MenuItem{
		{ID: 1, Name: "Toast", Category: "food", Price: 25000},
		{ID: 2, Name: "Sandwich", Category: "food", Price: 30000},
	}, nil).Once()
	env.menuRepo.On("GetMenuItem", 99).Return(nil, domain.ErrNotFound).Once()

	rec := env.do(http.MethodGet, "/api/menu?category=food", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)

	rec = env.do(http.MethodGet, "/api/menu/99", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	token := env.tokenFor(t, &domain.User{ID: 3, Username: "budi", Role: domain.RoleUser})

	env.ledger.On("PlaceOrder", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		order := args.Get(0).(*domain.Order)
		order.ID = 41
		order.TotalPrice = 50000
		order.Status = domain.StatusPending
	}).Return(nil).Once()
	env.qr.On("Generate", 41, int64(50000)).Return([]byte{0x89, 0x50}, nil).Once()
	env.ledger.On("SaveQRCode", 41, mock.Anything).Return(nil).Once()
	env.notifier.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Once()

	rec := env.do(http.MethodPost, "/api/orders", token, domain.PlaceOrderInput{
		TableNumber: 7,
		Lines: []domain.OrderLine{
			{MenuItemID: 1, Quantity: 2},
		},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/orders/41/qrcode")
	env.ledger.AssertExpectations(t)
}

func TestCreateOrderEndpointRejectsBadInput(t *testing.T) {
	env := newHandlerEnv(t)
	token := env.tokenFor(t, &domain.User{ID: 3, Username: "budi", Role: domain.RoleUser})

	rec := env.do(http.MethodPost, "/api/orders", token, domain.PlaceOrderInput{
		TableNumber: 7,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.ledger.AssertNotCalled(t, "PlaceOrder", mock.Anything)
}

func TestCancelOrderEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	token := env.tokenFor(t, &domain.User{ID: 3, Username: "budi", Role: domain.RoleUser})

	env.ledger.On("CancelOrder", 41, 3).Return(nil).Once()
	env.ledger.On("CancelOrder", 42, 3).Return(domain.ErrInvalidState).Once()
	env.notifier.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Maybe()

	rec := env.do(http.MethodPut, "/api/orders/41/cancel", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPut, "/api/orders/42/cancel", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderQRCodeEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	token := env.tokenFor(t, &domain.User{ID: 3, Username: "budi", Role: domain.RoleUser})

	qrPNG := []byte{0x89, 0x50, 0x4e, 0x47}
	env.ledger.On("GetOrderForUser", 41, 3).Return(&domain.Order{ID: 41, UserID: 3}, nil).Once()
	env.ledger.On("GetQRCode", 41).Return(qrPNG, nil).Once()

	rec := env.do(http.MethodGet, "/api/orders/41/qrcode", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, qrPNG, rec.Body.Bytes())
}

func TestAdminDeleteMenuEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	token := env.tokenFor(t, &domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin})

	env.ledger.On("DeleteMenuItemCascade", 9).
		Return(domain.CascadeResult{RemovedOrderLines: 3, AffectedOrders: 2}, "toast.jpg", nil).Once()
	env.images.On("Delete", "toast.jpg").Return(nil).Once()

	rec := env.do(http.MethodDelete, "/api/admin/menus/9", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"removedOrderItems":3`)
	assert.Contains(t, rec.Body.String(), `"affectedOrders":2`)
	env.images.AssertExpectations(t)
}

func TestAdminUpdateOrderEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	token := env.tokenFor(t, &domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin})

	env.ledger.On("UpdateOrderStatus", 41, domain.StatusCompleted, "").Return(nil).Once()
	env.notifier.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Maybe()

	rec := env.do(http.MethodPut, "/api/admin/orders/41", token, map[string]string{"status": domain.StatusCompleted})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPut, "/api/admin/orders/41", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPut, "/api/admin/orders/41", token, map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminStatsEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	token := env.tokenFor(t, &domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin})

	env.stats.On("CountUsers").Return(10, nil).Once()
	env.stats.On("CountOrders").Return(25, nil).Once()
	env.stats.On("CountMenuItems").Return(8, nil).Once()
	env.stats.On("RecentUsers", 5).Return([]domain.User{}, nil).Once()
	env.stats.On("RecentOrders", 5).Return([]domain.Order{}, nil).Once()
	env.stats.On("RecentMenuItems", 5).Return([]domain.MenuItem{}, nil).Once()

	rec := env.do(http.MethodGet, "/api/admin/stats", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalOrders":25`)
}

func TestAdminExportOrdersEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	token := env.tokenFor(t, &domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin})

	env.stats.On("ListOrdersBetween", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.Order{{ID: 1, Username: "budi", TotalPrice: 36000, Status: "completed"}}, nil).Once()

	rec := env.do(http.MethodGet, "/api/admin/export/orders/pdf", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "orders-report.html")
	assert.Contains(t, rec.Body.String(), "Orders Report")
}
