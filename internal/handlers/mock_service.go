package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/Nomenandrianina/fleet-master/internal/fleetdata"
	"github.com/Nomenandrianina/fleet-master/internal/models"
	"github.com/Nomenandrianina/fleet-master/internal/repository"
	"github.com/Nomenandrianina/fleet-master/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

var errForTests = errors.New("forced failure")

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockProfile struct {
	loadResp models.Profile
	loadErr  error
	saveErr  error

	lastSaved *models.Profile
}

func (m *mockProfile) Load(ctx context.Context) (models.Profile, error) {
	return m.loadResp, m.loadErr
}
func (m *mockProfile) Save(ctx context.Context, p models.Profile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.lastSaved = &p
	return nil
}

type mockFuelLog struct {
	resp []models.FuelEvent
	err  error

	lastFilter service.FuelFilter
}

func (m *mockFuelLog) List(f service.FuelFilter) ([]models.FuelEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

// seedServices builds the read-only sub-services over the seed dataset,
// so list and analytics endpoints answer with real figures.
func seedServices() (service.Fleet, service.Analytics) {
	store := repository.NewFleetStore(fleetdata.New(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
	return service.NewFleetService(store), service.NewAnalyticsService(store, 0)
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// perform runs one request through the router with optional bearer token
// and body.
func perform(r *gin.Engine, method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}
