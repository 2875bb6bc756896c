package v1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/herfando/core-api/internal/model"
	"github.com/herfando/core-api/internal/repository"
	"github.com/herfando/core-api/internal/service"
	"github.com/herfando/core-api/pkg/auth"
	"github.com/herfando/core-api/pkg/middleware"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (m *memUserRepo) Create(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.users[u.Email] = &cp
	return nil
}

func (m *memUserRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) ByID(ctx context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) RoleByID(ctx context.Context, id int64) (model.Role, error) {
	u, err := m.ByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (m *memUserRepo) setRole(email string, role model.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		u.Role = role
	}
}

func testRouter(t *testing.T) (*gin.Engine, *memUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := newMemUserRepo()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenManager("test-secret-0123456789", time.Hour)

	h := &Handlers{
		Auth:       NewAuthHandler(service.NewAuthService(repo, hasher, tokens, false), log),
		Books:      NewBookHandler(service.NewBookService(&stubBookRepo{}), log),
		Authors:    NewAuthorHandler(service.NewAuthorService(&stubAuthorRepo{}), log),
		Categories: NewCategoryHandler(service.NewCategoryService(&stubCategoryRepo{}), log),
		AuthMW:     middleware.NewAuthMiddleware(tokens, repo),
	}

	r := gin.New()
	r.Use(RequestIDMiddleware())
	RegisterRoutes(r.Group("/api/v1"), h)
	return r, repo
}

func postJSON(r *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthEndpoints_Scenario(t *testing.T) {
	r, _ := testRouter(t)

	// register succeeds with an id
	w := postJSON(r, "/api/v1/auth/register", `{"email":"a@b.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reg APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.True(t, reg.Success)
	data := reg.Data.(map[string]interface{})
	assert.NotZero(t, data["id"])
	assert.Equal(t, "USER", data["role"])
	assert.NotEmpty(t, reg.Meta.RequestID)

	// duplicate email
	w = postJSON(r, "/api/v1/auth/register", `{"email":"a@b.com","password":"different1"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var dup APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dup))
	assert.False(t, dup.Success)
	assert.Equal(t, "Email already registered", dup.Message)

	// wrong password
	w = postJSON(r, "/api/v1/auth/login", `{"email":"a@b.com","password":"wrongpass"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid password")

	// unknown email
	w = postJSON(r, "/api/v1/auth/login", `{"email":"nobody@b.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email not registered")

	// correct login returns a non-empty token and no password hash
	w = postJSON(r, "/api/v1/auth/login", `{"email":"a@b.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)
	assert.NotContains(t, string(login.User), "password")
}

func TestRegister_ValidationError(t *testing.T) {
	r, _ := testRouter(t)

	// short password
	w := postJSON(r, "/api/v1/auth/register", `{"email":"a@b.com","password":"short"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// malformed email
	w = postJSON(r, "/api/v1/auth/register", `{"email":"not-an-email","password":"secret123"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrivilegedEndpoint_RoleGate(t *testing.T) {
	r, repo := testRouter(t)

	w := postJSON(r, "/api/v1/auth/register", `{"email":"a@b.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/v1/auth/login", `{"email":"a@b.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	body := `{"title":"1984","isbn":"978-0-452-28423-4","author_id":1,"category_id":1,"total_copies":3}`

	// no token
	w = postJSON(r, "/api/v1/books", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// USER role
	authz := map[string]string{"Authorization": "Bearer " + login.Token}
	w = postJSON(r, "/api/v1/books", body, authz)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// promoted to ADMIN, same token: role is re-read from the store
	repo.setRole("a@b.com", model.RoleAdmin)
	w = postJSON(r, "/api/v1/books", body, authz)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
