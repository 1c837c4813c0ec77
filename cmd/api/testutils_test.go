package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/auth"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/domain"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/ratelimiter"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/service"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/store/mongo"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	clone := *user
	f.users[user.ID.Hex()] = &clone
	return nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	all := []domain.User{}
	for _, u := range f.users {
		all = append(all, *u)
	}
	return all, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, mongo.ErrNotFound
}

func (f *fakeUserRepo) PromoteToAdmin(_ context.Context, id string) (*domain.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, mongo.ErrInvalidID
	}
	u, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNotFound
	}
	before := *u
	u.Role = domain.RoleAdmin
	return &before, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, mongo.ErrInvalidID
	}
	u, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNotFound
	}
	delete(f.users, id)
	return u, nil
}

type fakeRoleAuditRepo struct {
	audits []*domain.RoleAudit
}

func (f *fakeRoleAuditRepo) Create(_ context.Context, audit *domain.RoleAudit) error {
	f.audits = append(f.audits, audit)
	return nil
}

func (f *fakeRoleAuditRepo) GetByUserID(_ context.Context, userID string, _ int) ([]domain.RoleAudit, error) {
	out := []domain.RoleAudit{}
	for _, a := range f.audits {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeMenuRepo struct {
	items []bson.M
}

func (f *fakeMenuRepo) GetAll(_ context.Context) ([]bson.M, error) {
	if f.items == nil {
		return []bson.M{}, nil
	}
	return f.items, nil
}

type fakeReviewRepo struct {
	reviews []bson.M
}

func (f *fakeReviewRepo) GetAll(_ context.Context) ([]bson.M, error) {
	if f.reviews == nil {
		return []bson.M{}, nil
	}
	return f.reviews, nil
}

type fakeCartRepo struct {
	items map[string]*domain.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[string]*domain.CartItem{}}
}

func (f *fakeCartRepo) Create(_ context.Context, item *domain.CartItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	clone := *item
	f.items[item.ID.Hex()] = &clone
	return nil
}

func (f *fakeCartRepo) GetByEmail(_ context.Context, email string) ([]domain.CartItem, error) {
	out := []domain.CartItem{}
	for _, item := range f.items {
		if item.Email == email {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, mongo.ErrInvalidID
	}
	if _, ok := f.items[id]; !ok {
		return 0, nil
	}
	delete(f.items, id)
	return 1, nil
}

type testRepos struct {
	users   *fakeUserRepo
	menu    *fakeMenuRepo
	reviews *fakeReviewRepo
	carts   *fakeCartRepo
	audits  *fakeRoleAuditRepo
}

func newTestApplication(t *testing.T) (*application, *testRepos) {
	t.Helper()

	repos := &testRepos{
		users:   newFakeUserRepo(),
		menu:    &fakeMenuRepo{},
		reviews: &fakeReviewRepo{},
		carts:   newFakeCartRepo(),
		audits:  &fakeRoleAuditRepo{},
	}

	logger := zap.NewNop().Sugar()

	cfg := config{
		addr: ":5000",
		env:  "test",
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: 100,
			TimeFrame:            time.Second,
			Enabled:              false,
		},
		auth: authConfig{
			secret: "test-secret",
			exp:    time.Hour,
			iss:    "bistroboss",
		},
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
		authenticator: auth.NewJWTAuthenticator(cfg.auth.secret, cfg.auth.iss, cfg.auth.iss),
		userRepo:      repos.users,
		menuRepo:      repos.menu,
		reviewRepo:    repos.reviews,
		cartRepo:      repos.carts,
		userService:   service.NewUserService(repos.users, repos.audits, logger),
	}

	return app, repos
}

func testToken(t *testing.T, app *application, email string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(app.config.auth.exp).Unix(),
		"iat": time.Now().Unix(),
		"iss": app.config.auth.iss,
		"aud": app.config.auth.iss,
	}

	token, err := app.authenticator.GenerateToken(claims)
	require.NoError(t, err)

	return token
}

func seedUser(t *testing.T, repos *testRepos, email, role string) *domain.User {
	t.Helper()

	user := &domain.User{Email: email, Role: role}
	require.NoError(t, repos.users.Create(context.Background(), user))

	return user
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}
