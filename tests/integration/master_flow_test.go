//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"crm-master-api/config"
	"crm-master-api/internal/admin"
	"crm-master-api/internal/auth"
	"crm-master-api/internal/cascade"
	"crm-master-api/internal/geography"
	"crm-master-api/internal/logs"
	"crm-master-api/internal/master"
	"crm-master-api/internal/middlewares"
	"crm-master-api/internal/notify"
	"crm-master-api/internal/repo"
	"crm-master-api/internal/resource"
	"crm-master-api/internal/session"
	"crm-master-api/internal/transport"
	"crm-master-api/internal/util"
)

// newTestBackend boots the whole HTTP stack against an in-memory database,
// seeded with the starter data set plus one admin account.
func newTestBackend(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "integration-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	models := master.AllModels()
	models = append(models, &auth.User{}, &logs.SystemLog{})
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := master.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := config.LoadConfig()
	logService := &logs.LogService{DB: db}
	userService := &auth.AuthService{DB: db, CFG: &cfg}

	hashed, err := util.HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if _, err := userService.CreateUser(auth.User{
		FirstName: "System",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Password:  hashed,
		Role:      "Admin",
	}); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	r := gin.New()
	auth.RegisterRoutes(r, userService, logService)
	logs.RegisterRoutes(r, logService, middlewares.AuthMiddleware())
	admin.RegisterRoutes(r, &admin.AdminService{DB: db})
	master.RegisterRoutes(r, master.NewMasterService(db), middlewares.AuthMiddleware())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, db
}

func login(t *testing.T, client *transport.Client, sess *session.Store) {
	t.Helper()

	res := client.Post(context.Background(), "/auth/login", map[string]any{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	if !res.Status {
		t.Fatalf("login failed: %s", res.Message)
	}
	payload, err := transport.Decode[struct {
		Message string             `json:"message"`
		Data    auth.LoginResponse `json:"data"`
	}](res)
	if err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if payload.Data.Token == "" {
		t.Fatal("login returned no token")
	}
	sess.SetToken(payload.Data.Token)
}

func dbStatus(t *testing.T, db *gorm.DB, table string, id int) int {
	t.Helper()
	var status int
	if err := db.Table(table).Select("status").Where("id = ?", id).Scan(&status).Error; err != nil {
		t.Fatalf("read %s/%d: %v", table, id, err)
	}
	return status
}

func TestMasterRoutes_RequireBearerToken(t *testing.T) {
	srv, _ := newTestBackend(t)

	client := transport.NewClient(srv.URL, session.NewStore(), zap.NewNop())
	client.Retries = 0

	res := client.Get(context.Background(), "/countries")
	if res.Status {
		t.Fatal("expected unauthenticated request to fail")
	}
	if res.Code != 401 {
		t.Fatalf("expected 401, got %d (%s)", res.Code, res.Message)
	}
}

func TestGeographyCascade_AgainstLiveServer(t *testing.T) {
	srv, db := newTestBackend(t)

	sess := session.NewStore()
	client := transport.NewClient(srv.URL, sess, zap.NewNop())
	client.Retries = 0
	login(t, client, sess)

	ctx := context.Background()
	cache := resource.NewCache(time.Minute, 32)
	engine := cascade.New(&notify.Recorder{}, zap.NewNop())
	geo := geography.NewModule(client, cache, engine, zap.NewNop())
	geo.LoadAll(ctx)

	karnataka, ok := geo.States.Find(repo.Canon(1))
	if !ok {
		t.Fatal("seeded state not loaded")
	}
	if karnataka.Name != "Karnataka" {
		t.Fatalf("unexpected state: %+v", karnataka)
	}

	// Deactivate: Karnataka -> districts 1,2 -> city 1 -> areas 1,2.
	out, err := geo.ToggleState(ctx, karnataka)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if out.NewStatus != repo.StatusInactive {
		t.Fatalf("expected deactivation, got status %d", out.NewStatus)
	}
	if out.Patches != 6 || out.Changed != 5 {
		t.Fatalf("expected 6 patches / 5 descendants, got %d / %d", out.Patches, out.Changed)
	}

	for _, row := range []struct {
		table string
		id    int
	}{
		{"states", 1}, {"districts", 1}, {"districts", 2},
		{"cities", 1}, {"areas", 1}, {"areas", 2},
	} {
		if got := dbStatus(t, db, row.table, row.id); got != 0 {
			t.Fatalf("%s/%d not deactivated, status=%d", row.table, row.id, got)
		}
	}

	// The Tamil Nadu subtree is a different branch and must be untouched.
	for _, row := range []struct {
		table string
		id    int
	}{
		{"states", 2}, {"districts", 3}, {"cities", 2}, {"areas", 3},
	} {
		if got := dbStatus(t, db, row.table, row.id); got != 1 {
			t.Fatalf("%s/%d should stay active, status=%d", row.table, row.id, got)
		}
	}

	// Reactivate from the locally updated record.
	karnataka, ok = geo.States.Find(repo.Canon(1))
	if !ok || karnataka.Status != repo.StatusInactive {
		t.Fatalf("local state out of sync: %+v", karnataka)
	}
	out, err = geo.ToggleState(ctx, karnataka)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if out.NewStatus != repo.StatusActive || out.Patches != 6 {
		t.Fatalf("expected full subtree reactivation, got status=%d patches=%d", out.NewStatus, out.Patches)
	}
	for _, row := range []struct {
		table string
		id    int
	}{
		{"states", 1}, {"districts", 1}, {"districts", 2},
		{"cities", 1}, {"areas", 1}, {"areas", 2},
	} {
		if got := dbStatus(t, db, row.table, row.id); got != 1 {
			t.Fatalf("%s/%d not reactivated, status=%d", row.table, row.id, got)
		}
	}
}

func TestCrudRoundTrip_AgainstLiveServer(t *testing.T) {
	srv, db := newTestBackend(t)

	sess := session.NewStore()
	client := transport.NewClient(srv.URL, sess, zap.NewNop())
	client.Retries = 0
	login(t, client, sess)

	ctx := context.Background()
	cache := resource.NewCache(time.Minute, 32)
	geo := geography.NewModule(client, cache, cascade.New(&notify.Recorder{}, zap.NewNop()), zap.NewNop())
	geo.LoadAll(ctx)

	created, err := geo.States.Create(ctx, geography.State{CountryID: 1, Name: "Kerala", Status: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("server did not assign an id")
	}

	created.Name = "Kerala (South)"
	updated, err := geo.States.Update(ctx, created.RecordID(), created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Kerala (South)" {
		t.Fatalf("update not applied: %+v", updated)
	}

	var name string
	if err := db.Table("states").Select("name").Where("id = ?", created.ID).Scan(&name).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if name != "Kerala (South)" {
		t.Fatalf("expected renamed row in db, got %q", name)
	}

	if err := geo.States.Delete(ctx, created.RecordID()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var count int64
	if err := db.Table("states").Where("id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatal("row survived delete")
	}
}
