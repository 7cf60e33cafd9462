package auth

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func TestAuthService_CreateUser_DefaultsRoleAndStatus(t *testing.T) {
	svc := &AuthService{DB: newTestDB(t)}

	got, err := svc.CreateUser(User{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Password:  "hashed",
	})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if got.Role != "User" {
		t.Fatalf("expected default role User, got %q", got.Role)
	}
	if got.Status != 1 {
		t.Fatalf("expected active status, got %d", got.Status)
	}
}

func TestAuthService_CreateUser_DuplicateEmail_FriendlyError(t *testing.T) {
	db := newTestDB(t)
	svc := &AuthService{DB: db}

	first := User{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Password: "x"}
	if _, err := svc.CreateUser(first); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.CreateUser(User{FirstName: "Other", LastName: "Person", Email: "asha@example.com", Password: "y"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected friendly duplicate message, got %v", err)
	}
}

func TestAuthService_GetUser_ByEmail(t *testing.T) {
	db := newTestDB(t)
	svc := &AuthService{DB: db}

	if _, err := svc.CreateUser(User{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Password: "x"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := svc.GetUser("asha@example.com")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got.FirstName != "Asha" {
		t.Fatalf("unexpected user: %#v", got)
	}

	if _, err := svc.GetUser("missing@example.com"); err == nil {
		t.Fatalf("expected error for missing user")
	}
}

func TestAuthService_GetUserByID(t *testing.T) {
	db := newTestDB(t)
	svc := &AuthService{DB: db}

	created, err := svc.CreateUser(User{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := svc.GetUserByID(created.ID)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got.Email != "asha@example.com" {
		t.Fatalf("unexpected user: %#v", got)
	}

	if _, err := svc.GetUserByID(9999); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestAuthService_GetAllUsers_OrderedByID(t *testing.T) {
	db := newTestDB(t)
	svc := &AuthService{DB: db}

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := svc.CreateUser(User{FirstName: "U", LastName: "V", Email: email, Password: "x"}); err != nil {
			t.Fatalf("seed %s: %v", email, err)
		}
	}

	got, err := svc.GetAllUsers()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 users, got %d", len(got))
	}
	if got[0].Email != "a@example.com" || got[2].Email != "c@example.com" {
		t.Fatalf("unexpected order: %#v", got)
	}
}

func TestAuthService_GetAllUsers_DBBroken_ReturnsError(t *testing.T) {
	db := newTestDB(t)
	svc := &AuthService{DB: db}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	if _, err := svc.GetAllUsers(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
