package services_test

import (
	"strings"
	"testing"

	"dunestore/internal/repos"
	"dunestore/internal/services"
)

func TestAuthLoginIssuesVerifiableToken(t *testing.T) {
	db := seededDB(t)
	if err := repos.SeedAdmin(db, "admin@dunestore.test", "Passw0rd!"); err != nil {
		t.Fatal(err)
	}
	auth := services.NewAuthService(repos.NewUserRepo(db), "test-secret")

	tok, err := auth.Login("admin@dunestore.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := auth.Verify(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Email != "admin@dunestore.test" || claims.Role != "ADMIN" {
		t.Fatalf("bad claims: %+v", claims)
	}
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	db := seededDB(t)
	if err := repos.SeedAdmin(db, "admin@dunestore.test", "Passw0rd!"); err != nil {
		t.Fatal(err)
	}
	auth := services.NewAuthService(repos.NewUserRepo(db), "test-secret")

	if _, err := auth.Login("admin@dunestore.test", "wrong"); err != services.ErrBadCreds {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
	if _, err := auth.Login("nobody@dunestore.test", "Passw0rd!"); err != services.ErrBadCreds {
		t.Fatalf("want ErrBadCreds for unknown email, got %v", err)
	}
}

func TestAuthVerifyRejectsTamperedToken(t *testing.T) {
	db := seededDB(t)
	if err := repos.SeedAdmin(db, "admin@dunestore.test", "Passw0rd!"); err != nil {
		t.Fatal(err)
	}
	auth := services.NewAuthService(repos.NewUserRepo(db), "test-secret")

	tok, err := auth.Login("admin@dunestore.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}

	// Flip the signature.
	parts := strings.Split(tok, ".")
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]
	if _, err := auth.Verify(tampered); err == nil {
		t.Fatal("tampered token must not verify")
	}

	// Token signed under a different secret.
	other := services.NewAuthService(repos.NewUserRepo(db), "other-secret")
	otherTok, err := other.Login("admin@dunestore.test", "Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Verify(otherTok); err == nil {
		t.Fatal("foreign-secret token must not verify")
	}
}
