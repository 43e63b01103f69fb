package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/marinacaribe/yacht-rental-system/internal/core/domain"
	"github.com/marinacaribe/yacht-rental-system/internal/core/ports"
)

func newUserFixture() (*stubUserRepo, *recordedActivity, *UserService) {
	repo := newStubUserRepo()
	activity := &recordedActivity{}
	svc := NewUserService(repo, activity, bcrypt.MinCost, discardLogger)
	return repo, activity, svc
}

func createInput(username string) ports.CreateUserInput {
	return ports.CreateUserInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "pass123",
		Role:     domain.RoleEmployee,
		Actor:    "admin_1",
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestUserService_Create_Success(t *testing.T) {
	repo, activity, svc := newUserFixture()

	created, err := svc.Create(context.Background(), createInput("ana"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an assigned id")
	}
	if created.Status != domain.AccountActive {
		t.Errorf("new accounts must start active, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt must be stamped")
	}

	stored := repo.byID[created.ID]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")) != nil {
		t.Error("stored hash must verify against the original password")
	}
	if stored.PasswordHash == "pass123" {
		t.Error("password must never be stored in the clear")
	}

	entries := activity.byAction(domain.ActionCreateUser)
	if len(entries) != 1 {
		t.Fatalf("expected 1 CREATE_USER entry, got %d", len(entries))
	}
	if entries[0].UserID != "admin_1" {
		t.Errorf("entry must be attributed to the actor, got %q", entries[0].UserID)
	}
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	_, _, svc := newUserFixture()
	if _, err := svc.Create(context.Background(), createInput("ana")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	in := createInput("ana")
	in.Email = "different@example.com"
	_, err := svc.Create(context.Background(), in)

	var dup *domain.DuplicateFieldError
	if !errors.As(err, &dup) || dup.Field != "username" {
		t.Fatalf("expected duplicate username error, got %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	_, _, svc := newUserFixture()
	if _, err := svc.Create(context.Background(), createInput("ana")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	in := createInput("other")
	in.Email = "ana@example.com"
	_, err := svc.Create(context.Background(), in)

	var dup *domain.DuplicateFieldError
	if !errors.As(err, &dup) || dup.Field != "email" {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestUserService_Create_UsernameCheckedBeforeEmail(t *testing.T) {
	_, _, svc := newUserFixture()
	if _, err := svc.Create(context.Background(), createInput("ana")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Both fields collide; the username duplicate must win.
	_, err := svc.Create(context.Background(), createInput("ana"))

	var dup *domain.DuplicateFieldError
	if !errors.As(err, &dup) || dup.Field != "username" {
		t.Fatalf("expected username reported first, got %v", err)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	_, _, svc := newUserFixture()

	in := createInput("ana")
	in.Role = "superuser"
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUserService_Update_EmptyPasswordKeepsHash(t *testing.T) {
	repo, _, svc := newUserFixture()
	created, _ := svc.Create(context.Background(), createInput("ana"))
	originalHash := repo.byID[created.ID].PasswordHash

	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:       created.ID,
		Username: "ana",
		Email:    "ana@example.com",
		Role:     domain.RoleAdmin,
		Status:   domain.AccountActive,
		Actor:    "admin_1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Errorf("expected role updated to admin, got %q", updated.Role)
	}
	if repo.byID[created.ID].PasswordHash != originalHash {
		t.Error("empty password must keep the stored hash")
	}
}

func TestUserService_Update_NewPasswordRehashes(t *testing.T) {
	repo, _, svc := newUserFixture()
	created, _ := svc.Create(context.Background(), createInput("ana"))

	_, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:       created.ID,
		Username: "ana",
		Email:    "ana@example.com",
		Password: "newpass",
		Role:     domain.RoleEmployee,
		Status:   domain.AccountActive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored := repo.byID[created.ID]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass")) != nil {
		t.Error("hash must verify against the new password")
	}
}

func TestUserService_Update_UnchangedFieldsSkipDuplicateCheck(t *testing.T) {
	_, _, svc := newUserFixture()
	created, _ := svc.Create(context.Background(), createInput("ana"))

	// Same username and email as the record itself must not count as duplicates.
	_, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:       created.ID,
		Username: "ana",
		Email:    "ana@example.com",
		Role:     domain.RoleEmployee,
		Status:   domain.AccountActive,
	})
	if err != nil {
		t.Fatalf("self-update must not trip uniqueness, got %v", err)
	}
}

func TestUserService_Update_TakenUsername(t *testing.T) {
	_, _, svc := newUserFixture()
	_, _ = svc.Create(context.Background(), createInput("ana"))
	other, _ := svc.Create(context.Background(), createInput("bruno"))

	_, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:       other.ID,
		Username: "ana",
		Email:    "bruno@example.com",
		Role:     domain.RoleEmployee,
		Status:   domain.AccountActive,
	})

	var dup *domain.DuplicateFieldError
	if !errors.As(err, &dup) || dup.Field != "username" {
		t.Fatalf("expected duplicate username error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete and listings
// ---------------------------------------------------------------------------

func TestUserService_Delete_SoftDeletes(t *testing.T) {
	repo, activity, svc := newUserFixture()
	created, _ := svc.Create(context.Background(), createInput("ana"))

	if err := svc.Delete(context.Background(), created.ID, "admin_1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	stored, ok := repo.byID[created.ID]
	if !ok {
		t.Fatal("soft delete must keep the record in the store")
	}
	if stored.Status != domain.AccountInactive {
		t.Errorf("expected status inactive, got %q", stored.Status)
	}
	if got := activity.byAction(domain.ActionDeleteUser); len(got) != 1 {
		t.Errorf("expected 1 DELETE_USER entry, got %d", len(got))
	}
}

func TestUserService_Delete_ExcludedFromActiveListing(t *testing.T) {
	_, _, svc := newUserFixture()
	keep, _ := svc.Create(context.Background(), createInput("ana"))
	gone, _ := svc.Create(context.Background(), createInput("bruno"))
	_ = svc.Delete(context.Background(), gone.ID, "admin_1")

	active, err := svc.GetActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 || active[0].ID != keep.ID {
		t.Errorf("active listing must contain only %q, got %d entries", keep.ID, len(active))
	}

	all, _ := svc.GetAll(context.Background())
	if len(all) != 2 {
		t.Errorf("full listing must keep deactivated accounts, got %d", len(all))
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	_, _, svc := newUserFixture()

	err := svc.Delete(context.Background(), "ghost", "admin_1")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Search_MatchesUsernameAndEmail(t *testing.T) {
	_, _, svc := newUserFixture()
	_, _ = svc.Create(context.Background(), createInput("ana"))
	_, _ = svc.Create(context.Background(), createInput("bruno"))

	byName, _ := svc.Search(context.Background(), "ANA")
	if len(byName) != 1 {
		t.Errorf("case-insensitive username search: expected 1, got %d", len(byName))
	}

	byEmail, _ := svc.Search(context.Background(), "bruno@example")
	if len(byEmail) != 1 {
		t.Errorf("email search: expected 1, got %d", len(byEmail))
	}
}
