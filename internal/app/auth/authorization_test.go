package auth

import (
	"context"
	"testing"

	"github.com/ecesahin/registrar/internal/app/models"
)

type fakeOwnership struct {
	ownedID  int64
	ownedKey string
	owner    string
}

func (f *fakeOwnership) IsOwnID(ctx context.Context, email string, id int64) bool {
	return email == f.owner && id == f.ownedID
}

func (f *fakeOwnership) IsOwnStudentID(ctx context.Context, email, studentID string) bool {
	return email == f.owner && studentID == f.ownedKey
}

var (
	adminPrincipal   = &Principal{UserID: 1, Email: "root@school.edu", Role: models.RoleAdmin}
	studentPrincipal = &Principal{UserID: 2, Email: "ada@school.edu", Role: models.RoleStudent}
)

func newTestAuthz() *AuthorizationService {
	return NewAuthorizationService(&fakeOwnership{
		ownedID:  10,
		ownedKey: "STU001",
		owner:    "ada@school.edu",
	})
}

func TestAdminOnly(t *testing.T) {
	svc := newTestAuthz()

	if d := svc.AdminOnly(adminPrincipal); !d.Allowed {
		t.Errorf("admin denied: %q", d.Reason)
	}
	if d := svc.AdminOnly(studentPrincipal); d.Allowed {
		t.Error("student allowed on admin-only guard")
	}
	if d := svc.AdminOnly(nil); d.Allowed {
		t.Error("nil principal allowed")
	}
}

func TestAdminOrSelfByID(t *testing.T) {
	svc := newTestAuthz()
	ctx := context.Background()

	if d := svc.AdminOrSelfByID(ctx, adminPrincipal, 999); !d.Allowed {
		t.Errorf("admin denied on foreign record: %q", d.Reason)
	}
	if d := svc.AdminOrSelfByID(ctx, studentPrincipal, 10); !d.Allowed {
		t.Errorf("owner denied own record: %q", d.Reason)
	}
	if d := svc.AdminOrSelfByID(ctx, studentPrincipal, 11); d.Allowed {
		t.Error("student allowed on another student's record")
	}
	if d := svc.AdminOrSelfByID(ctx, nil, 10); d.Allowed {
		t.Error("nil principal allowed")
	}
}

func TestAdminOrSelfByStudentID(t *testing.T) {
	svc := newTestAuthz()
	ctx := context.Background()

	if d := svc.AdminOrSelfByStudentID(ctx, adminPrincipal, "STU999"); !d.Allowed {
		t.Errorf("admin denied on foreign record: %q", d.Reason)
	}
	if d := svc.AdminOrSelfByStudentID(ctx, studentPrincipal, "STU001"); !d.Allowed {
		t.Errorf("owner denied own record: %q", d.Reason)
	}
	if d := svc.AdminOrSelfByStudentID(ctx, studentPrincipal, "STU002"); d.Allowed {
		t.Error("student allowed on another student's record")
	}
}

func TestDenyCarriesReason(t *testing.T) {
	svc := newTestAuthz()

	d := svc.AdminOrSelfByStudentID(context.Background(), studentPrincipal, "STU002")
	if d.Allowed {
		t.Fatal("expected a denial")
	}
	if d.Reason == "" {
		t.Error("denial has no reason")
	}
}

func TestPrincipalIsAdmin(t *testing.T) {
	if !adminPrincipal.IsAdmin() {
		t.Error("admin principal not recognized")
	}
	if studentPrincipal.IsAdmin() {
		t.Error("student principal recognized as admin")
	}
	var p *Principal
	if p.IsAdmin() {
		t.Error("nil principal recognized as admin")
	}
}
