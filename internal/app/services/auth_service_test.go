package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/app/models/dto"
	"github.com/ecesahin/registrar/internal/pkg/apperrors"
	"github.com/ecesahin/registrar/internal/pkg/auth"
)

type fakeUserReader struct {
	users map[string]*models.User
}

func (f *fakeUserReader) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeStudentByUser struct {
	byUserID map[int64]*models.Student
}

func (f *fakeStudentByUser) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	if s, ok := f.byUserID[userID]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "registrar.test",
	})
}

func newAuthFixture(users *fakeUserReader, students *fakeStudentByUser) (*AuthService, *auth.JWTService) {
	if students == nil {
		students = &fakeStudentByUser{}
	}
	jwtService := testJWTService()
	return NewAuthService(users, students, jwtService, zerolog.Nop()), jwtService
}

func seedUser(t *testing.T, email, password string, role models.RoleType) *fakeUserReader {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &fakeUserReader{users: map[string]*models.User{
		email: {ID: 1, Email: email, Password: hash, Role: role},
	}}
}

func TestLogin(t *testing.T) {
	users := seedUser(t, "root@school.edu", "Admin123!", models.RoleAdmin)
	svc, jwtService := newAuthFixture(users, nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "root@school.edu", Password: "Admin123!",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("TokenType = %q, want Bearer", resp.TokenType)
	}
	if resp.Role != "ADMIN" || resp.Email != "root@school.edu" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.StudentID != "" {
		t.Errorf("admin response carries studentId %q", resp.StudentID)
	}

	claims, err := jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Email != "root@school.edu" || claims.Role != "ADMIN" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := seedUser(t, "root@school.edu", "Admin123!", models.RoleAdmin)
	svc, _ := newAuthFixture(users, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "root@school.edu", Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(&fakeUserReader{}, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@school.edu", Password: "whatever",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials (unknown email must not be distinguishable)", err)
	}
}

func TestLoginStudentCarriesBusinessKey(t *testing.T) {
	users := seedUser(t, "ada@school.edu", "s3cretpass", models.RoleStudent)
	students := &fakeStudentByUser{byUserID: map[int64]*models.Student{
		1: {ID: 10, StudentID: "STU001", Email: "ada@school.edu"},
	}}
	svc, _ := newAuthFixture(users, students)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "ada@school.edu", Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.StudentID != "STU001" {
		t.Errorf("StudentID = %q, want STU001", resp.StudentID)
	}
}

func TestLoginStudentWithoutRecord(t *testing.T) {
	// A STUDENT account with no linked student row still logs in; the
	// business key is simply absent from the response.
	users := seedUser(t, "ada@school.edu", "s3cretpass", models.RoleStudent)
	svc, _ := newAuthFixture(users, nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "ada@school.edu", Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.StudentID != "" {
		t.Errorf("StudentID = %q, want empty", resp.StudentID)
	}
}

func TestValidateToken(t *testing.T) {
	users := seedUser(t, "root@school.edu", "Admin123!", models.RoleAdmin)
	svc, _ := newAuthFixture(users, nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "root@school.edu", Password: "Admin123!",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if !svc.ValidateToken(resp.Token, "root@school.edu") {
		t.Error("valid token rejected for its own email")
	}
	if svc.ValidateToken(resp.Token, "other@school.edu") {
		t.Error("token accepted for a different email")
	}
	if svc.ValidateToken("not-a-token", "root@school.edu") {
		t.Error("garbage token accepted")
	}
}
