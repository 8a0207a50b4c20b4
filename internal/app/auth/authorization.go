package auth

import (
	"context"

	"github.com/ecesahin/registrar/internal/app/models"
)

// Principal is the authenticated identity for a request. It is extracted
// from the verified token by the auth middleware and passed explicitly into
// guards; there is no ambient security context.
type Principal struct {
	UserID int64
	Email  string
	Role   models.RoleType
}

// IsAdmin reports whether the principal carries the ADMIN role
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == models.RoleAdmin
}

// Decision is the outcome of an authorization guard
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// OwnershipChecker answers whether a principal's email owns a student record.
// Implementations are fail-closed: any lookup failure yields false.
type OwnershipChecker interface {
	IsOwnID(ctx context.Context, email string, id int64) bool
	IsOwnStudentID(ctx context.Context, email, studentID string) bool
}

// AuthorizationService evaluates guard decisions before handlers run
type AuthorizationService struct {
	ownership OwnershipChecker
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(ownership OwnershipChecker) *AuthorizationService {
	return &AuthorizationService{
		ownership: ownership,
	}
}

// AdminOnly allows only ADMIN principals
func (s *AuthorizationService) AdminOnly(p *Principal) Decision {
	if p == nil {
		return deny("no authenticated principal")
	}
	if p.IsAdmin() {
		return allow()
	}
	return deny("admin role required")
}

// AdminOrSelfByID allows ADMIN principals, or STUDENT principals targeting
// their own record by numeric id
func (s *AuthorizationService) AdminOrSelfByID(ctx context.Context, p *Principal, id int64) Decision {
	if p == nil {
		return deny("no authenticated principal")
	}
	if p.IsAdmin() {
		return allow()
	}
	if p.Role == models.RoleStudent && s.ownership.IsOwnID(ctx, p.Email, id) {
		return allow()
	}
	return deny("not the record owner")
}

// AdminOrSelfByStudentID allows ADMIN principals, or STUDENT principals
// targeting their own record by business key
func (s *AuthorizationService) AdminOrSelfByStudentID(ctx context.Context, p *Principal, studentID string) Decision {
	if p == nil {
		return deny("no authenticated principal")
	}
	if p.IsAdmin() {
		return allow()
	}
	if p.Role == models.RoleStudent && s.ownership.IsOwnStudentID(ctx, p.Email, studentID) {
		return allow()
	}
	return deny("not the record owner")
}
