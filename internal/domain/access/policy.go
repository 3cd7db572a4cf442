// Package access decides, per mutation, whether the acting principal
// may perform it. Decisions are pure functions of the principal and the
// target, callable without any HTTP or store machinery; routes apply
// them before the entity services run.
package access

import "gallery-app/internal/domain/users"

// CanManageCatalog gates creation, mutation and deletion of artworks,
// artists, categories and techniques.
func CanManageCatalog(p Principal) error {
	if !p.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// CanManageSales gates every sale operation, reads included.
func CanManageSales(p Principal) error {
	if !p.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// CanCreateInquiry is open to everyone, anonymous visitors included.
func CanCreateInquiry(Principal) error { return nil }

// CanActOnUser allows reads, updates and password changes on a user
// record for the subject themselves or an admin.
func CanActOnUser(p Principal, subjectID uint) error {
	if p.IsAdmin() || (!p.IsAnonymous() && p.ID == subjectID) {
		return nil
	}
	return ErrForbidden
}

// CanDeactivateUser forbids self-deactivation for every role; an admin
// may deactivate anyone else.
func CanDeactivateUser(p Principal, subjectID uint) error {
	if p.ID == subjectID {
		return ErrForbidden
	}
	if !p.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// MustVerifyCurrentPassword reports whether a password change requires
// the subject's current password. Self-service callers must present
// it; an admin resetting someone else's password does not.
func MustVerifyCurrentPassword(p Principal, subjectID uint) bool {
	return !p.IsAdmin() || p.ID == subjectID
}

// FilterUserPatch drops the fields the principal may not change before
// the patch reaches the update engine. Only admins may move email or
// role; a self-updating client keeps just the profile fields. Dropped
// fields are filtered silently, not rejected.
func FilterUserPatch(p Principal, in users.UserPatch) users.UserPatch {
	if p.IsAdmin() {
		return in
	}
	in.Email = nil
	in.Role = nil
	return in
}
