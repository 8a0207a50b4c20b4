package apperrors

import (
	"errors"
	"testing"
)

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	err := NewCustomError(ErrRegistrationAlreadyExists, "student STU001 is already registered for course CS201")

	if !errors.Is(err, ErrRegistrationAlreadyExists) {
		t.Error("errors.Is does not match the wrapped sentinel")
	}
	if err.Error() != "student STU001 is already registered for course CS201" {
		t.Errorf("Error() = %q, want the custom message", err.Error())
	}
}

func TestCustomErrorWithoutMessage(t *testing.T) {
	err := NewCustomError(ErrStudentNotFound, "")
	if err.Error() != ErrStudentNotFound.Error() {
		t.Errorf("Error() = %q, want sentinel message", err.Error())
	}
}
