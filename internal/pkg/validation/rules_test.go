package validation

import "testing"

func TestIsStudentID(t *testing.T) {
	valid := []string{"STU001", "STU042", "STU999", "STU1000"}
	for _, s := range valid {
		if !IsStudentID(s) {
			t.Errorf("IsStudentID(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "STU", "STU01", "stu001", "20230042", "STU00A", " STU001"}
	for _, s := range invalid {
		if IsStudentID(s) {
			t.Errorf("IsStudentID(%q) = true, want false", s)
		}
	}
}

func TestIsCourseCode(t *testing.T) {
	valid := []string{"CS201", "MA101", "PHYS1001"}
	for _, s := range valid {
		if !IsCourseCode(s) {
			t.Errorf("IsCourseCode(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "CS", "CS 201", "VERYLONGCOURSECODE12345"}
	for _, s := range invalid {
		if IsCourseCode(s) {
			t.Errorf("IsCourseCode(%q) = true, want false", s)
		}
	}
}
