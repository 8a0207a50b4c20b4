package validation

import "regexp"

// Validation rule patterns
var (
	// Student business key pattern: the STU prefix followed by a
	// zero-padded number of at least three digits.
	StudentIDPattern = `^STU[0-9]{3,}$`

	// Course code pattern mirrors the storage-level CHECK constraint
	CourseCodePattern = `^[A-Za-z0-9]{3,20}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	StudentID  *regexp.Regexp
	CourseCode *regexp.Regexp
}{
	StudentID:  regexp.MustCompile(StudentIDPattern),
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// IsStudentID reports whether s is a well-formed student business key
func IsStudentID(s string) bool {
	return CompiledPatterns.StudentID.MatchString(s)
}

// IsCourseCode reports whether s is a well-formed course code
func IsCourseCode(s string) bool {
	return CompiledPatterns.CourseCode.MatchString(s)
}
