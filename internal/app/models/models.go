package models

// SubjectStatus tells whether a subject is taken for the first time or retaken
type SubjectStatus string

const (
	SubjectStatusNew    SubjectStatus = "NEW"
	SubjectStatusRetake SubjectStatus = "RETAKE"
)

// StatusOf maps the retake flag to a status
func StatusOf(isRetake bool) SubjectStatus {
	if isRetake {
		return SubjectStatusRetake
	}
	return SubjectStatusNew
}
