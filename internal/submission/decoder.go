// Package submission recovers student identity and timing from LMS export filenames of the
// form name_[LATE_]userid_submissionid_original.ext, where both ids are numeric.
package submission

import (
	"path"
	"regexp"
	"strings"

	"psdgrader/internal/model"
)

const (
	separator   = "_"
	lateMarker  = "LATE"
	minSegments = 5
)

var nameBoundary = regexp.MustCompile(`^([a-z]+)([A-Z].*)$`)

// Decode parses filename. The boolean is false when the name does not follow the LMS
// convention, which is not an error.
func Decode(filename string) (model.SubmissionInfo, bool) {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	stem := strings.TrimSuffix(base, path.Ext(base))

	parts := strings.Split(stem, separator)
	if len(parts) < minSegments {
		return model.SubmissionInfo{}, false
	}

	info := model.SubmissionInfo{StudentNameToken: parts[0]}
	i := 1
	if parts[i] == lateMarker {
		info.IsLate = true
		i++
	}
	if !numeric(parts[i]) || !numeric(parts[i+1]) {
		return model.SubmissionInfo{}, false
	}
	info.UserID = parts[i]
	info.SubmissionID = parts[i+1]
	info.OriginalFilename = strings.Join(parts[i+2:], separator)
	info.FirstNameGuess, info.LastNameGuess = SplitName(info.StudentNameToken)
	return info, true
}

func numeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SplitName splits a combined name token at the boundary between a leading lowercase run
// and a capitalized remainder. Without such a boundary the whole token is the last name.
func SplitName(token string) (first, last string) {
	if m := nameBoundary.FindStringSubmatch(token); m != nil {
		return m[1], m[2]
	}
	return "", token
}
