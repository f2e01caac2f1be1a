package model

// SubmissionInfo is what can be recovered from an LMS export filename. Every field is a
// best-effort guess.
type SubmissionInfo struct {
	StudentNameToken string `json:"studentNameToken"`
	FirstNameGuess   string `json:"firstNameGuess"`
	LastNameGuess    string `json:"lastNameGuess"`
	UserID           string `json:"userId"`
	SubmissionID     string `json:"submissionId"`
	OriginalFilename string `json:"originalFilename"`
	IsLate           bool   `json:"isLate"`
}
