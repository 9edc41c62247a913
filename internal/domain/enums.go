package domain

// Difficulty classifies a practice problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ProblemStatus tracks where a problem sits in the revision lifecycle.
type ProblemStatus string

const (
	ProblemStatusPending    ProblemStatus = "PENDING"
	ProblemStatusRevisiting ProblemStatus = "REVISITING"
	ProblemStatusMastered   ProblemStatus = "MASTERED"
)

func (s ProblemStatus) String() string { return string(s) }

func (s ProblemStatus) IsValid() bool {
	switch s {
	case ProblemStatusPending, ProblemStatusRevisiting, ProblemStatusMastered:
		return true
	}
	return false
}

// EntryStatus is the state of a single session entry.
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "PENDING"
	EntryStatusCompleted EntryStatus = "COMPLETED"
)

func (s EntryStatus) String() string { return string(s) }

func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPending, EntryStatusCompleted:
		return true
	}
	return false
}

// Confidence is the user's self-assessed recall strength at review time.
type Confidence string

const (
	ConfidenceForgot        Confidence = "FORGOT"
	ConfidenceLessConfident Confidence = "LESS_CONFIDENT"
	ConfidenceMastered      Confidence = "MASTERED"
)

func (c Confidence) String() string { return string(c) }

func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceForgot, ConfidenceLessConfident, ConfidenceMastered:
		return true
	}
	return false
}

// RevisionMode selects how the eligible pool is filtered for a session.
type RevisionMode string

const (
	RevisionModeRandom  RevisionMode = "RANDOM"
	RevisionModeTopic   RevisionMode = "TOPIC"
	RevisionModeCompany RevisionMode = "COMPANY"
	RevisionModeCombo   RevisionMode = "COMBO"
)

func (m RevisionMode) String() string { return string(m) }

func (m RevisionMode) IsValid() bool {
	switch m {
	case RevisionModeRandom, RevisionModeTopic, RevisionModeCompany, RevisionModeCombo:
		return true
	}
	return false
}
