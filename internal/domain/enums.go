package domain

type CaseComplexity string

const (
	ComplexitySimple        CaseComplexity = "simple"
	ComplexityModerate      CaseComplexity = "moderate"
	ComplexityComplex       CaseComplexity = "complex"
	ComplexityHighlyComplex CaseComplexity = "highly_complex"
)

// AllComplexities is the canonical ordering used for exhaustive policy
// validation and display.
var AllComplexities = []CaseComplexity{
	ComplexitySimple,
	ComplexityModerate,
	ComplexityComplex,
	ComplexityHighlyComplex,
}

// ValidComplexities is the canonical set of accepted complexity strings.
var ValidComplexities = map[string]bool{
	"simple": true, "moderate": true, "complex": true, "highly_complex": true,
}

type CaseStatus string

const (
	CasePending    CaseStatus = "pending"
	CaseScheduled  CaseStatus = "scheduled"
	CaseInProgress CaseStatus = "in_progress"
	CaseCompleted  CaseStatus = "completed"
	CaseAdjourned  CaseStatus = "adjourned"
)

type HearingStatus string

const (
	HearingScheduled HearingStatus = "scheduled"
	HearingCompleted HearingStatus = "completed"
	HearingAdjourned HearingStatus = "adjourned"
)

// QueueLevel is the priority tier derived from case complexity.
// 3 is the highest priority, 1 the lowest.
type QueueLevel int

const (
	Queue1 QueueLevel = 1
	Queue2 QueueLevel = 2
	Queue3 QueueLevel = 3
)
