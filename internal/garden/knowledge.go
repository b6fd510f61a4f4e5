package garden

// Compatibility scores returned by CompanionKnowledge implementations.
const (
	ForbiddenScore   = -100
	HelpfulDirection = 2
)

// CompanionKnowledge answers pairwise companion questions. Implementations must
// be safe for concurrent reads and must not change while a planning call runs.
type CompanionKnowledge interface {
	// CompanionCandidates returns every plant with a helps relationship to or from id.
	CompanionCandidates(id PlantID) []PlantID
	// IsForbiddenPair reports an avoid relationship in either direction.
	// A plant is never forbidden with itself.
	IsForbiddenPair(a, b PlantID) bool
	// CompatibilityScore is ForbiddenScore for forbidden pairs, otherwise
	// HelpfulDirection per recorded helps direction (0, 2 or 4).
	CompatibilityScore(a, b PlantID) int
}
