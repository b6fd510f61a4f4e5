// Package garden holds the planting domain: plant ids, garden areas, the
// companion list optimizer and the grid layout planner.
//
// Both algorithms are pure and deterministic. They depend only on the
// CompanionKnowledge interface and may run concurrently as long as the
// knowledge they are given does not change during a call.
package garden
