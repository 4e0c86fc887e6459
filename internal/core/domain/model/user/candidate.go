package user

import (
	"math"
	"strconv"
	"strings"
)

// Candidate is a delivery person considered for assignment.
type Candidate struct {
	ID          string
	Name        string
	StudentID   string
	IsAvailable bool
}

// Rank parses StudentID as the ordering key. Any finite decimal number is
// accepted; ok is false otherwise.
func (c Candidate) Rank() (rank float64, ok bool) {
	rank, err := strconv.ParseFloat(strings.TrimSpace(c.StudentID), 64)
	if err != nil || math.IsNaN(rank) || math.IsInf(rank, 0) {
		return 0, false
	}
	return rank, true
}

// IsEligible reports whether the candidate may receive an assignment.
func (c Candidate) IsEligible() bool {
	_, ok := c.Rank()
	return c.IsAvailable && ok
}
