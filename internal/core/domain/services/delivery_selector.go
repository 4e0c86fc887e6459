package services

import (
	"errors"

	"orderhub/internal/core/domain/model/user"
)

// ErrNoDeliveryAvailable is returned when no candidate is eligible for assignment.
var ErrNoDeliveryAvailable = errors.New("no delivery person available")

// DeliverySelector picks the eligible candidate with the smallest student id.
// Candidates must be available and have a numeric student id; equal ranks are
// resolved by candidate id so the choice never depends on input order.
type DeliverySelector struct{}

func NewDeliverySelector() DeliverySelector {
	return DeliverySelector{}
}

// Select returns the chosen candidate or ErrNoDeliveryAvailable.
func (DeliverySelector) Select(candidates []user.Candidate) (user.Candidate, error) {
	var (
		best     user.Candidate
		bestRank float64
		found    bool
	)

	for _, c := range candidates {
		if !c.IsAvailable {
			continue
		}
		rank, ok := c.Rank()
		if !ok {
			continue
		}

		if !found || rank < bestRank || (rank == bestRank && c.ID < best.ID) {
			best, bestRank, found = c, rank, true
		}
	}

	if !found {
		return user.Candidate{}, ErrNoDeliveryAvailable
	}
	return best, nil
}
