package paylink

import (
	"context"

	"paylink/app/repositories"
)

// Stats reads the payment rollup: totals, amount of completed payments, and
// per-status counts. Read-only.
func (s *Service) Stats(ctx context.Context) (*repositories.Stats, error) {
	stats, err := s.payments.GetStats(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return stats, nil
}
