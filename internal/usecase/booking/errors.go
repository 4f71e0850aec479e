package booking

import (
	"context"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	"github.com/BruksfildServices01/court-booking/internal/dto"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
	"github.com/BruksfildServices01/court-booking/internal/metrics"
)

var (
	ErrMissingFields = httperr.ErrValidation("missing_fields", "Missing required fields")
	ErrInvalidCourt  = httperr.ErrValidation("invalid_court_id", "court_id must be a positive integer")
	ErrSlotTaken     = httperr.ErrConflict("slot_taken", "Court already booked for this time slot.")
)

// maxTxAttempts bounds how often a transaction aborted by a serialization
// failure is run again.
const maxTxAttempts = 3

// inTx runs fn in a store transaction, repeating it while the store aborts
// with a serialization failure. Such an abort says nothing about overlap, so
// it is never reported as a conflict.
func inTx(ctx context.Context, repo domain.Repository, fn func(tx domain.Repository) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = repo.Transaction(ctx, fn)
		if !httperr.IsSerializationFailure(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

// mapStoreError turns constraint failures raised by the store into the
// same errors the in-transaction checks return.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case httperr.IsExclusionConflict(err):
		return ErrSlotTaken
	case httperr.IsCheckViolation(err):
		return httperr.ErrValidation("invalid_interval", "start_time must be before end_time")
	default:
		return err
	}
}

func record(operation string, err error) {
	outcome := metrics.OutcomeRejected
	switch {
	case err == nil:
		outcome = metrics.OutcomeOK
	case httperr.KindOf(err) == httperr.KindConflict:
		outcome = metrics.OutcomeConflict
	case httperr.KindOf(err) == httperr.KindUnknown:
		outcome = metrics.OutcomeError
	}
	metrics.RecordBooking(operation, outcome)
}

func parseCourtID(raw string) (uint, error) {
	id, err := dto.Ref(raw).Uint()
	if err != nil {
		return 0, ErrInvalidCourt
	}
	return id, nil
}
