package transition_reservation

import (
	"fmt"
	"strings"

	"github.com/jellomark/reservation-service/internal/domain"
)

// validateRequest валидирует запрос на смену статуса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ReservationID) == "" {
		return fmt.Errorf("%w: reservationId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ActorID) == "" {
		return fmt.Errorf("%w: actorId is required", ErrInvalidInput)
	}

	if req.ActorRole != RoleMember && req.ActorRole != RoleOwner {
		return fmt.Errorf("%w: unknown actor role %q", ErrInvalidInput, req.ActorRole)
	}

	if req.Action.targetStatus() == "" {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	// Причина обязательна только для отклонения; для остальных действий
	// присланная причина игнорируется
	if req.Action == ActionReject {
		if req.Reason == nil {
			return ErrReasonRequired
		}
		trimmed := strings.TrimSpace(*req.Reason)
		if trimmed == "" {
			return ErrReasonRequired
		}
		if len([]rune(trimmed)) > domain.MaxRejectionReasonLength {
			return fmt.Errorf("%w: reason must be at most %d characters",
				ErrInvalidInput, domain.MaxRejectionReasonLength)
		}
		req.Reason = &trimmed
	} else {
		req.Reason = nil
	}

	return nil
}
