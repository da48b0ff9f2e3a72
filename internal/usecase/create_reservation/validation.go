package create_reservation

import (
	"fmt"
	"strings"

	"github.com/jellomark/reservation-service/internal/domain"
)

// validateRequest валидирует запрос на создание брони
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ShopID) == "" {
		return fmt.Errorf("%w: shopId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.MemberID) == "" {
		return fmt.Errorf("%w: memberId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TreatmentID) == "" {
		return fmt.Errorf("%w: treatmentId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	// Заметка опциональна, но ограничена по длине (пробелы по краям обрезаются)
	if req.Memo != nil {
		trimmed := strings.TrimSpace(*req.Memo)
		if len([]rune(trimmed)) > domain.MaxMemoLength {
			return fmt.Errorf("%w: memo must be at most %d characters", ErrInvalidInput, domain.MaxMemoLength)
		}
		if trimmed == "" {
			req.Memo = nil
		} else {
			req.Memo = &trimmed
		}
	}

	return nil
}
