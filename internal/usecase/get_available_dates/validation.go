package get_available_dates

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ShopID == "" {
		return fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	if req.TreatmentID == "" {
		return fmt.Errorf("%w: treatmentID is required", ErrInvalidInput)
	}

	if req.Month.IsZero() {
		return fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	return nil
}
