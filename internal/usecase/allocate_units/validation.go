package allocate_units

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GroupID <= 0 {
		return fmt.Errorf("%w: groupID must be positive", ErrInvalidInput)
	}
	if req.ProductModelID <= 0 {
		return fmt.Errorf("%w: productModelID must be positive", ErrInvalidInput)
	}
	if req.GroupSize <= 0 {
		return fmt.Errorf("%w: groupSize must be positive", ErrInvalidInput)
	}
	if req.AlreadyAssignedQty < 0 {
		return fmt.Errorf("%w: alreadyAssignedQty must not be negative", ErrInvalidInput)
	}
	if len(req.UnitIDs) == 0 {
		return fmt.Errorf("%w: at least one rental unit must be selected", ErrInvalidInput)
	}
	for _, id := range req.UnitIDs {
		if id <= 0 {
			return fmt.Errorf("%w: unit id must be positive", ErrInvalidInput)
		}
	}
	return nil
}
