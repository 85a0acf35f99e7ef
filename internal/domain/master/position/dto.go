package position

import "github.com/campus-hr/payroll-backend-go/internal/pkg/validator"

type Position struct {
	ID        string
	Name      string
	IsFaculty bool
}

type CreatePositionRequest struct {
	Name      string `json:"name"`
	IsFaculty bool   `json:"is_faculty"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePositionRequest struct {
	ID        string
	Name      *string `json:"name,omitempty"`
	IsFaculty *bool   `json:"is_faculty,omitempty"`
}

type PositionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsFaculty bool   `json:"is_faculty"`
}
