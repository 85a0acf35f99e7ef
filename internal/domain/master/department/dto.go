package department

import "github.com/campus-hr/payroll-backend-go/internal/pkg/validator"

type Department struct {
	ID   string
	Name string
	Head *string
}

type CreateDepartmentRequest struct {
	Name string  `json:"name"`
	Head *string `json:"head,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID   string
	Name *string `json:"name,omitempty"`
	Head *string `json:"head,omitempty"`
}

type DepartmentResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Head *string `json:"head,omitempty"`
}
