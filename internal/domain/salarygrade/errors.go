package salarygrade

import "errors"

var (
	ErrGradeStepNotFound = errors.New("salary grade step not found")
	ErrGradeStepExists   = errors.New("salary grade step already exists")
	ErrGradeStepInUse    = errors.New("salary grade step is referenced by payroll records")
)
