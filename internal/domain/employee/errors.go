package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeNoExists    = errors.New("employee number already exists")
	ErrEmployeeHasNoSalary = errors.New("employee has neither a salary grade nor a base salary")
	ErrEmployeeDeactivated = errors.New("employee is deactivated")
)
