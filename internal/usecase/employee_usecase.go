package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase/interfaces"
)

var (
	ErrInvalidEmployeeID     = errors.New("invalid employee id")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrInvalidEmployeeStatus = errors.New("invalid employee status")
)

type IEmployeeUseCase interface {
	List(ctx context.Context, status string) ([]entities.Employee, error)
	Create(ctx context.Context, record form.Record) (Result, error)
	Update(ctx context.Context, id string, record form.Record) (Result, error)
}

type EmployeeUseCase struct {
	employees interfaces.IEmployeeRepository
	forms     IFormManager
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(employees interfaces.IEmployeeRepository, forms IFormManager) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, forms: forms}
}

func (u *EmployeeUseCase) List(ctx context.Context, status string) ([]entities.Employee, error) {
	status = strings.TrimSpace(status)
	switch status {
	case "", entities.EmployeeStatusActive, entities.EmployeeStatusOnLeave, entities.EmployeeStatusInactive:
	default:
		return nil, ErrInvalidEmployeeStatus
	}
	out, err := u.employees.List(ctx, status)
	if err != nil {
		log.Printf("[employee][usecase] list failed status=%s err=%v", status, err)
		return nil, err
	}
	if out == nil {
		out = []entities.Employee{}
	}
	return out, nil
}

func (u *EmployeeUseCase) Create(ctx context.Context, record form.Record) (Result, error) {
	return u.forms.Create(ctx, form.ModuleEmployees, record)
}

func (u *EmployeeUseCase) Update(ctx context.Context, id string, record form.Record) (Result, error) {
	if strings.TrimSpace(id) == "" {
		return Result{}, ErrInvalidEmployeeID
	}
	out, err := u.forms.Update(ctx, form.ModuleEmployees, id, record)
	if errors.Is(err, ErrRecordNotFound) {
		return Result{}, ErrEmployeeNotFound
	}
	return out, err
}
