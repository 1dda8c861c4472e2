package usecase

import (
	"context"
	"errors"
	"strings"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase/interfaces"
)

var (
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrProjectNotFound  = errors.New("project not found")
)

type IProjectUseCase interface {
	Create(ctx context.Context, record form.Record) (Result, error)
	Get(ctx context.Context, id string) (entities.Project, error)
}

type ProjectUseCase struct {
	forms IFormManager
	repo  interfaces.IEntityRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(forms IFormManager, repo interfaces.IEntityRepository) *ProjectUseCase {
	return &ProjectUseCase{forms: forms, repo: repo}
}

func (u *ProjectUseCase) Create(ctx context.Context, record form.Record) (Result, error) {
	return u.forms.Create(ctx, form.ModuleProjects, record)
}

func (u *ProjectUseCase) Get(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	var p entities.Project
	found, err := u.repo.Get(ctx, &p, id)
	if err != nil {
		return entities.Project{}, err
	}
	if !found {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}
