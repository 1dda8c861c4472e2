package repository

import (
	"context"
	"errors"
	"time"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type LeadGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ILeadRepository = (*LeadGormRepository)(nil)

func NewLeadGormRepository(db *gorm.DB) *LeadGormRepository {
	return &LeadGormRepository{db: db}
}

// List returns the newest requests first. Search matches name, email or
// phone.
func (r *LeadGormRepository) List(ctx context.Context, f interfaces.LeadFilter) ([]entities.Lead, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.Lead{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		q = q.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR phone LIKE ? ESCAPE '\')`, p, p, p)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entities.Lead
	err := q.Order("created_at desc").Offset((f.Page - 1) * f.Limit).Limit(f.Limit).Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *LeadGormRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	var l entities.Lead
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Lead{}, nil
	}
	return l, err
}

// MarkConverted stamps the lead as won by projectID. A lead that is
// missing or already stamped reports gorm.ErrRecordNotFound.
func (r *LeadGormRepository) MarkConverted(ctx context.Context, id, projectID string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&entities.Lead{}).
		Where("id = ? AND (converted_to_project_id IS NULL OR converted_to_project_id = '')", id).
		Updates(map[string]any{
			"status":                  entities.LeadStatusWon,
			"converted_to_project_id": projectID,
			"converted_at":            at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
