package repository

import (
	"context"
	"errors"
	"fmt"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntityGormRepository persists any gorm model by primary key "id".
type EntityGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEntityRepository = (*EntityGormRepository)(nil)

func NewEntityGormRepository(db *gorm.DB) *EntityGormRepository {
	return &EntityGormRepository{db: db}
}

// Create inserts the row only. Child rows are inserted by the caller one by
// one so each can be compensated.
func (r *EntityGormRepository) Create(ctx context.Context, entity any) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

// Update writes the keys of changes that map to a column of model. Unknown
// keys are ignored.
func (r *EntityGormRepository) Update(ctx context.Context, model any, id string, changes map[string]any) (int64, error) {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(model); err != nil {
		return 0, fmt.Errorf("parse model: %w", err)
	}

	columns := make(map[string]any, len(changes))
	for k, v := range changes {
		f := stmt.Schema.LookUpField(k)
		if f == nil || f.DBName == "" || f.PrimaryKey {
			continue
		}
		columns[f.DBName] = v
	}

	db := r.db.WithContext(ctx)
	if len(columns) == 0 {
		var n int64
		err := db.Model(model).Where("id = ?", id).Count(&n).Error
		return n, err
	}
	res := db.Model(model).Where("id = ?", id).Updates(columns)
	return res.RowsAffected, res.Error
}

// Delete removes the row and, for quotations and invoices, their items.
func (r *EntityGormRepository) Delete(ctx context.Context, model any, id string) (int64, error) {
	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch model.(type) {
		case *entities.Quotation:
			if err := tx.Where("quotation_id = ?", id).Delete(&entities.QuotationItem{}).Error; err != nil {
				return err
			}
		case *entities.Invoice:
			if err := tx.Where("invoice_id = ?", id).Delete(&entities.InvoiceItem{}).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(model)
		rows = res.RowsAffected
		return res.Error
	})
	return rows, err
}

// Get loads dest by id, with line items when the model has them.
func (r *EntityGormRepository) Get(ctx context.Context, dest any, id string) (bool, error) {
	q := r.db.WithContext(ctx)
	switch dest.(type) {
	case *entities.Quotation, *entities.Invoice:
		q = q.Preload("Items")
	}
	err := q.Where("id = ?", id).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
