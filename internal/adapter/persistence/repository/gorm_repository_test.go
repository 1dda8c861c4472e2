package repository

import (
	"context"
	"testing"
	"time"

	"hvac_crm/internal/config"
	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/infrastructure/database"
	"hvac_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.Config{DBDriver: "sqlite", DatabaseDSN: "file:" + uuid.NewString() + "?mode=memory&cache=shared"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestEntityGormRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEntityGormRepository(db)

	q := &entities.Quotation{ID: "q-1", QuoteNumber: "QT-1", ProjectID: "p-1", Status: "draft", TotalAmount: 100,
		Items: []entities.QuotationItem{{ID: "ignored", Description: "x"}}}
	require.NoError(t, repo.Create(ctx, q))
	require.NoError(t, repo.Create(ctx, &entities.QuotationItem{ID: "qi-1", QuotationID: "q-1", Description: "AC unit", Quantity: 2, UnitPrice: 50, Total: 100}))

	var got entities.Quotation
	found, err := repo.Get(ctx, &got, "q-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Items, 1, "associations must not be inserted with the parent")
	require.Equal(t, "qi-1", got.Items[0].ID)

	t.Run("update ignores unknown keys and the id", func(t *testing.T) {
		n, err := repo.Update(ctx, &entities.Quotation{}, "q-1", map[string]any{
			"status": "sent", "customer_type": "new", "id": "other", "total_amount": 250.0,
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		var after entities.Quotation
		_, err = repo.Get(ctx, &after, "q-1")
		require.NoError(t, err)
		require.Equal(t, "sent", after.Status)
		require.Equal(t, 250.0, after.TotalAmount)
	})

	t.Run("update missing row", func(t *testing.T) {
		n, err := repo.Update(ctx, &entities.Quotation{}, "nope", map[string]any{"status": "sent"})
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("update with nothing writable reports existence", func(t *testing.T) {
		n, err := repo.Update(ctx, &entities.Quotation{}, "q-1", map[string]any{"unknown": 1})
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
	})

	t.Run("delete removes items", func(t *testing.T) {
		n, err := repo.Delete(ctx, &entities.Quotation{}, "q-1")
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		var items int64
		require.NoError(t, db.Model(&entities.QuotationItem{}).Count(&items).Error)
		require.Zero(t, items)

		found, err := repo.Get(ctx, &entities.Quotation{}, "q-1")
		require.NoError(t, err)
		require.False(t, found)
	})
}

func seedLead(t *testing.T, db *gorm.DB, id, name, status string, created time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&entities.Lead{
		ID: id, Name: name, Email: id + "@x.com", Phone: "98765" + id[len(id)-1:], Status: entities.LeadStatus(status), CreatedAt: created,
	}).Error)
}

func TestLeadGormRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewLeadGormRepository(db)
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	seedLead(t, db, "l-1", "Jane Doe", "new", base)
	seedLead(t, db, "l-2", "John 100% Smith", "new", base.Add(time.Hour))
	seedLead(t, db, "l-3", "Asha", "contacted", base.Add(2*time.Hour))

	t.Run("filter and paging", func(t *testing.T) {
		out, total, err := repo.List(ctx, interfaces.LeadFilter{Status: "new", Page: 1, Limit: 1})
		require.NoError(t, err)
		require.Equal(t, int64(2), total)
		require.Len(t, out, 1)
		require.Equal(t, "l-2", out[0].ID)
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		out, total, err := repo.List(ctx, interfaces.LeadFilter{Search: "100%", Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Equal(t, int64(1), total)
		require.Equal(t, "l-2", out[0].ID)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		_, total, err := repo.List(ctx, interfaces.LeadFilter{Search: "JANE", Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Equal(t, int64(1), total)
	})

	t.Run("get missing", func(t *testing.T) {
		l, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		require.Empty(t, l.ID)
	})

	t.Run("mark converted", func(t *testing.T) {
		require.NoError(t, repo.MarkConverted(ctx, "l-1", "p-1", base))
		l, err := repo.GetByID(ctx, "l-1")
		require.NoError(t, err)
		require.Equal(t, entities.LeadStatusWon, l.Status)
		require.True(t, l.Converted())
		require.NotNil(t, l.ConvertedAt)

		require.ErrorIs(t, repo.MarkConverted(ctx, "nope", "p-1", base), gorm.ErrRecordNotFound)
		require.ErrorIs(t, repo.MarkConverted(ctx, "l-1", "p-2", base), gorm.ErrRecordNotFound)
	})
}

func TestCustomerGormRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCustomerGormRepository(db)
	require.NoError(t, db.Create(&entities.Customer{ID: "c-1", Name: "Jane", Email: "Jane@X.com", Phone: "111"}).Error)

	c, err := repo.FindByEmailOrPhone(ctx, "jane@x.com", "")
	require.NoError(t, err)
	require.Equal(t, "c-1", c.ID)

	c, err = repo.FindByEmailOrPhone(ctx, "other@x.com", "111")
	require.NoError(t, err)
	require.Equal(t, "c-1", c.ID)

	c, err = repo.FindByEmailOrPhone(ctx, "other@x.com", "222")
	require.NoError(t, err)
	require.Empty(t, c.ID)

	c, err = repo.FindByEmailOrPhone(ctx, " ", "")
	require.NoError(t, err)
	require.Empty(t, c.ID)
}

func TestReferenceAndDashboardRepositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	pid := "p-1"
	require.NoError(t, db.Create(&entities.Customer{ID: "c-1", Name: "Acme"}).Error)
	require.NoError(t, db.Create(&entities.Employee{ID: "e-1", EmployeeCode: "EMP-1", Name: "Ravi", Role: "technician", Status: "active"}).Error)
	require.NoError(t, db.Create(&entities.Employee{ID: "e-2", EmployeeCode: "EMP-2", Name: "Old", Status: "inactive"}).Error)
	require.NoError(t, db.Create(&entities.Project{ID: pid, Name: "AC Repair - Jane", Status: "planning"}).Error)
	require.NoError(t, db.Create(&entities.Lead{ID: "l-1", Name: "Jane", ServiceType: "ac_repair", Status: "won", ConvertedToProjectID: &pid}).Error)
	require.NoError(t, db.Create(&entities.Lead{ID: "l-2", Name: "Asha", ServiceType: "amc", Status: "new"}).Error)
	require.NoError(t, db.Create(&entities.Invoice{ID: "i-1", InvoiceNumber: "INV-1", ProjectID: pid, CustomerID: "c-1", Status: "sent", TotalAmount: 1000}).Error)
	require.NoError(t, db.Create(&entities.Payment{ID: "pay-1", InvoiceID: "i-1", Amount: 400, Status: "completed"}).Error)
	require.NoError(t, db.Create(&entities.AMCContract{ID: "a-1", ContractNumber: "AMC-1", Status: "active"}).Error)

	ref, err := NewReferenceGormRepository(db).LoadReferenceData(ctx)
	require.NoError(t, err)
	require.Len(t, ref.Employees, 1)
	require.Equal(t, "Ravi (technician)", ref.Employees[0].Label)
	require.Len(t, ref.Leads, 1)
	require.Equal(t, "Asha - Annual Maintenance Contract", ref.Leads[0].Label)
	require.Equal(t, "INV-1", ref.Invoices[0].Label)

	stats, err := NewDashboardGormRepository(db).Aggregate(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.TotalLeads)
	require.Equal(t, int64(1), stats.ConvertedLeads)
	require.Equal(t, int64(1), stats.LeadsByStatus["new"])
	require.Equal(t, int64(1), stats.ActiveProjects)
	require.Equal(t, 1000.0, stats.InvoicedValue)
	require.Equal(t, 400.0, stats.CollectedValue)
	require.Equal(t, 600.0, stats.OutstandingValue)
	require.Equal(t, int64(1), stats.ActiveAMCContracts)

	emps, err := NewEmployeeGormRepository(db).List(ctx, "")
	require.NoError(t, err)
	require.Len(t, emps, 2)

	u, err := NewUserGormRepository(db).GetByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	require.Empty(t, u.ID)
}

func TestReconciliationItemMapping(t *testing.T) {
	resolved := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	in := entities.PendingReconciliation{
		ID: "r-1", Kind: entities.ReconciliationInvoiceItems, EntityID: "i-1", RelatedIDs: []string{"invoice:i-1"},
		Reason: "timeout", Status: entities.ReconciliationResolved,
		CreatedAt: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC), ResolvedAt: &resolved,
	}
	out := fromReconciliationItem(toReconciliationItem(in))
	require.Equal(t, in.ID, out.ID)
	require.Equal(t, in.Kind, out.Kind)
	require.Equal(t, in.RelatedIDs, out.RelatedIDs)
	require.True(t, in.CreatedAt.Equal(out.CreatedAt))
	require.NotNil(t, out.ResolvedAt)
	require.True(t, resolved.Equal(*out.ResolvedAt))

	require.Equal(t, `%100\%%`, likePattern(" 100% "))
}
