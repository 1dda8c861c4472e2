package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerGormRepository)(nil)

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// FindByEmailOrPhone returns the oldest customer matching either value.
// Blank values never match.
func (r *CustomerGormRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (entities.Customer, error) {
	email, phone = strings.TrimSpace(email), strings.TrimSpace(phone)
	if email == "" && phone == "" {
		return entities.Customer{}, nil
	}

	q := r.db.WithContext(ctx)
	switch {
	case email != "" && phone != "":
		q = q.Where("LOWER(email) = ? OR phone = ?", strings.ToLower(email), phone)
	case email != "":
		q = q.Where("LOWER(email) = ?", strings.ToLower(email))
	default:
		q = q.Where("phone = ?", phone)
	}

	var c entities.Customer
	err := q.Order("created_at asc").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	return c, err
}

type EmployeeGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEmployeeRepository = (*EmployeeGormRepository)(nil)

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

func (r *EmployeeGormRepository) List(ctx context.Context, status string) ([]entities.Employee, error) {
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []entities.Employee
	err := q.Order("name asc").Find(&out).Error
	return out, err
}

type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.first(ctx, "LOWER(email) = ?", strings.ToLower(email))
}

func (r *UserGormRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserGormRepository) first(ctx context.Context, cond string, arg any) (entities.User, error) {
	var u entities.User
	err := r.db.WithContext(ctx).Where(cond, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	return u, err
}

// ReferenceGormRepository loads the options of form select fields.
type ReferenceGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IReferenceRepository = (*ReferenceGormRepository)(nil)

func NewReferenceGormRepository(db *gorm.DB) *ReferenceGormRepository {
	return &ReferenceGormRepository{db: db}
}

func (r *ReferenceGormRepository) LoadReferenceData(ctx context.Context) (form.ReferenceData, error) {
	db := r.db.WithContext(ctx)
	var out form.ReferenceData

	var customers []entities.Customer
	if err := db.Select("id", "name").Order("name asc").Find(&customers).Error; err != nil {
		return out, fmt.Errorf("load customers: %w", err)
	}
	for _, c := range customers {
		out.Customers = append(out.Customers, form.Ref{ID: c.ID, Label: c.Name})
	}

	var employees []entities.Employee
	if err := db.Select("id", "name", "role").Where("status = ?", entities.EmployeeStatusActive).Order("name asc").Find(&employees).Error; err != nil {
		return out, fmt.Errorf("load employees: %w", err)
	}
	for _, e := range employees {
		label := e.Name
		if e.Role != "" {
			label = fmt.Sprintf("%s (%s)", e.Name, e.Role)
		}
		out.Employees = append(out.Employees, form.Ref{ID: e.ID, Label: label})
	}

	var projects []entities.Project
	if err := db.Select("id", "name").Order("created_at desc").Find(&projects).Error; err != nil {
		return out, fmt.Errorf("load projects: %w", err)
	}
	for _, p := range projects {
		out.Projects = append(out.Projects, form.Ref{ID: p.ID, Label: p.Name})
	}

	var leads []entities.Lead
	if err := db.Select("id", "name", "service_type").Where("converted_to_project_id IS NULL").Order("created_at desc").Find(&leads).Error; err != nil {
		return out, fmt.Errorf("load leads: %w", err)
	}
	for _, l := range leads {
		out.Leads = append(out.Leads, form.Ref{ID: l.ID, Label: fmt.Sprintf("%s - %s", l.Name, form.ServiceLabel(l.ServiceType))})
	}

	var quotations []entities.Quotation
	if err := db.Select("id", "quote_number").Order("created_at desc").Find(&quotations).Error; err != nil {
		return out, fmt.Errorf("load quotations: %w", err)
	}
	for _, q := range quotations {
		out.Quotations = append(out.Quotations, form.Ref{ID: q.ID, Label: q.QuoteNumber})
	}

	var invoices []entities.Invoice
	if err := db.Select("id", "invoice_number").Order("created_at desc").Find(&invoices).Error; err != nil {
		return out, fmt.Errorf("load invoices: %w", err)
	}
	for _, i := range invoices {
		out.Invoices = append(out.Invoices, form.Ref{ID: i.ID, Label: i.InvoiceNumber})
	}
	return out, nil
}

type DashboardGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDashboardRepository = (*DashboardGormRepository)(nil)

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

type statusCount struct {
	Status string
	N      int64
}

func (r *DashboardGormRepository) Aggregate(ctx context.Context) (entities.DashboardStats, error) {
	db := r.db.WithContext(ctx)
	out := entities.DashboardStats{
		LeadsByStatus:    map[string]int64{},
		ProjectsByStatus: map[string]int64{},
	}

	var leads []statusCount
	if err := db.Model(&entities.Lead{}).Select("status, COUNT(*) AS n").Group("status").Scan(&leads).Error; err != nil {
		return out, fmt.Errorf("count leads: %w", err)
	}
	for _, c := range leads {
		out.LeadsByStatus[c.Status] = c.N
		out.TotalLeads += c.N
	}
	if err := db.Model(&entities.Lead{}).Where("converted_to_project_id IS NOT NULL").Count(&out.ConvertedLeads).Error; err != nil {
		return out, fmt.Errorf("count converted leads: %w", err)
	}

	var projects []statusCount
	if err := db.Model(&entities.Project{}).Select("status, COUNT(*) AS n").Group("status").Scan(&projects).Error; err != nil {
		return out, fmt.Errorf("count projects: %w", err)
	}
	for _, c := range projects {
		out.ProjectsByStatus[c.Status] = c.N
		if c.Status == entities.ProjectStatusPlanning || c.Status == entities.ProjectStatusInProgress {
			out.ActiveProjects += c.N
		}
	}

	sums := []struct {
		model any
		col   string
		where string
		dest  *float64
	}{
		{&entities.Quotation{}, "total_amount", "status <> 'rejected'", &out.QuotationsValue},
		{&entities.Invoice{}, "total_amount", "status <> 'cancelled'", &out.InvoicedValue},
		{&entities.Payment{}, "amount", "status = 'completed'", &out.CollectedValue},
	}
	for _, s := range sums {
		if err := db.Model(s.model).Where(s.where).Select("COALESCE(SUM(" + s.col + "), 0)").Scan(s.dest).Error; err != nil {
			return out, fmt.Errorf("sum %s: %w", s.col, err)
		}
	}
	out.OutstandingValue = out.InvoicedValue - out.CollectedValue
	if out.OutstandingValue < 0 {
		out.OutstandingValue = 0
	}

	if err := db.Model(&entities.AMCContract{}).Where("status = ?", entities.AMCStatusActive).Count(&out.ActiveAMCContracts).Error; err != nil {
		return out, fmt.Errorf("count amc contracts: %w", err)
	}
	return out, nil
}
