package entities

import "time"

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusOnLeave  = "on_leave"
	EmployeeStatusInactive = "inactive"
)

type Employee struct {
	ID               string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	EmployeeCode     string    `json:"employee_code" gorm:"size:30;uniqueIndex"`
	Name             string    `json:"name" gorm:"size:150;not null"`
	Email            string    `json:"email" gorm:"size:150"`
	Phone            string    `json:"phone" gorm:"size:30"`
	Role             string    `json:"role" gorm:"size:40"`
	Department       string    `json:"department" gorm:"size:40"`
	HireDate         string    `json:"hire_date" gorm:"size:10"`
	Salary           float64   `json:"salary"`
	Status           string    `json:"status" gorm:"size:20;index"`
	Address          string    `json:"address" gorm:"type:text"`
	EmergencyContact string    `json:"emergency_contact" gorm:"size:100"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
