package routes

import (
	"hvac_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth                 = "/auth"
	PathConsultationRequests = "/consultation-requests"
	PathProjects             = "/projects"
	PathEmployees            = "/employees"
	PathForms                = "/forms"
	PathDashboard            = "/dashboard"
	PathReconciliations      = "/reconciliations"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Login)
		auth.GET("/verify", h.Verify)
		auth.POST("/logout", h.Logout)
	}
}

func addCRMRoutes(rg *gin.RouterGroup, h handlerSet) {
	leads := rg.Group(PathConsultationRequests)
	{
		leads.GET("", h.leads.List)
		leads.GET("/:id", h.leads.Get)
		leads.PATCH("/:id", h.leads.Patch)
		leads.DELETE("/:id", h.leads.Delete)
		leads.POST("/:id/convert", h.leads.Convert)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.projects.Create)
		projects.GET("/:id", h.projects.Get)
	}

	employees := rg.Group(PathEmployees)
	{
		employees.GET("", h.employees.List)
		employees.POST("", h.employees.Create)
		employees.PUT("/:id", h.employees.Update)
	}

	rg.GET(PathDashboard, h.backOffice.Dashboard)

	recs := rg.Group(PathReconciliations)
	{
		recs.GET("", h.backOffice.ListReconciliations)
		recs.POST("/:id/resolve", h.backOffice.ResolveReconciliation)
	}
}

func addFormRoutes(rg *gin.RouterGroup, h *handlers.FormHandler) {
	forms := rg.Group(PathForms)
	{
		forms.GET("/:module", h.GetForm)
		forms.POST("/:module", h.CreateRecord)
		forms.POST("/:module/change", h.ApplyChange)
		forms.POST("/:module/validate", h.ValidateForm)
		forms.PUT("/:module/:id", h.UpdateRecord)
		forms.DELETE("/:module/:id", h.DeleteRecord)
	}
}
