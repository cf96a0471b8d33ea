package handler

import (
	"net/http"

	"github.com/pontogestor/admin-api/internal/api/handler/router"
	"github.com/pontogestor/admin-api/internal/usecases/authenticating"
	"github.com/pontogestor/admin-api/internal/usecases/billing"
	"github.com/pontogestor/admin-api/internal/usecases/company"
	"github.com/pontogestor/admin-api/internal/usecases/reporting"
	"github.com/pontogestor/admin-api/internal/usecases/syncing"
	"github.com/pontogestor/admin-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Companies(service company.CompanyService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies",
			Method:      http.MethodGet,
			Handler:     CompanyList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies",
			Method:      http.MethodPost,
			Handler:     CreateCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id",
			Method:      http.MethodGet,
			Handler:     GetCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Invoices(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invoices",
			Method:      http.MethodGet,
			Handler:     InvoiceList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices",
			Method:      http.MethodPost,
			Handler:     CreateInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices/batch",
			Method:      http.MethodPost,
			Handler:     GenerateBatch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateInvoiceStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/stats",
			Method:      http.MethodGet,
			Handler:     GetDashboardStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/delinquency",
			Method:      http.MethodGet,
			Handler:     GetDelinquencyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/executive",
			Method:      http.MethodPost,
			Handler:     GenerateExecutiveReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/logs",
			Method:      http.MethodGet,
			Handler:     ListSystemLogs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Syncing(service syncing.SyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/headcounts",
			Method:      http.MethodPost,
			Handler:     SyncHeadcounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/test-connection",
			Method:      http.MethodPost,
			Handler:     TestConnection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
