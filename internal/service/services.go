package service

import (
	"github.com/deppfellow/invoice-dashboard/internal/lib/job"
	"github.com/deppfellow/invoice-dashboard/internal/repository"
	"github.com/deppfellow/invoice-dashboard/internal/server"
)

type Services struct {
	Invoices  *InvoiceService
	Customers *CustomerService
	Dashboard *DashboardService
	Users     *UserService
	Job       *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var mailer WelcomeMailer
	if s.Job != nil {
		mailer = s.Job
	}

	return &Services{
		Invoices:  NewInvoiceService(repos.Invoices),
		Customers: NewCustomerService(repos.Customers),
		Dashboard: NewDashboardService(repos.Invoices, repos.Revenue),
		Users:     NewUserService(repos.Users, mailer, s.Logger),
		Job:       s.Job,
	}, nil
}
