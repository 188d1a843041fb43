package email

import "context"

// SendWelcomeEmail greets a user who just signed up.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, name, dashboardURL string) error {
	data := map[string]string{
		"UserName":     name,
		"DashboardURL": dashboardURL,
	}

	return c.SendEmail(ctx, to, "Welcome to Acme Invoices!", TemplateWelcome, data)
}
