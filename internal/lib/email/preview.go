package email

// PreviewData contains sample template data for local preview/testing.
//
//	PreviewData["welcome"]["UserName"] == "Delba de Oliveira"
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserName":     "Delba de Oliveira",
		"DashboardURL": "http://localhost:8080/docs",
	},
}
