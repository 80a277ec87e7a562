package models

// DashboardStats are the headline counters on the admin dashboard.
type DashboardStats struct {
	TotalLearners      int `json:"totalLearners"`
	ActiveModules      int `json:"activeModules"`
	CompletionRate     int `json:"completionRate"`
	CertificatesIssued int `json:"certificatesIssued"`
}
