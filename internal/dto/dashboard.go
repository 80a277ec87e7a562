package dto

import "github.com/Wekraft-001/admin-hub/internal/models"

// DashboardResponse is the admin landing page payload.
type DashboardResponse struct {
	Stats          models.DashboardStats `json:"stats"`
	RecentLearners []models.Learner      `json:"recentLearners"`
	TopModules     []models.Module       `json:"topModules"`
}
