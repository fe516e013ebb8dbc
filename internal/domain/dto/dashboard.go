package dto

import "github.com/opsgain/portops/internal/domain"

type DashboardResponse struct {
	Dataset *domain.PeriodDataset    `json:"dataset"`
	Metrics *domain.FinancialMetrics `json:"metrics"`
}
