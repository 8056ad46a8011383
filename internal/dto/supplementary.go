package dto

import "github.com/DjordjeVuckovic/gazette-hunter/internal/domain"

type CitiesResponse struct {
	Cities []domain.City `json:"cities"`
}

type CityResponse struct {
	City domain.City `json:"city"`
}

type CompanyInfoResponse struct {
	CNPJInfo domain.Company `json:"cnpj_info"`
}

type PartnersResponse struct {
	TotalPartners int              `json:"total_partners"`
	Partners      []domain.Partner `json:"partners"`
}

type AggregatesResponse struct {
	StateCode  string             `json:"state_code"`
	Aggregates []domain.Aggregate `json:"aggregates"`
}

type SuggestionRequest struct {
	EmailAddress string `json:"email_address"`
	Name         string `json:"name"`
	Content      string `json:"content"`
}

type SuggestionResponse struct {
	Status string `json:"status"`
}
