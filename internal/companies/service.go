// Package companies looks up registered businesses and their partners by CNPJ.
package companies

import (
	"context"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
)

// Repository reads companies by normalized CNPJ. FindCompany returns nil when
// no company is registered under cnpj.
type Repository interface {
	FindCompany(ctx context.Context, cnpj string) (*domain.Company, error)
	FindPartners(ctx context.Context, cnpj string) ([]domain.Partner, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) (*Service, error) {
	if repo == nil {
		return nil, apperr.NewConfiguration("company service requires a repository")
	}
	return &Service{repo: repo}, nil
}

func (s *Service) GetCompany(ctx context.Context, rawCNPJ string) (domain.Company, error) {
	cnpj, err := NormalizeCNPJ(rawCNPJ)
	if err != nil {
		return domain.Company{}, err
	}

	company, err := s.repo.FindCompany(ctx, cnpj)
	if err != nil {
		return domain.Company{}, err
	}
	if company == nil {
		return domain.Company{}, apperr.ErrCompanyNotFound
	}
	return *company, nil
}

func (s *Service) GetPartners(ctx context.Context, rawCNPJ string) (int, []domain.Partner, error) {
	cnpj, err := NormalizeCNPJ(rawCNPJ)
	if err != nil {
		return 0, nil, err
	}

	partners, err := s.repo.FindPartners(ctx, cnpj)
	if err != nil {
		return 0, nil, err
	}
	if partners == nil {
		partners = []domain.Partner{}
	}
	return len(partners), partners, nil
}
