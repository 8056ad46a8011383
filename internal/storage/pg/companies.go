package pg

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/companies"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/domain"
	"github.com/jackc/pgx/v5"
)

var _ companies.Repository = (*CompanyRepository)(nil)

type CompanyRepository struct {
	pool *ConnectionPool
}

func NewCompanyRepository(pool *ConnectionPool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func (r *CompanyRepository) FindCompany(ctx context.Context, cnpj string) (*domain.Company, error) {
	ctx, cancel := r.pool.newQueryCtx(ctx)
	defer cancel()

	const companySQL = `
		SELECT
			cnpj, razao_social, nome_fantasia, situacao_cadastral, data_situacao_cadastral,
			data_inicio_atividade, natureza_juridica, cnae_fiscal, capital_social,
			logradouro, numero, bairro, cep, uf, municipio, atualizado_em
		FROM companies
		WHERE cnpj = $1
	`

	var c domain.Company
	var registeredAt, startedAt *time.Time
	err := r.pool.conn.QueryRow(ctx, companySQL, cnpj).Scan(
		&c.CNPJ,
		&c.CorporateName,
		&c.TradeName,
		&c.RegistrationStatus,
		&registeredAt,
		&startedAt,
		&c.LegalNature,
		&c.PrimaryCNAE,
		&c.ShareCapital,
		&c.Street,
		&c.Number,
		&c.District,
		&c.ZipCode,
		&c.StateCode,
		&c.MunicipalityName,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		slog.Error("Company lookup failed", "cnpj", cnpj, "error", err)
		return nil, classify(err)
	}

	c.RegistrationDate = toDate(registeredAt)
	c.ActivityStartDate = toDate(startedAt)
	return &c, nil
}

func (r *CompanyRepository) FindPartners(ctx context.Context, cnpj string) ([]domain.Partner, error) {
	ctx, cancel := r.pool.newQueryCtx(ctx)
	defer cancel()

	const partnersSQL = `
		SELECT
			cnpj, identificador_socio, nome_razao_social_socio, cnpj_cpf_socio,
			qualificacao_socio, data_entrada_sociedade, faixa_etaria, cpf_representante_legal
		FROM partners
		WHERE cnpj = $1
		ORDER BY nome_razao_social_socio, id
	`

	rows, err := r.pool.conn.Query(ctx, partnersSQL, cnpj)
	if err != nil {
		slog.Error("Partners lookup failed", "cnpj", cnpj, "error", err)
		return nil, classify(err)
	}
	defer rows.Close()

	partners := make([]domain.Partner, 0)
	for rows.Next() {
		var p domain.Partner
		var enteredAt *time.Time
		if err := rows.Scan(
			&p.CNPJ,
			&p.PartnerType,
			&p.Name,
			&p.Document,
			&p.Qualification,
			&enteredAt,
			&p.AgeRange,
			&p.RepresentativeDoc,
		); err != nil {
			return nil, classify(err)
		}
		p.EntryDate = toDate(enteredAt)
		partners = append(partners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return partners, nil
}

func toDate(t *time.Time) *domain.Date {
	if t == nil {
		return nil
	}
	d := domain.NewDate(t.Year(), t.Month(), t.Day())
	return &d
}
