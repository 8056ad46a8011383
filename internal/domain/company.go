package domain

import "time"

type Company struct {
	CNPJ               string     `json:"cnpj"`
	CorporateName      string     `json:"razao_social"`
	TradeName          *string    `json:"nome_fantasia,omitempty"`
	RegistrationStatus *string    `json:"situacao_cadastral,omitempty"`
	RegistrationDate   *Date      `json:"data_situacao_cadastral,omitempty"`
	ActivityStartDate  *Date      `json:"data_inicio_atividade,omitempty"`
	LegalNature        *string    `json:"natureza_juridica,omitempty"`
	PrimaryCNAE        *string    `json:"cnae_fiscal,omitempty"`
	ShareCapital       *float64   `json:"capital_social,omitempty"`
	Street             *string    `json:"logradouro,omitempty"`
	Number             *string    `json:"numero,omitempty"`
	District           *string    `json:"bairro,omitempty"`
	ZipCode            *string    `json:"cep,omitempty"`
	StateCode          *string    `json:"uf,omitempty"`
	MunicipalityName   *string    `json:"municipio,omitempty"`
	UpdatedAt          *time.Time `json:"atualizado_em,omitempty"`
}

type Partner struct {
	CNPJ              string  `json:"cnpj"`
	PartnerType       *string `json:"identificador_socio,omitempty"`
	Name              string  `json:"nome_razao_social_socio"`
	Document          *string `json:"cnpj_cpf_socio,omitempty"`
	Qualification     *string `json:"qualificacao_socio,omitempty"`
	EntryDate         *Date   `json:"data_entrada_sociedade,omitempty"`
	AgeRange          *string `json:"faixa_etaria,omitempty"`
	RepresentativeDoc *string `json:"cpf_representante_legal,omitempty"`
}
