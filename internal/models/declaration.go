package models

import "time"

// SubmissionRecord is what a person types into the declaration form.
// It lives only for the duration of one request.
type SubmissionRecord struct {
	Name         string    `json:"nome" form:"nome"`
	NationalID   string    `json:"rg" form:"rg"`
	TaxID        string    `json:"cpf" form:"cpf"`
	Street       string    `json:"rua" form:"rua"`
	Number       string    `json:"numero" form:"numero"`
	Neighborhood string    `json:"bairro" form:"bairro"`
	City         string    `json:"cidade" form:"cidade"`
	PostalCode   string    `json:"cep" form:"cep"`
	SubmittedAt  time.Time `json:"-" form:"-"`
}

// FormattedIdentifiers holds RG, CPF and CEP in their punctuated forms, or
// exactly as typed when the digit count did not match.
type FormattedIdentifiers struct {
	NationalID string `json:"rg"`
	TaxID      string `json:"cpf"`
	PostalCode string `json:"cep"`
}

// IdentifiersInput is the request body of the identifier formatting endpoint
type IdentifiersInput struct {
	NationalID string `json:"rg" form:"rg"`
	TaxID      string `json:"cpf" form:"cpf"`
	PostalCode string `json:"cep" form:"cep"`
}

// DeclarationDate is the issue date as printed, e.g. "05", "Marco", "2026".
type DeclarationDate struct {
	Day   string `json:"dia"`
	Month string `json:"mes"`
	Year  string `json:"ano"`
}

// Declaration is the fully formatted field set handed to the renderer.
type Declaration struct {
	Name         string               `json:"nome"`
	Identifiers  FormattedIdentifiers `json:"identificadores"`
	Street       string               `json:"rua"`
	Number       string               `json:"numero"`
	Neighborhood string               `json:"bairro"`
	City         string               `json:"cidade"`
	Date         DeclarationDate      `json:"data"`
	FileName     string               `json:"arquivo"`
}

// RenderedDocument is the final PDF. It is never modified after rendering.
type RenderedDocument struct {
	Content     []byte
	FileName    string
	ContentType string
	Pages       int
	// LetterheadTop is the vertical position, in millimeters, where the
	// letterhead text starts on the first page.
	LetterheadTop float64
}
