package utils

import (
	"strings"

	"github.com/ama-mesquita/app-declaracao/internal/models"
)

// OnlyDigits removes every character that is not an ASCII digit
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatCPF formats a CPF as 000.000.000-00.
// Input that does not carry exactly 11 digits is returned unchanged.
func FormatCPF(value string) string {
	v := OnlyDigits(value)
	if len(v) == 11 {
		return v[:3] + "." + v[3:6] + "." + v[6:9] + "-" + v[9:]
	}
	return value
}

// FormatRG formats an RG as 00.000.000-0 (9 digits) or 00.000.000 (8 digits,
// no check digit). Any other input is returned unchanged.
func FormatRG(value string) string {
	v := OnlyDigits(value)
	switch len(v) {
	case 9:
		return v[:2] + "." + v[2:5] + "." + v[5:8] + "-" + v[8:]
	case 8:
		return v[:2] + "." + v[2:5] + "." + v[5:]
	}
	return value
}

// FormatCEP formats a CEP as 00.000-000.
// Input that does not carry exactly 8 digits is returned unchanged.
func FormatCEP(value string) string {
	v := OnlyDigits(value)
	if len(v) == 8 {
		return v[:2] + "." + v[2:5] + "-" + v[5:]
	}
	return value
}

// FormatIdentifiers applies the RG, CPF and CEP formatters
func FormatIdentifiers(rg, cpf, cep string) models.FormattedIdentifiers {
	return models.FormattedIdentifiers{
		NationalID: FormatRG(rg),
		TaxID:      FormatCPF(cpf),
		PostalCode: FormatCEP(cep),
	}
}
