package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`

	// Document configuration
	Timezone       string         `json:"timezone"`
	Location       *time.Location `json:"-"`
	LogoPath       string         `json:"logo_path"`
	PDFCompression bool           `json:"pdf_compression"`

	// Fixed texts of the declaration
	Template DeclarationTemplate `json:"template"`
}

// DeclarationTemplate holds the identity of the declarant and the letterhead
// printed on every residency declaration.
type DeclarationTemplate struct {
	IssuerName       string `json:"issuer_name"`
	IssuerNationalID string `json:"issuer_national_id"`
	IssuerTaxID      string `json:"issuer_tax_id"`
	IssuerCity       string `json:"issuer_city"`
	IssuerAddress    string `json:"issuer_address"`
	IssuerPostalCode string `json:"issuer_postal_code"`
	SignerRole       string `json:"signer_role"`

	OrganizationShortName    string `json:"organization_short_name"`
	OrganizationName         string `json:"organization_name"`
	OrganizationAddress      string `json:"organization_address"`
	OrganizationRegistration string `json:"organization_registration"`

	State     string `json:"state"`
	IssueCity string `json:"issue_city"`
}

// DefaultTemplate returns the template of the Alto Uruguai residents association.
func DefaultTemplate() DeclarationTemplate {
	return DeclarationTemplate{
		IssuerName:       "Paulo Cesar de Souza",
		IssuerNationalID: "09.013.043-6",
		IssuerTaxID:      "016.015.967-90",
		IssuerCity:       "Mesquita",
		IssuerAddress:    "Rua Jutai, 52 - Alto Uruguai",
		IssuerPostalCode: "26556-240",
		SignerRole:       "Presidente",

		OrganizationShortName:    "A.M.A",
		OrganizationName:         "ASSOCIACAO DE MORADORES E AMIGOS DO ALTO URUGUAI - MESQUITA",
		OrganizationAddress:      "TRAVESSA TULIPA, 01 - ALTO URUGUAI",
		OrganizationRegistration: "CEP: 26556-190  CNPJ: 30.193.254/0001-34",

		State:     "RJ",
		IssueCity: "Mesquita",
	}
}

var (
	AppConfig *Config
)

// LoadEnvFile copies the given dotenv files (.env by default) into the
// process environment. Missing files are skipped and variables already set
// win over the file.
func LoadEnvFile(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read .env file: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func LoadConfig() error {
	if err := LoadEnvFile(); err != nil {
		return err
	}

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	tracingEnabled, err := getEnvAsBoolOrDefault("TRACING_ENABLED", false)
	if err != nil {
		return err
	}

	compression, err := getEnvAsBoolOrDefault("PDF_COMPRESSION", true)
	if err != nil {
		return err
	}

	timezone := getEnvOrDefault("TIMEZONE", "America/Sao_Paulo")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// Tracing configuration
		TracingEnabled:  tracingEnabled,
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),

		// Document configuration
		Timezone:       timezone,
		Location:       location,
		LogoPath:       getEnvOrDefault("LOGO_PATH", "logoalto.jpg"),
		PDFCompression: compression,

		Template: loadTemplate(),
	}

	return nil
}

// loadTemplate overrides each default template text with its environment variable
func loadTemplate() DeclarationTemplate {
	def := DefaultTemplate()
	return DeclarationTemplate{
		IssuerName:       getEnvOrDefault("ISSUER_NAME", def.IssuerName),
		IssuerNationalID: getEnvOrDefault("ISSUER_NATIONAL_ID", def.IssuerNationalID),
		IssuerTaxID:      getEnvOrDefault("ISSUER_TAX_ID", def.IssuerTaxID),
		IssuerCity:       getEnvOrDefault("ISSUER_CITY", def.IssuerCity),
		IssuerAddress:    getEnvOrDefault("ISSUER_ADDRESS", def.IssuerAddress),
		IssuerPostalCode: getEnvOrDefault("ISSUER_POSTAL_CODE", def.IssuerPostalCode),
		SignerRole:       getEnvOrDefault("SIGNER_ROLE", def.SignerRole),

		OrganizationShortName:    getEnvOrDefault("ORGANIZATION_SHORT_NAME", def.OrganizationShortName),
		OrganizationName:         getEnvOrDefault("ORGANIZATION_NAME", def.OrganizationName),
		OrganizationAddress:      getEnvOrDefault("ORGANIZATION_ADDRESS", def.OrganizationAddress),
		OrganizationRegistration: getEnvOrDefault("ORGANIZATION_REGISTRATION", def.OrganizationRegistration),

		State:     getEnvOrDefault("DECLARATION_STATE", def.State),
		IssueCity: getEnvOrDefault("DECLARATION_ISSUE_CITY", def.IssueCity),
	}
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBoolOrDefault parses a boolean environment variable
func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
