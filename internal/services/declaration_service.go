package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ama-mesquita/app-declaracao/internal/config"
	"github.com/ama-mesquita/app-declaracao/internal/logging"
	"github.com/ama-mesquita/app-declaracao/internal/models"
	"github.com/ama-mesquita/app-declaracao/internal/observability"
	"github.com/ama-mesquita/app-declaracao/internal/utils"
	"go.uber.org/zap"
)

const (
	// TemplateName identifies the residency declaration in traces and logs
	TemplateName = "declaracao_residencia"

	// DocumentTitle is the centered heading of the declaration
	DocumentTitle = "DECLARACAO"

	fileNamePrefix = "Declaracao_"
	fileNameSuffix = ".pdf"
)

// monthNames maps month numbers to the names printed on the declaration.
// Written without the cedilla, as the declaration has always been printed.
var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Marco", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the Portuguese name of month 1..12
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: got %d", models.ErrInvalidMonth, month)
	}
	return monthNames[month-1], nil
}

// NewDeclarationDate splits t, taken in loc, into the parts printed on the date line
func NewDeclarationDate(t time.Time, loc *time.Location) models.DeclarationDate {
	if loc != nil {
		t = t.In(loc)
	}
	// time.Month is always 1..12
	month, _ := MonthName(int(t.Month()))
	return models.DeclarationDate{
		Day:   fmt.Sprintf("%02d", t.Day()),
		Month: month,
		Year:  fmt.Sprintf("%04d", t.Year()),
	}
}

// DeclarationFileName builds the download name from the name exactly as typed
func DeclarationFileName(rawName string) string {
	return fileNamePrefix + strings.ReplaceAll(rawName, " ", "_") + fileNameSuffix
}

// DeclarationService turns form submissions into residency declaration PDFs
type DeclarationService struct {
	template config.DeclarationTemplate
	location *time.Location
	renderer *DocumentRenderer
	logger   *logging.SafeLogger
	now      func() time.Time
}

// DeclarationServiceInstance is the global declaration service
var DeclarationServiceInstance *DeclarationService

// NewDeclarationService creates a declaration service
func NewDeclarationService(template config.DeclarationTemplate, location *time.Location, renderer *DocumentRenderer, logger *logging.SafeLogger) *DeclarationService {
	if location == nil {
		location = time.UTC
	}
	return &DeclarationService{
		template: template,
		location: location,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// InitDeclarationService initializes the global declaration service from config.AppConfig
func InitDeclarationService() {
	cfg := config.AppConfig
	logger := observability.Logger().With(zap.String("service", "declaration"))

	if !utils.ValidateCPF(cfg.Template.IssuerTaxID) {
		logger.Warn("issuer CPF check digits do not verify",
			zap.String("issuer_cpf", observability.MaskCPF(cfg.Template.IssuerTaxID)))
	}

	renderer := NewDocumentRenderer(cfg.Template, RendererOptions{
		LogoPath:    cfg.LogoPath,
		Compression: cfg.PDFCompression,
	}, logger)
	DeclarationServiceInstance = NewDeclarationService(cfg.Template, cfg.Location, renderer, logger)

	logger.Info("declaration service initialized",
		zap.String("logo_path", cfg.LogoPath),
		zap.String("timezone", cfg.Timezone),
		zap.String("organization", cfg.Template.OrganizationShortName))
}

// Build formats a submission into the field set printed on the declaration
func (s *DeclarationService) Build(record models.SubmissionRecord) models.Declaration {
	submittedAt := record.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = s.now()
	}

	declaration := models.Declaration{
		Name:         utils.SanitizeString(record.Name),
		Identifiers:  utils.FormatIdentifiers(record.NationalID, record.TaxID, record.PostalCode),
		Street:       utils.SanitizeString(record.Street),
		Number:       utils.SanitizeString(record.Number),
		Neighborhood: utils.SanitizeString(record.Neighborhood),
		City:         utils.SanitizeString(record.City),
		Date:         NewDeclarationDate(submittedAt, s.location),
		FileName:     DeclarationFileName(record.Name),
	}

	s.warnUnformatted(record)

	return declaration
}

// warnUnformatted reports identifiers that were printed as typed
func (s *DeclarationService) warnUnformatted(record models.SubmissionRecord) {
	checks := []struct {
		field string
		raw   string
	}{
		{"rg", record.NationalID},
		{"cpf", record.TaxID},
		{"cep", record.PostalCode},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.raw) != "" && !identifierFormatted(c.field, c.raw) {
			observability.IdentifierWarnings.WithLabelValues(c.field).Inc()
			s.logger.Warn("identifier printed as typed", zap.String("field", c.field),
				zap.Int("digits", len(utils.OnlyDigits(c.raw))))
		}
	}

	if len(utils.OnlyDigits(record.TaxID)) == 11 && !utils.ValidateCPF(record.TaxID) {
		observability.IdentifierWarnings.WithLabelValues("cpf").Inc()
		s.logger.Warn("cpf check digits do not verify",
			zap.String("cpf", observability.MaskCPF(record.TaxID)))
	}
}

// identifierFormatted reports whether the formatter recognized the digit count
func identifierFormatted(field, raw string) bool {
	n := len(utils.OnlyDigits(raw))
	switch field {
	case "rg":
		return n == 8 || n == 9
	case "cpf":
		return n == 11
	case "cep":
		return n == 8
	}
	return false
}

// BodyText interpolates the declaration paragraph
func (s *DeclarationService) BodyText(d models.Declaration) string {
	t := s.template
	return fmt.Sprintf(
		"Eu, %s, brasileiro, identidade %s e CPF %s, "+
			"residente e domiciliado nesta cidade de %s: %s "+
			"CEP: %s, declaro para devidos fins de comprovacao de residencia que "+
			"%s, RG: %s e CPF: %s, reside no endereco: "+
			"%s, %s - %s - %s, "+
			"%s, CEP: %s.",
		t.IssuerName, t.IssuerNationalID, t.IssuerTaxID,
		t.IssuerCity, t.IssuerAddress,
		t.IssuerPostalCode,
		d.Name, d.Identifiers.NationalID, d.Identifiers.TaxID,
		d.Street, d.Number, d.Neighborhood, d.City,
		t.State, d.Identifiers.PostalCode,
	)
}

// DateLine formats the place and date line, e.g. "Mesquita, 05 de Marco de 2026"
func (s *DeclarationService) DateLine(d models.Declaration) string {
	return fmt.Sprintf("%s, %s de %s de %s", s.template.IssueCity, d.Date.Day, d.Date.Month, d.Date.Year)
}

// Content assembles every text printed on the declaration
func (s *DeclarationService) Content(d models.Declaration, createdAt time.Time) DocumentContent {
	return DocumentContent{
		Title:      DocumentTitle,
		Body:       s.BodyText(d),
		DateLine:   s.DateLine(d),
		SignerName: s.template.IssuerName,
		SignerRole: s.template.SignerRole,
		FileName:   d.FileName,
		CreatedAt:  createdAt,
	}
}

// Generate validates, formats and renders one submission
func (s *DeclarationService) Generate(ctx context.Context, record models.SubmissionRecord) (*models.RenderedDocument, error) {
	if strings.TrimSpace(record.Name) == "" {
		observability.DeclarationsGenerated.WithLabelValues("invalid").Inc()
		return nil, models.ErrEmptyName
	}
	if record.SubmittedAt.IsZero() {
		record.SubmittedAt = s.now()
	}

	_, span := utils.TraceBusinessLogic(ctx, "build_declaration")
	declaration := s.Build(record)
	span.End()

	doc, err := s.renderer.Render(ctx, s.Content(declaration, record.SubmittedAt))
	if err != nil {
		observability.DeclarationsGenerated.WithLabelValues("error").Inc()
		s.logger.Error("failed to render declaration",
			zap.String("name", observability.MaskName(declaration.Name)),
			zap.Error(err))
		return nil, err
	}

	observability.DeclarationsGenerated.WithLabelValues("success").Inc()
	s.logger.Info("declaration generated",
		zap.String("name", observability.MaskName(declaration.Name)),
		zap.String("cpf", observability.MaskCPF(record.TaxID)),
		zap.Int("pages", doc.Pages),
		zap.Int("bytes", len(doc.Content)))

	return doc, nil
}
