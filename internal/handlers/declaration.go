package handlers

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"mime"
	"net/http"
	"time"

	"github.com/ama-mesquita/app-declaracao/internal/models"
	"github.com/ama-mesquita/app-declaracao/internal/observability"
	"github.com/ama-mesquita/app-declaracao/internal/services"
	"github.com/ama-mesquita/app-declaracao/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	formTemplate = "form.html"
	formHeading  = "EMISSÃO - ALTO URUGUAI"
)

// LoadTemplates parses the embedded HTML templates
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// formPage is the data of the declaration form template
type formPage struct {
	Organization string
	Heading      string
	Error        string
	Values       models.SubmissionRecord
}

func newFormPage(values models.SubmissionRecord, errMsg string) formPage {
	return formPage{
		Organization: "Associação Alto Uruguai",
		Heading:      formHeading,
		Error:        errMsg,
		Values:       values,
	}
}

// ShowForm godoc
// @Summary Formulário de declaração de residência
// @Description Página HTML com o formulário de emissão da declaração.
// @Tags declaration
// @Produce html
// @Success 200 {string} string "Formulário HTML"
// @Router / [get]
func ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, newFormPage(models.SubmissionRecord{}, ""))
}

// SubmitForm godoc
// @Summary Emitir declaração a partir do formulário
// @Description Recebe o formulário HTML e devolve o PDF da declaração. Em caso de erro de validação o formulário é exibido novamente com a mensagem.
// @Tags declaration
// @Accept x-www-form-urlencoded
// @Produce application/pdf
// @Param nome formData string true "Nome completo"
// @Param rg formData string false "RG (só números)"
// @Param cpf formData string false "CPF (só números)"
// @Param rua formData string false "Endereço (rua)"
// @Param numero formData string false "Número"
// @Param bairro formData string false "Bairro"
// @Param cidade formData string false "Cidade"
// @Param cep formData string false "CEP (só números)"
// @Success 200 {file} file "Declaração em PDF"
// @Failure 400 {string} string "Formulário com a mensagem de validação"
// @Failure 500 {string} string "Formulário com a mensagem de erro"
// @Router /declaracao [post]
func SubmitForm(c *gin.Context) {
	var record models.SubmissionRecord
	if err := c.ShouldBind(&record); err != nil {
		c.HTML(http.StatusBadRequest, formTemplate, newFormPage(record, "Formulário inválido"))
		return
	}

	result := utils.ValidateSubmission(record)
	if !result.IsValid {
		observability.DeclarationsGenerated.WithLabelValues("invalid").Inc()
		c.HTML(http.StatusBadRequest, formTemplate, newFormPage(record, result.FirstMessage()))
		return
	}

	doc, err := generate(c.Request.Context(), c, record)
	if err != nil {
		c.HTML(http.StatusInternalServerError, formTemplate, newFormPage(record, "Não foi possível gerar o PDF"))
		return
	}

	writeDocument(c.Request.Context(), c, doc)
}

// CreateDeclaration godoc
// @Summary Emitir declaração de residência
// @Description Formata RG, CPF e CEP e gera a declaração de residência em PDF. RG, CPF e CEP com quantidade de dígitos inesperada são impressos como digitados.
// @Tags declaration
// @Accept json
// @Produce application/pdf
// @Param data body models.SubmissionRecord true "Dados do declarado"
// @Success 200 {file} file "Declaração em PDF"
// @Failure 400 {object} ValidationErrorResponse "Nome não informado ou corpo inválido"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /declarations [post]
func CreateDeclaration(c *gin.Context) {
	ctx, span := observability.Tracer().Start(c.Request.Context(), "CreateDeclaration")
	defer span.End()
	span.SetAttributes(
		attribute.String("operation", "create_declaration"),
		attribute.String("service", "declaration"),
	)

	logger := observability.Logger().With(zap.String("request_id", c.GetString("RequestID")))

	_, parseSpan := utils.TraceInputParsing(ctx, "submission")
	var record models.SubmissionRecord
	if err := c.ShouldBind(&record); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, map[string]interface{}{
			"content_type": c.ContentType(),
		})
		parseSpan.End()
		logger.Debug("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	parseSpan.End()

	_, validationSpan := utils.TraceInputValidation(ctx, "submission", "nome")
	result := utils.ValidateSubmission(record)
	if !result.IsValid {
		utils.AddSpanAttribute(validationSpan, "validation.errors", len(result.Errors))
		validationSpan.End()
		observability.DeclarationsGenerated.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   result.FirstMessage(),
			Details: result.Errors,
		})
		return
	}
	validationSpan.End()

	doc, err := generate(ctx, c, record)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate declaration"})
		return
	}

	writeDocument(ctx, c, doc)
}

// FormatIdentifiers godoc
// @Summary Formatar RG, CPF e CEP
// @Description Devolve RG, CPF e CEP pontuados. Valores com quantidade de dígitos inesperada voltam inalterados.
// @Tags declaration
// @Accept json
// @Produce json
// @Param data body models.IdentifiersInput true "Identificadores como digitados"
// @Success 200 {object} models.FormattedIdentifiers
// @Failure 400 {object} ErrorResponse "Corpo inválido"
// @Router /identifiers/format [post]
func FormatIdentifiers(c *gin.Context) {
	var input models.IdentifiersInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, utils.FormatIdentifiers(input.NationalID, input.TaxID, input.PostalCode))
}

// generate stamps the submission time and renders the declaration under ctx
func generate(ctx context.Context, c *gin.Context, record models.SubmissionRecord) (*models.RenderedDocument, error) {
	service := services.DeclarationServiceInstance
	if service == nil {
		observability.Logger().Error("declaration service not initialized")
		return nil, models.ErrServiceNotReady
	}

	record.SubmittedAt = time.Now()
	doc, err := service.Generate(ctx, record)
	if err != nil && !errors.Is(err, models.ErrEmptyName) {
		observability.Logger().Error("failed to generate declaration",
			zap.String("request_id", c.GetString("RequestID")),
			zap.Error(err))
	}
	return doc, err
}

// writeDocument sends the PDF as a download
func writeDocument(ctx context.Context, c *gin.Context, doc *models.RenderedDocument) {
	_, span := utils.TraceResponseSerialization(ctx, doc.ContentType)
	defer span.End()
	utils.AddSpanAttribute(span, "response.bytes", len(doc.Content))

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
