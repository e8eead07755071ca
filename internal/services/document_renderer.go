package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ama-mesquita/app-declaracao/internal/config"
	"github.com/ama-mesquita/app-declaracao/internal/logging"
	"github.com/ama-mesquita/app-declaracao/internal/models"
	"github.com/ama-mesquita/app-declaracao/internal/observability"
	"github.com/ama-mesquita/app-declaracao/internal/utils"
	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// Page geometry, in millimeters
const (
	pageMargin = 25.0

	logoX     = 80.0
	logoY     = 5.0
	logoWidth = 50.0

	spacingWithLogo    = 25.0
	spacingWithoutLogo = 10.0

	ruleStartX = 10.0
	ruleEndX   = 200.0

	fontFamily = "Arial"

	signatureRule = "___________________________________________"
	footerText    = "Documento gerado digitalmente"

	// ContentTypePDF is the MIME type of rendered documents
	ContentTypePDF = "application/pdf"
)

// DocumentContent holds every text of one declaration, already composed
type DocumentContent struct {
	Title      string
	Body       string
	DateLine   string
	SignerName string
	SignerRole string
	FileName   string
	CreatedAt  time.Time
}

// RendererOptions configures the document renderer
type RendererOptions struct {
	// LogoPath is the letterhead image. It is optional.
	LogoPath    string
	Compression bool
}

// DocumentRenderer lays out declarations on A4 pages
type DocumentRenderer struct {
	letterhead config.DeclarationTemplate
	options    RendererOptions
	logger     *logging.SafeLogger
}

// NewDocumentRenderer creates a renderer with the given letterhead
func NewDocumentRenderer(letterhead config.DeclarationTemplate, options RendererOptions, logger *logging.SafeLogger) *DocumentRenderer {
	return &DocumentRenderer{
		letterhead: letterhead,
		options:    options,
		logger:     logger,
	}
}

// latin1Text encodes text for the core fonts, counting replacements
type latin1Text struct {
	replaced int
}

func (l *latin1Text) encode(s string) string {
	out, n := utils.ToLatin1(s)
	l.replaced += n
	return out
}

// Render produces the PDF bytes of one declaration
func (r *DocumentRenderer) Render(ctx context.Context, content DocumentContent) (*models.RenderedDocument, error) {
	_, span, done := utils.TraceDocumentRender(ctx, TemplateName)
	defer done()
	start := time.Now()

	tr := &latin1Text{}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.options.Compression)
	if !content.CreatedAt.IsZero() {
		pdf.SetCreationDate(content.CreatedAt)
	}
	pdf.SetTitle(content.Title, true)
	pdf.SetAuthor(r.letterhead.OrganizationName, true)
	pdf.SetCreator("app-declaracao", false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)

	logoName, logoType, hasLogo := r.registerLogo(pdf)
	utils.AddSpanAttribute(span, "document.logo", hasLogo)

	letterheadTop := -1.0
	pdf.SetHeaderFunc(func() {
		if hasLogo {
			pdf.ImageOptions(logoName, logoX, logoY, logoWidth, 0, false,
				fpdf.ImageOptions{ImageType: logoType}, 0, "")
			pdf.Ln(spacingWithLogo)
		} else {
			pdf.Ln(spacingWithoutLogo)
		}
		if letterheadTop < 0 {
			letterheadTop = pdf.GetY()
		}

		pdf.SetFont(fontFamily, "B", 14)
		pdf.CellFormat(0, 6, tr.encode(r.letterhead.OrganizationShortName), "0", 1, "C", false, 0, "")

		pdf.SetFont(fontFamily, "", 8)
		pdf.CellFormat(0, 4, tr.encode(r.letterhead.OrganizationName), "0", 1, "C", false, 0, "")
		pdf.CellFormat(0, 4, tr.encode(r.letterhead.OrganizationAddress), "0", 1, "C", false, 0, "")
		pdf.CellFormat(0, 4, tr.encode(r.letterhead.OrganizationRegistration), "0", 1, "C", false, 0, "")

		pdf.Ln(5)
		y := pdf.GetY()
		pdf.Line(ruleStartX, y, ruleEndX, y)
		pdf.Ln(10)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 10, footerText, "0", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Title
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 10, tr.encode(content.Title), "0", 1, "C", false, 0, "")
	pdf.Ln(10)

	// Body
	pdf.SetFont(fontFamily, "", 12)
	pdf.MultiCell(0, 8, tr.encode(content.Body), "0", "J", false)
	pdf.Ln(20)

	// Date line
	pdf.CellFormat(0, 10, tr.encode(content.DateLine), "0", 1, "L", false, 0, "")
	pdf.Ln(30)

	// Signature block
	pdf.CellFormat(0, 5, signatureRule, "0", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr.encode(content.SignerName), "0", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr.encode(content.SignerRole), "0", 1, "C", false, 0, "")

	pages := pdf.PageNo()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"document.file_name": content.FileName,
		})
		return nil, fmt.Errorf("%w: %v", models.ErrRenderFailed, err)
	}

	if tr.replaced > 0 {
		observability.ReplacedCharacters.Add(float64(tr.replaced))
		r.logger.Debug("characters outside Latin-1 replaced", zap.Int("count", tr.replaced))
	}

	elapsed := time.Since(start)
	observability.RenderDuration.Observe(elapsed.Seconds())
	observability.DocumentSize.Observe(float64(buf.Len()))
	utils.AddSpanAttribute(span, "document.pages", pages)
	utils.AddSpanAttribute(span, "document.bytes", buf.Len())

	return &models.RenderedDocument{
		Content:       buf.Bytes(),
		FileName:      content.FileName,
		ContentType:   ContentTypePDF,
		Pages:         pages,
		LetterheadTop: letterheadTop,
	}, nil
}

// registerLogo loads the letterhead image into pdf. A missing or unreadable
// image is not an error: the header is drawn without it.
func (r *DocumentRenderer) registerLogo(pdf *fpdf.Fpdf) (name, imageType string, ok bool) {
	path := r.options.LogoPath
	if path == "" {
		return "", "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		reason := "unreadable"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "not_found"
		} else {
			r.logger.Warn("failed to read logo", zap.String("path", path), zap.Error(err))
		}
		observability.LogoMissing.WithLabelValues(reason).Inc()
		return "", "", false
	}

	imageType = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	options := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(path, options, bytes.NewReader(data))
	if err := pdf.Error(); err != nil {
		r.logger.Warn("failed to decode logo, rendering without it",
			zap.String("path", path), zap.Error(err))
		observability.LogoMissing.WithLabelValues("invalid").Inc()
		pdf.ClearError()
		return "", "", false
	}

	return path, imageType, true
}
