package services

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/ama-mesquita/app-declaracao/internal/config"
	"github.com/ama-mesquita/app-declaracao/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRenderer(logoPath string) *DocumentRenderer {
	return NewDocumentRenderer(config.DefaultTemplate(), RendererOptions{
		LogoPath:    logoPath,
		Compression: false,
	}, logging.New(zap.NewNop()))
}

func testContent() DocumentContent {
	return DocumentContent{
		Title:      "DECLARACAO",
		Body:       "Eu, Paulo Cesar de Souza, declaro que Maria Silva reside no endereco: Rua A, 10 - Centro - Mesquita.",
		DateLine:   "Mesquita, 05 de Marco de 2026",
		SignerName: "Paulo Cesar de Souza",
		SignerRole: "Presidente",
		FileName:   "Declaracao_Maria_Silva.pdf",
		CreatedAt:  submittedAt,
	}
}

var textShowPattern = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\) Tj`)

// pageText returns the strings shown on the pages of an uncompressed PDF, in order
func pageText(pdf []byte) []string {
	matches := textShowPattern.FindAllSubmatch(pdf, -1)
	texts := make([]string, 0, len(matches))
	for _, m := range matches {
		texts = append(texts, string(m[1]))
	}
	return texts
}

// writeLogo writes a small grayscale PNG and returns its path
func writeLogo(t *testing.T) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 20, 10))
	for x := 0; x < 20; x++ {
		img.SetGray(x, 5, color.Gray{Y: 128})
	}

	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestRender_Layout(t *testing.T) {
	doc, err := newTestRenderer("").Render(context.Background(), testContent())
	require.NoError(t, err)

	pdf := string(doc.Content)
	assert.True(t, strings.HasPrefix(pdf, "%PDF-"))
	assert.Contains(t, pdf, "(A.M.A) Tj")
	assert.Contains(t, pdf, "(ASSOCIACAO DE MORADORES E AMIGOS DO ALTO URUGUAI - MESQUITA) Tj")
	assert.Contains(t, pdf, "(TRAVESSA TULIPA, 01 - ALTO URUGUAI) Tj")
	assert.Contains(t, pdf, "(CEP: 26556-190  CNPJ: 30.193.254/0001-34) Tj")
	assert.Contains(t, pdf, "(DECLARACAO) Tj")
	assert.Contains(t, pdf, "(Mesquita, 05 de Marco de 2026) Tj")
	assert.Contains(t, pdf, "(___________________________________________) Tj")
	assert.Contains(t, pdf, "(Presidente) Tj")
	assert.Contains(t, pdf, "(Documento gerado digitalmente) Tj")

	// Text order on the page follows the fixed layout
	order := []string{"(A.M.A)", "(DECLARACAO)", "(Mesquita, 05", "(______", "(Presidente)"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(pdf, marker)
		require.Greater(t, idx, last, "%s out of order", marker)
		last = idx
	}
}

func TestRender_MissingLogo(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "logoalto.jpg")

	doc, err := newTestRenderer(missing).Render(context.Background(), testContent())
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Pages)
	assert.Equal(t, 35.0, doc.LetterheadTop)
	assert.NotContains(t, string(doc.Content), "/Subtype /Image")
}

func TestRender_WithLogo(t *testing.T) {
	logo := writeLogo(t)

	withLogo, err := newTestRenderer(logo).Render(context.Background(), testContent())
	require.NoError(t, err)
	withoutLogo, err := newTestRenderer("").Render(context.Background(), testContent())
	require.NoError(t, err)

	assert.Equal(t, 50.0, withLogo.LetterheadTop)
	assert.Greater(t, withLogo.LetterheadTop, withoutLogo.LetterheadTop)
	assert.Contains(t, string(withLogo.Content), "/Subtype /Image")

	// Only the letterhead position changes; every printed text is the same
	bodyWithLogo := pageText(withLogo.Content)
	assert.Contains(t, bodyWithLogo, testContent().DateLine)
	assert.Equal(t, pageText(withoutLogo.Content), bodyWithLogo)
}

func TestRender_UndecodableLogo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))

	doc, err := newTestRenderer(path).Render(context.Background(), testContent())
	require.NoError(t, err)

	assert.Equal(t, 35.0, doc.LetterheadTop)
	assert.True(t, strings.HasPrefix(string(doc.Content), "%PDF-"))
}

func TestRender_ReplacesCharactersOutsideLatin1(t *testing.T) {
	content := testContent()
	content.DateLine = "São João de Meriti 🏠 €"

	doc, err := newTestRenderer("").Render(context.Background(), content)
	require.NoError(t, err)

	assert.Contains(t, string(doc.Content), "(S\xe3o Jo\xe3o de Meriti ? ?) Tj")
}

func TestRender_FooterOnEveryPage(t *testing.T) {
	content := testContent()
	content.Body = strings.Repeat("Texto longo da declaracao para ocupar varias linhas. ", 150)

	doc, err := newTestRenderer("").Render(context.Background(), content)
	require.NoError(t, err)

	require.Greater(t, doc.Pages, 1)
	pdf := string(doc.Content)
	assert.Equal(t, doc.Pages, strings.Count(pdf, "(Documento gerado digitalmente) Tj"))
	assert.Equal(t, doc.Pages, strings.Count(pdf, "(A.M.A) Tj"))
}

func TestRender_Compression(t *testing.T) {
	renderer := NewDocumentRenderer(config.DefaultTemplate(), RendererOptions{Compression: true}, logging.New(zap.NewNop()))

	doc, err := renderer.Render(context.Background(), testContent())
	require.NoError(t, err)

	pdf := string(doc.Content)
	assert.Contains(t, pdf, "/FlateDecode")
	assert.NotContains(t, pdf, "(Presidente) Tj")
}
