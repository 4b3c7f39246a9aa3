package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"anbupayan_go_backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// A4 with small margins, matching the downloadable documents' fixed layout.
// Margins and line metrics are in millimeters.
const (
	pageMargin   = 6.35
	bodyFontSize = 10.0
	bodyLineHt   = 5.0
	tableFontSz  = 9.0
	tableLineHt  = 4.5
	cellPadding  = 1.5
)

// Column width shares for the three-column budget table; the details column
// gets the widest share.
var columnShares = [3]float64{0.25, 0.54, 0.21}

type fillColor struct {
	R, G, B int
}

var (
	headerFill = fillColor{75, 156, 211}   // #4B9CD3
	totalFill  = fillColor{255, 242, 204}  // #FFF2CC
	bodyFill   = fillColor{245, 245, 245}  // whitesmoke
	whiteText  = fillColor{245, 245, 245}
	blackText  = fillColor{0, 0, 0}
)

// fontFiles maps each font face to its TTF asset inside the font directory.
var fontFiles = map[string]string{
	"NotoSans":           "NotoSans-Regular.ttf",
	"NotoSansDevanagari": "NotoSansDevanagari-Regular.ttf",
	"NotoSansBengali":    "NotoSansBengali-Regular.ttf",
	"NotoSansTelugu":     "NotoSansTelugu-Regular.ttf",
	"NotoSansTamil":      "NotoSansTamil-Regular.ttf",
	"NotoSansGujarati":   "NotoSansGujarati-Regular.ttf",
	"NotoSansKannada":    "NotoSansKannada-Regular.ttf",
	"NotoSansMalayalam":  "NotoSansMalayalam-Regular.ttf",
}

// PDFService renders itinerary and budget documents as in-memory PDF
// buffers. Font assets are verified once at construction; a missing TTF is a
// startup-configuration error, never a per-request one.
type PDFService struct {
	fontDir   string
	coreFonts bool
}

func NewPDFService(fontDir string) (*PDFService, error) {
	for face, file := range fontFiles {
		path := filepath.Join(fontDir, file)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("font %s unavailable at %s: %w", face, path, err)
		}
	}
	return &PDFService{fontDir: fontDir}, nil
}

// NewPDFServiceWithCoreFonts builds a renderer that uses the built-in
// Helvetica face for every language. Layout and styling are identical; only
// script coverage differs.
func NewPDFServiceWithCoreFonts() *PDFService {
	return &PDFService{coreFonts: true}
}

// RenderItinerary produces the paragraph-form document: a title followed by
// one paragraph per non-blank line of the itinerary text.
func (s *PDFService) RenderItinerary(itineraryText, language string) ([]byte, error) {
	pdf, font := s.newDocument(language)

	pdf.SetFont(font, "", 16)
	pdf.MultiCell(0, 8, "Personalized Travel Itinerary", "", "L", false)
	pdf.Ln(4)

	pdf.SetFont(font, "", bodyFontSize)
	for _, line := range strings.Split(itineraryText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pdf.MultiCell(0, bodyLineHt, line, "", "L", false)
		pdf.Ln(1.5)
	}

	return outputPDF(pdf)
}

// RenderBudget produces the table-form document: styled three-column table
// with a distinguished header row, an optionally highlighted total row, a
// full cell grid, and a trailing notes paragraph.
func (s *PDFService) RenderBudget(table models.BudgetTable, language string) ([]byte, error) {
	pdf, font := s.newDocument(language)

	pdf.SetFont(font, "", 18)
	pdf.MultiCell(0, 9, "Travel Budget Recommendation", "", "L", false)
	pdf.Ln(4)

	pageW, pageH := pdf.GetPageSize()
	usable := pageW - 2*pageMargin
	widths := [3]float64{
		usable * columnShares[0],
		usable * columnShares[1],
		usable * columnShares[2],
	}

	pdf.SetFont(font, "", tableFontSz)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)

	for i, row := range table.Rows {
		cells := [3]string{row.Category, row.Details, row.Cost}

		rowHt := 2 * cellPadding
		var cellLines [3][]string
		for c, text := range cells {
			lines := pdf.SplitText(text, widths[c]-2*cellPadding)
			if len(lines) == 0 {
				lines = []string{""}
			}
			cellLines[c] = lines
			if h := float64(len(lines))*tableLineHt + 2*cellPadding; h > rowHt {
				rowHt = h
			}
		}

		if pdf.GetY()+rowHt > pageH-pageMargin {
			pdf.AddPage()
		}

		fill := rowFill(i, table.TotalRow)
		pdf.SetFillColor(fill.R, fill.G, fill.B)
		text := rowText(i)
		pdf.SetTextColor(text.R, text.G, text.B)

		x := pageMargin
		y := pdf.GetY()
		for c := range cells {
			pdf.Rect(x, y, widths[c], rowHt, "FD")
			pdf.SetXY(x+cellPadding, y+cellPadding)
			pdf.MultiCell(widths[c]-2*cellPadding, tableLineHt, strings.Join(cellLines[c], "\n"), "", "L", false)
			x += widths[c]
		}
		pdf.SetXY(pageMargin, y+rowHt)
	}

	pdf.SetTextColor(blackText.R, blackText.G, blackText.B)
	if table.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, bodyLineHt, "Notes: "+table.Notes, "", "L", false)
	}

	return outputPDF(pdf)
}

// rowFill selects the background for a table row: header, highlighted total,
// or plain body.
func rowFill(rowIdx, totalIdx int) fillColor {
	switch {
	case rowIdx == 0:
		return headerFill
	case totalIdx >= 0 && rowIdx == totalIdx:
		return totalFill
	default:
		return bodyFill
	}
}

// rowText selects the text color: contrasting white on the header, black
// elsewhere.
func rowText(rowIdx int) fillColor {
	if rowIdx == 0 {
		return whiteText
	}
	return blackText
}

func (s *PDFService) newDocument(language string) (*gofpdf.Fpdf, string) {
	pdf := gofpdf.New("P", "mm", "A4", s.fontDir)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	font := s.fontFor(language)
	if !s.coreFonts {
		pdf.AddUTF8Font(font, "", fontFiles[font])
	}
	pdf.AddPage()
	return pdf, font
}

func (s *PDFService) fontFor(language string) string {
	if s.coreFonts {
		return "Helvetica"
	}
	return models.FontForLanguage(language)
}

func outputPDF(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build PDF: %w", err)
	}
	return buf.Bytes(), nil
}
