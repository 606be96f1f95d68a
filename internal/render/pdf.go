// Package render lays a resume document out as a paginated A4 PDF.
//
// The layout is fixed: single column, top to bottom, with the fpdf engine
// handling page overflow. Rendering is a pure function of the document;
// identical documents produce byte-identical PDFs.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/misbah/resumeai/internal/types"
)

const (
	fontFamily = "Arial"

	sizeName    = 18
	sizeTitle   = 12
	sizeContact = 9
	sizeSection = 10
	sizeBody    = 10

	nameHeight    = 8
	titleHeight   = 6
	lineHeight    = 5
	sectionGap    = 5
	bottomMargin  = 15
	detailsPrefix = "- "
)

// Section headers in render order.
const (
	headerSummary    = "PROFESSIONAL SUMMARY"
	headerSkills     = "TECHNICAL SKILLS"
	headerExperience = "EXPERIENCE"
	headerEducation  = "EDUCATION"
)

// pdfEpoch pins the document dates so rendering stays deterministic.
var pdfEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDF renders doc into a downloadable PDF byte sequence. It succeeds for any
// well-formed document, including one built entirely from fallbacks; an
// engine failure is returned as a *Fault.
func PDF(doc *types.ResumeDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.DisplayName(), false)
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetCompression(false)
	// Sorted resource dictionaries; font map iteration order is otherwise
	// randomized per run.
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(true, bottomMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Name, title and contact block.
	pdf.SetFont(fontFamily, "B", sizeName)
	pdf.CellFormat(0, nameHeight, tr(doc.DisplayName()), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", sizeTitle)
	pdf.CellFormat(0, titleHeight, tr(doc.DisplayTitle()), "", 1, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", sizeContact)
	contactLine := fmt.Sprintf("Email: %s | Phone: %s",
		types.OrValue(doc.Contact.Email), types.OrValue(doc.Contact.Phone))
	pdf.CellFormat(0, lineHeight, tr(contactLine), "", 1, "L", false, 0, "")
	if doc.Contact.LinkedIn != "" {
		pdf.CellFormat(0, lineHeight, tr("LinkedIn: "+doc.Contact.LinkedIn), "", 1, "L", false, 0, "")
	}
	pdf.Ln(sectionGap)

	sectionHeader(pdf, headerSummary)
	pdf.MultiCell(0, lineHeight, tr(doc.Summary), "", "L", false)

	pdf.Ln(sectionGap)
	sectionHeader(pdf, headerSkills)
	pdf.MultiCell(0, lineHeight, tr(strings.Join(doc.Skills, " | ")), "", "L", false)

	pdf.Ln(sectionGap)
	sectionHeader(pdf, headerExperience)
	for _, job := range doc.Experience {
		pdf.CellFormat(0, lineHeight, tr(job.Role+" at "+job.Company), "", 1, "L", false, 0, "")
		if len(job.Details) > 0 {
			// First detail item only.
			pdf.MultiCell(0, lineHeight, tr(detailsPrefix+job.Details[0]), "", "L", false)
		}
	}

	pdf.Ln(sectionGap)
	sectionHeader(pdf, headerEducation)
	for _, edu := range doc.Education {
		line := fmt.Sprintf("%s from %s (%s)",
			types.OrValue(edu.Degree), types.OrValue(edu.Institution), types.OrValue(edu.Year))
		pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &Fault{Cause: err}
	}
	return buf.Bytes(), nil
}

// sectionHeader draws a bold section title and switches back to body font.
func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont(fontFamily, "B", sizeSection)
	pdf.CellFormat(0, lineHeight, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", sizeBody)
}
