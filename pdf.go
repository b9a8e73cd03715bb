package main

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 297 // A4 landscape width in mm
	pdfMargin     = 10  // Margin in mm
	pdfLineHeight = 4   // Line height in mm
	pdfFontSize   = 7   // Small enough for the widest rows (permissions + time + size + path)
	pdfTitleSize  = 11
)

// generatePDF renders a captured listing into a landscape A4 PDF using a
// monospace font, so the fixed-width columns stay aligned.
func generatePDF(listing, title, outputPath string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight+2, title, "", "L", false)
	pdf.Ln(pdfLineHeight)

	// The core fonts only cover cp1252; translate so non-ASCII names do
	// not come out garbled.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Courier", "", pdfFontSize)
	for _, line := range strings.Split(strings.TrimRight(listing, "\n"), "\n") {
		pdf.CellFormat(pdfPageWidth-2*pdfMargin, pdfLineHeight, tr(line), "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}
	return nil
}
