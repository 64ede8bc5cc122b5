package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/section"
)

// WritePDF renders a member verification report as a one-page
// calculation sheet.
func WritePDF(rep member.Report, p section.Properties, m section.Material, d member.Demands, filename string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Steel Member Verification - AISC 360-22 (LRFD)")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Section: %s", p.Name))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Material: Fy=%.0f  Fu=%.0f  E=%.0f", m.Fy, m.Fu, m.E))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Section Classification")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	cls := rep.Classification
	pdf.Cell(0, 6, fmt.Sprintf("Flange (compression): %s   Flange (flexure): %s   Web (flexure): %s",
		cls.FlangeCompression, cls.FlangeFlexure, cls.WebFlexure))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Limit States")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)

	writeCheck := func(label string, fc member.FamilyCheck) {
		status := "OK"
		if !fc.OK {
			status = "FAILS"
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s - %s: phi·Rn = %.1f, demand = %.1f, ratio = %.3f  [%s]",
			label, fc.Result.State, fc.Result.Design, fc.Demand, fc.Ratio, status))
		pdf.Ln(6)
	}
	if fc, ok := rep.Checks["tension"]; ok {
		writeCheck("Tension (D)", fc)
	}
	if fc, ok := rep.Checks["compression"]; ok {
		writeCheck("Compression (E)", fc)
	}
	if fc, ok := rep.Checks["flexure_strong"]; ok {
		writeCheck("Flexure, strong axis (F2)", fc)
	}
	if fc, ok := rep.Checks["flexure_weak"]; ok {
		writeCheck("Flexure, weak axis (F6)", fc)
	}

	if rep.Interaction != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Combined Forces (H1)")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		status := "OK"
		if !rep.Interaction.OK {
			status = "FAILS"
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s: interaction = %.3f, Pr/Pc = %.3f  [%s]",
			rep.Interaction.Equation, rep.Interaction.Value, rep.Interaction.PrPc, status))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	verdict := "MEMBER ADEQUATE"
	if !rep.OK {
		verdict = "MEMBER INADEQUATE"
	}
	pdf.Cell(0, 8, fmt.Sprintf("Governing: %s (phi·Rn = %.1f)   Max utilization: %.3f   %s",
		rep.Governing.State, rep.Governing.Design, rep.MaxUtilization, verdict))

	return pdf.OutputFileAndClose(filename)
}
