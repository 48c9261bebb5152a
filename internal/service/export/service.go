package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/opl-logistica/backoffice-go/internal/domain/contractor"
	"github.com/opl-logistica/backoffice-go/internal/domain/export"
	"github.com/opl-logistica/backoffice-go/internal/domain/payroll"
	"github.com/opl-logistica/backoffice-go/internal/pkg/validator"
)

type ExportServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	contractorRepo contractor.ContractorRepository
	companyName    string
}

func NewExportService(
	payrollRepo payroll.PayrollRepository,
	contractorRepo contractor.ContractorRepository,
	companyName string,
) export.ExportService {
	return &ExportServiceImpl{
		payrollRepo:    payrollRepo,
		contractorRepo: contractorRepo,
		companyName:    companyName,
	}
}

var monthNames = map[int]string{
	1: "Enero", 2: "Febrero", 3: "Marzo", 4: "Abril", 5: "Mayo", 6: "Junio",
	7: "Julio", 8: "Agosto", 9: "Septiembre", 10: "Octubre", 11: "Noviembre", 12: "Diciembre",
}

func periodLabel(period string) string {
	year, month, ok := validator.ParsePeriod(period)
	if !ok {
		return period
	}
	return fmt.Sprintf("%s %d", monthNames[month], year)
}

// formatCLP renders whole pesos with dot thousand separators, e.g. $1.234.567.
func formatCLP(v decimal.Decimal) string {
	s := v.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

func (s *ExportServiceImpl) PayslipPDF(ctx context.Context, recordID string) ([]byte, string, error) {
	rec, err := s.payrollRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, "", err
	}
	d := rec.Breakdown

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(s.companyName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Liquidación de Sueldo - %s", periodLabel(rec.Period))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	if rec.WorkerName != nil {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Trabajador: %s", *rec.WorkerName)), "", 1, "L", false, 0, "")
	}
	if rec.WorkerTaxID != nil {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("RUT: %s", *rec.WorkerTaxID)), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Días trabajados: %d", d.DaysWorked)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	row := func(label string, amount decimal.Decimal) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(120, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, formatCLP(amount), "", 1, "R", false, 0, "")
	}
	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(title), "B", 1, "L", false, 0, "")
	}

	section("Haberes")
	row("Sueldo base proporcional", d.ProportionalBase)
	if !d.OvertimePay.IsZero() {
		row(fmt.Sprintf("Horas extras (%s)", d.OvertimeHours.String()), d.OvertimePay)
	}
	for _, item := range d.Earnings {
		row(item.Description, item.Amount)
	}
	row("Gratificación legal", d.Gratification)
	if !d.AutoFamilyAllowance.IsZero() {
		label := "Asignación familiar"
		if d.BracketTier != nil {
			label = fmt.Sprintf("Asignación familiar (tramo %s)", *d.BracketTier)
		}
		row(label, d.AutoFamilyAllowance)
	}
	for _, item := range d.FamilyAllowances {
		row(item.Description, item.Amount)
	}
	for _, item := range d.Bonuses {
		row(item.Description, item.Amount)
	}
	pdf.SetFont("Helvetica", "B", 10)
	row("Total haberes", rec.TotalEarnings)
	pdf.Ln(4)

	section("Descuentos")
	if !d.PensionAmount.IsZero() {
		row(fmt.Sprintf("AFP %s (%s%%)", d.PensionFundName, d.PensionRate.String()), d.PensionAmount)
	}
	if !d.HealthAmount.IsZero() {
		row(fmt.Sprintf("Salud %s (%s%%)", d.HealthInsurerName, d.HealthRate.String()), d.HealthAmount)
	}
	if !d.UnemploymentAmount.IsZero() {
		row("Seguro de cesantía", d.UnemploymentAmount)
	}
	if !d.TaxAmount.IsZero() {
		row("Impuesto único", d.TaxAmount)
	}
	for _, item := range d.LegalDeductions {
		row(item.Description, item.Computed)
	}
	if !d.Advance.IsZero() {
		row("Anticipo", d.Advance)
	}
	if !d.ShortfallAmount.IsZero() {
		row("Faltante de caja", d.ShortfallAmount)
	}
	for _, item := range d.OtherDeductions {
		row(item.Description, item.Amount)
	}
	pdf.SetFont("Helvetica", "B", 10)
	row("Total descuentos", rec.TotalDeductions)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, tr("Líquido a pagar"), "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, formatCLP(rec.NetPay), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render payslip: %w", err)
	}

	filename := fmt.Sprintf("liquidacion_%s.pdf", rec.Period)
	if rec.WorkerName != nil {
		filename = fmt.Sprintf("liquidacion_%s_%s.pdf",
			strings.ReplaceAll(strings.ToLower(*rec.WorkerName), " ", "_"), rec.Period)
	}
	return buf.Bytes(), filename, nil
}

func (s *ExportServiceImpl) ContractorRegisterPDF(ctx context.Context, period string) ([]byte, string, error) {
	payments, err := s.contractorRepo.ListPaymentsByPeriod(ctx, period)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Pago Fletes mes de %s - %s", periodLabel(period), s.companyName)), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	headers := []string{"#", "Trabajador", "Factura", "Neto", "IVA", "Total", "Otros Desc.", "Anticipo", "Faltante", "Líquido a Pago"}
	widths := []float64{10, 60, 25, 27, 25, 27, 27, 25, 25, 27}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range payments {
		name := ""
		if p.WorkerName != nil {
			name = *p.WorkerName
		}
		invoice := p.InvoiceNumber
		if invoice == "" {
			invoice = "S/N"
		}
		cells := []string{
			fmt.Sprintf("%d", i+1),
			name,
			invoice,
			formatCLP(p.NetSubtotal),
			formatCLP(p.VAT),
			formatCLP(p.GrossTotal),
			formatCLP(p.OtherDeductionsTotal),
			formatCLP(p.AdvanceBase.Add(p.AdvanceExtra)),
			formatCLP(p.ShortfallBase.Add(p.ShortfallExtra)),
			formatCLP(p.Payout),
		}
		for j, c := range cells {
			align := "R"
			if j <= 2 {
				align = "L"
			}
			pdf.CellFormat(widths[j], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render contractor register: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("pago_fleteros_%s.pdf", period), nil
}
