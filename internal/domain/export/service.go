package export

import "context"

// ExportService renders persisted calculation results as downloadable
// documents. It never recomputes anything: every figure comes from the
// stored derivation trail.
type ExportService interface {
	// PayslipPDF renders the liquidación for one payroll record. Returns
	// the document bytes and a suggested filename.
	PayslipPDF(ctx context.Context, recordID string) ([]byte, string, error)
	// ContractorRegisterPDF renders the monthly contractor payment register
	// for one period.
	ContractorRegisterPDF(ctx context.Context, period string) ([]byte, string, error)
}
