package domain

// AccountExportRow é uma linha da exportação de despesas para o plano de contas
type AccountExportRow struct {
	ExpenseID     string  `json:"expense_id"`
	Date          string  `json:"date"`
	SupplierName  string  `json:"supplier"`
	InvoiceNumber string  `json:"invoice_number"`
	Description   string  `json:"description"`
	Kg            float64 `json:"kg"` // só preenchido em compras em kg
	Amount        float64 `json:"amount"`
	VATAmount     float64 `json:"vat_amount"`
	AccountCode   string  `json:"account"`
	AccountLabel  string  `json:"account_label"`
	Mapped        bool    `json:"is_mapped"`
}

type AccountExportSummary struct {
	TotalRows         int      `json:"total_rows"`
	TotalAmount       float64  `json:"total_amount"`
	TotalVAT          float64  `json:"total_vat"`
	MappedCount       int      `json:"mapped_count"`
	UnmappedCount     int      `json:"unmapped_count"`
	UnmappedSuppliers []string `json:"unmapped_suppliers"`
	SupplierCount     int      `json:"supplier_count"`
}

type AccountExport struct {
	Rows    []AccountExportRow   `json:"rows"`
	Summary AccountExportSummary `json:"summary"`
}
