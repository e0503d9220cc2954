// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// ExpenseRecord é uma despesa lançada pelo financeiro. Somente leitura para o núcleo de análise.
type ExpenseRecord struct {
	ID            string     `json:"expense_id"`
	Date          *time.Time `json:"expense_date"`
	SupplierName  string     `json:"supplier_name"`
	Description   string     `json:"description"`
	Category      string     `json:"category"` // Conta contábil / categoria da despesa
	Quantity      float64    `json:"quantity"`
	UnitOfMeasure string     `json:"unit_of_measure"`
	NetAmount     float64    `json:"net_amount"`
	VATAmount     float64    `json:"vat_amount"`
	TotalAmount   float64    `json:"total_amount"`
	InvoiceNumber string     `json:"invoice_number"`
	AccountCode   string     `json:"account_code"` // conta do fornecedor no plano de contas, resolvida após a carga
}
