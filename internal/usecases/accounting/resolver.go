// Package accounting associa as despesas às contas do plano de contas para a exportação contábil.
package accounting

import (
	"sort"
	"strings"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
)

type Resolver struct {
	accounts       map[string]string
	byLowerName    map[string]string
	labels         map[string]string
	defaultAccount string
}

// NewResolver monta o resolvedor; fornecedores fora de accounts recebem defaultAccount
func NewResolver(accounts, labels map[string]string, defaultAccount string) *Resolver {
	byLowerName := make(map[string]string, len(accounts))
	for supplier, code := range accounts {
		byLowerName[strings.ToLower(strings.TrimSpace(supplier))] = code
	}

	return &Resolver{
		accounts:       accounts,
		byLowerName:    byLowerName,
		labels:         labels,
		defaultAccount: defaultAccount,
	}
}

// Resolve busca a conta pelo nome exato e depois sem diferenciar maiúsculas.
// O segundo retorno é falso quando a conta padrão foi usada.
func (r *Resolver) Resolve(supplier string) (string, bool) {
	if code, ok := r.accounts[supplier]; ok {
		return code, true
	}
	if code, ok := r.byLowerName[strings.ToLower(strings.TrimSpace(supplier))]; ok {
		return code, true
	}
	return r.defaultAccount, false
}

// Assign preenche AccountCode de cada despesa
func (r *Resolver) Assign(expenses []domain.ExpenseRecord) {
	for i := range expenses {
		expenses[i].AccountCode, _ = r.Resolve(expenses[i].SupplierName)
	}
}

// ExportRows gera uma linha por despesa, mais recente primeiro. Kg só é informado em compras em kg.
func (r *Resolver) ExportRows(expenses []domain.ExpenseRecord) []domain.AccountExportRow {
	rows := make([]domain.AccountExportRow, 0, len(expenses))
	for _, expense := range expenses {
		supplier := strings.TrimSpace(expense.SupplierName)
		if supplier == "" {
			supplier = domain.UnknownSupplier
		}

		code, mapped := r.Resolve(supplier)
		row := domain.AccountExportRow{
			ExpenseID:     expense.ID,
			SupplierName:  supplier,
			InvoiceNumber: expense.InvoiceNumber,
			Description:   expense.Description,
			Amount:        expense.NetAmount,
			VATAmount:     expense.VATAmount,
			AccountCode:   code,
			AccountLabel:  r.labels[code],
			Mapped:        mapped,
		}
		if expense.Date != nil {
			row.Date = utils.DateKey(*expense.Date)
		}
		if expense.Quantity > 0 && strings.EqualFold(strings.TrimSpace(expense.UnitOfMeasure), "kg") {
			row.Kg = expense.Quantity
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})

	return rows
}

// Summarize totaliza a exportação e lista, em ordem alfabética, os fornecedores sem conta própria
func Summarize(rows []domain.AccountExportRow) domain.AccountExportSummary {
	var amount, vat utils.Accumulator
	suppliers := make(map[string]struct{})
	unmapped := make(map[string]struct{})

	summary := domain.AccountExportSummary{TotalRows: len(rows)}
	for _, row := range rows {
		amount.Add(row.Amount)
		vat.Add(row.VATAmount)
		suppliers[row.SupplierName] = struct{}{}

		if row.Mapped {
			summary.MappedCount++
		} else {
			summary.UnmappedCount++
			unmapped[row.SupplierName] = struct{}{}
		}
	}

	summary.TotalAmount = amount.Float()
	summary.TotalVAT = vat.Float()
	summary.SupplierCount = len(suppliers)
	summary.UnmappedSuppliers = make([]string, 0, len(unmapped))
	for supplier := range unmapped {
		summary.UnmappedSuppliers = append(summary.UnmappedSuppliers, supplier)
	}
	sort.Strings(summary.UnmappedSuppliers)

	return summary
}
