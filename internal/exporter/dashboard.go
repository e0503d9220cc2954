// Package exporter gera a planilha do painel para download
package exporter

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/gwr-marine/ops-analytics/internal/config"
	"github.com/gwr-marine/ops-analytics/internal/domain"
)

const (
	SheetKPIs         = "KPIs"
	SheetTopClients   = "Top Clients"
	SheetTopSuppliers = "Top Suppliers"
	SheetInventory    = "Inventory"
	SheetConsumption  = "Consumption"
	SheetMonthly      = "Monthly"
	SheetWeekly       = "Weekly"
	SheetFoodCost     = "Food Cost"
	SheetDrinksCost   = "Drinks Cost"
	SheetAccounts     = "Accounts"

	// ContentType do arquivo xlsx
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ErrNilView = errors.New("dashboard view is nil")

// WriteDashboard escreve uma aba por visão do painel
func WriteDashboard(w io.Writer, view *domain.DashboardView) error {
	f, err := BuildDashboard(view)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("erro ao escrever planilha: %w", err)
	}
	return nil
}

// BuildDashboard monta a planilha em memória
func BuildDashboard(view *domain.DashboardView) (*excelize.File, error) {
	if view == nil {
		return nil, ErrNilView
	}

	foodHeaders, foodRows := costRows(view.FoodCosts)
	drinksHeaders, drinksRows := costRows(view.DrinksCosts)

	f, err := buildWorkbook([]sheetData{
		{SheetKPIs, []any{"Indicador", "Valor", "Variação (%)"}, kpiRows(view.KPIs)},
		{SheetTopClients, []any{"Posição", "Cliente", "Pedidos", "Receita", "Ticket médio"}, topClientRows(view.TopClients)},
		{SheetTopSuppliers, []any{"Posição", "Fornecedor", "Despesas", "Total"}, topSupplierRows(view.TopSuppliers)},
		{SheetInventory, []any{"Produto", "Comprado", "Usado", "Em estoque", "Uso médio diário", "Dias de estoque", "Status"}, inventoryRows(view.Inventory)},
		{SheetConsumption, []any{"Tipo", "Categoria", "Total", "Custo"}, consumptionRows(view)},
		{SheetMonthly, []any{"Mês", "Receita", "Despesas"}, monthlyRows(view.MonthlySeries)},
		{SheetWeekly, []any{"Semana", "Receita"}, weeklyRows(view.WeeklyRevenue)},
		{SheetFoodCost, foodHeaders, foodRows},
		{SheetDrinksCost, drinksHeaders, drinksRows},
	})
	if err != nil {
		return nil, err
	}

	if err := colorInventoryStatus(f, view.Inventory); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// BuildAccountExport monta a planilha de despesas com a conta de cada uma
func BuildAccountExport(export *domain.AccountExport) (*excelize.File, error) {
	if export == nil {
		return nil, ErrNilView
	}

	return buildWorkbook([]sheetData{
		{SheetAccounts, []any{"Data", "Fornecedor", "Fatura", "Descrição", "Kg", "Valor", "IVA", "Conta", "Nome da conta", "Mapeado"}, accountRows(export.Rows)},
	})
}

type sheetData struct {
	name    string
	headers []any
	rows    [][]any
}

// buildWorkbook cria uma aba por sheetData, com o cabeçalho destacado
func buildWorkbook(sheets []sheetData) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1B254B"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, sheet := range sheets {
		if err := addSheet(f, i == 0, sheet, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func addSheet(f *excelize.File, first bool, sheet sheetData, headerStyle int) error {
	// A primeira aba já existe, renomeada de Sheet1
	if first {
		if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(sheet.name); err != nil {
		return err
	}

	if err := writeRows(f, sheet.name, sheet.headers, sheet.rows); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet.name, 1, 1, headerStyle); err != nil {
		return err
	}

	lastColumn, err := excelize.ColumnNumberToName(max(len(sheet.headers), 1))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet.name, "A", lastColumn, 18)
}

// colorInventoryStatus pinta a célula de status com a cor usada no painel
func colorInventoryStatus(f *excelize.File, items []domain.InventoryItem) error {
	styles := make(map[domain.StockStatus]int)

	for i, item := range items {
		styleID, ok := styles[item.Status]
		if !ok {
			var err error
			styleID, err = f.NewStyle(&excelize.Style{
				Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
				Fill: excelize.Fill{Type: "pattern", Color: []string{config.StatusColor(item.Status)}, Pattern: 1},
			})
			if err != nil {
				return err
			}
			styles[item.Status] = styleID
		}

		cell := fmt.Sprintf("G%d", i+2)
		if err := f.SetCellStyle(SheetInventory, cell, cell, styleID); err != nil {
			return err
		}
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, headers []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho de %s: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("erro ao escrever linha %d de %s: %w", i+2, sheet, err)
		}
	}

	return nil
}

func kpiRows(kpis *domain.KPISet) [][]any {
	if kpis == nil {
		return nil
	}

	trend := func(t domain.Trend) any {
		if kpis.NoBaseline {
			return ""
		}
		return t.Percent
	}

	return [][]any{
		{"Receita", kpis.TotalRevenue, trend(kpis.RevenueTrend)},
		{"Despesas", kpis.TotalExpenses, trend(kpis.ExpenseTrend)},
		{"Despesas (líquido)", kpis.TotalNet, ""},
		{"IVA", kpis.TotalVAT, ""},
		{"Lucro/Prejuízo", kpis.ProfitLoss, ""},
		{"Margem (%)", kpis.ProfitMargin, ""},
		{"Pedidos", kpis.OrderCount, trend(kpis.OrderTrend)},
		{"Ticket médio", kpis.AvgOrderValue, ""},
	}
}

func topClientRows(clients []domain.TopClientRow) [][]any {
	rows := make([][]any, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []any{c.Rank, c.ClientName, c.OrderCount, c.TotalRevenue, c.AvgOrderValue})
	}
	return rows
}

func topSupplierRows(suppliers []domain.TopSupplierRow) [][]any {
	rows := make([][]any, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []any{s.Rank, s.SupplierName, s.ExpenseCount, s.TotalAmount})
	}
	return rows
}

func inventoryRows(items []domain.InventoryItem) [][]any {
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		var days any = item.DaysOfSupply
		if item.Unbounded || item.DaysOfSupply > domain.DaysOfSupplyDisplayCap {
			days = fmt.Sprintf("%d+", domain.DaysOfSupplyDisplayCap)
		}
		rows = append(rows, []any{item.Product, item.Purchased, item.Used, item.OnHand, item.AvgDailyUse, days, string(item.Status)})
	}
	return rows
}

func consumptionRows(view *domain.DashboardView) [][]any {
	rows := make([][]any, 0, len(view.DrinksConsumption)+len(view.FoodConsumption))
	for _, c := range view.DrinksConsumption {
		rows = append(rows, []any{string(domain.DrinksUsage), c.Label, c.Total, c.TotalCost})
	}
	for _, c := range view.FoodConsumption {
		rows = append(rows, []any{string(domain.FoodUsage), c.Label, c.Total, c.TotalCost})
	}
	return rows
}

func monthlyRows(points []domain.MonthlyPoint) [][]any {
	rows := make([][]any, 0, len(points))
	for _, p := range points {
		rows = append(rows, []any{p.Month, p.Revenue, p.Expenses})
	}
	return rows
}

func weeklyRows(points []domain.WeeklyPoint) [][]any {
	rows := make([][]any, 0, len(points))
	for _, p := range points {
		rows = append(rows, []any{p.WeekStart, p.Revenue})
	}
	return rows
}

// costRows abre duas colunas por item (quantidade e custo) e fecha com uma linha de totais
func costRows(report domain.CostReport) ([]any, [][]any) {
	keys := make([]string, 0, len(report.Totals))
	if len(report.Rows) > 0 {
		for _, item := range report.Rows[0].Items {
			keys = append(keys, item.Key)
		}
	} else {
		for key := range report.Totals {
			keys = append(keys, key)
		}
		sort.Strings(keys)
	}

	headers := []any{"Data"}
	for _, key := range keys {
		headers = append(headers, key, key+" (custo)")
	}
	headers = append(headers, "Total")

	rows := make([][]any, 0, len(report.Rows)+1)
	for _, r := range report.Rows {
		row := []any{r.Date}
		for _, item := range r.Items {
			row = append(row, item.Quantity, item.Cost)
		}
		rows = append(rows, append(row, r.TotalCost))
	}

	totals := []any{"Total"}
	for _, key := range keys {
		totals = append(totals, "", report.Totals[key])
	}
	rows = append(rows, append(totals, report.GrandTotal))

	return headers, rows
}

func accountRows(exportRows []domain.AccountExportRow) [][]any {
	rows := make([][]any, 0, len(exportRows))
	for _, r := range exportRows {
		var kg any = ""
		if r.Kg > 0 {
			kg = r.Kg
		}
		mapped := "não"
		if r.Mapped {
			mapped = "sim"
		}
		rows = append(rows, []any{r.Date, r.SupplierName, r.InvoiceNumber, r.Description, kg, r.Amount, r.VATAmount, r.AccountCode, r.AccountLabel, mapped})
	}
	return rows
}
