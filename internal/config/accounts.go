package config

// Contas do plano de contas usadas na exportação de despesas
const (
	AccountPayable        = "211000"
	AccountSalaryExpenses = "630000"
)

// AccountLabels são os nomes exibidos ao lado do código da conta
func AccountLabels() map[string]string {
	return map[string]string{
		AccountPayable:        "Account Payable",
		AccountSalaryExpenses: "Salary Expenses",
	}
}

// DefaultSupplierAccounts associa cada fornecedor cadastrado à sua conta; fornecedores fora da
// lista caem em AccountPayable e aparecem como não mapeados.
func DefaultSupplierAccounts() map[string]string {
	accounts := map[string]string{
		"Employees Salary": AccountSalaryExpenses,
	}

	payables := []string{
		"Amal",
		"A.S.P Supplies Ltd",
		"Ben",
		"Best Foods Distribitors",
		"Chong and Sons",
		"Eagle insurance",
		"Engen La Caroline",
		"Engine Filling Station",
		"Fresh Chicken Cold Storage",
		"Froid de l'Est Ltée",
		"Jhuboo Videsh",
		"K. Nepaulsing & Co Ltd",
		"Les Caves Du Roi Ltd",
		"Lucky Brand Ltd",
		"Lyn and Sea Co Ltd",
		"Mag Leung Kiang",
		"Phoenix Beverages",
		"Raju",
		"Sanit",
		"Total filling station",
		"Winners",
		"Yado Pro Works",
	}
	for _, supplier := range payables {
		accounts[supplier] = AccountPayable
	}

	return accounts
}
