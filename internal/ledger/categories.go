package ledger

import "assistec/internal/models"

// The two category sets are disjoint and fixed per transaction type. They
// are configuration data, not a structural invariant: editing the lists
// does not change any ledger logic.
var (
	IncomeCategories = []string{
		"Conserto", "Peça", "Manutenção", "Consultoria", "Outro",
	}
	ExpenseCategories = []string{
		"Peças/Estoque", "Aluguel", "Água/Luz/Internet", "Transporte",
		"Ferramentas", "Marketing", "Imposto", "Salário", "Outro",
	}
)

// CategoriesFor returns the ordered category set for a transaction type.
func CategoriesFor(t models.TransactionType) []string {
	if t == models.TransactionTypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidCategory reports whether the category belongs to the set associated
// with the given transaction type.
func ValidCategory(t models.TransactionType, category string) bool {
	for _, c := range CategoriesFor(t) {
		if c == category {
			return true
		}
	}
	return false
}
