package cfodash

// EUR is a helper for tests to create euro money from const.
func EUR(v float64) Money { return M(v, "EUR") }

// entry is a helper for tests to create a classified ledger line.
func entry(category string, amount float64) Entry {
	return Entry{
		Code:        "CE",
		Description: category,
		Amount:      EUR(amount),
		Category:    category,
		Year:        "2024",
		Period:      WholeYear,
	}
}

// scenarioA is the reference ledger used across tests: revenue 100k,
// personnel 50k, variable 20k.
func scenarioA() []Entry {
	return []Entry{
		entry("Ricavi operativi", 100000),
		entry("Costi del personale", 50000),
		entry("Costi variabili", 20000),
	}
}
