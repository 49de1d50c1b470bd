package models

// Overview is the full dashboard snapshot: all six collections, each
// independently sorted per the store ordering rules.
type Overview struct {
	Transactions []*Transaction
	Items        []*InventoryItem
	Movements    []*Movement
	Projects     []*Project
	Costs        []*ProjectCost
	Sales        []*ProjectSale
}

// ProjectOverview is one project plus only its associated costs and sales,
// both sorted by date descending.
type ProjectOverview struct {
	Project *Project
	Costs   []*ProjectCost
	Sales   []*ProjectSale
}
