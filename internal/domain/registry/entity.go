package registry

import "time"

// Worker is a registry row. Registry fields decorate engine output (grid
// name/phone/address columns, bank info on statements); they never influence
// numeric computation.
type Worker struct {
	ID          string
	Name        string
	Phone       *string
	Address     *string
	BankName    *string
	BankAccount *string
	Category    *string // e.g. daily-hire, team lead
	TeamName    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Site is a construction site registry row.
type Site struct {
	ID        string
	Name      string
	Address   *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
