package domain

// Kind is the direction of a ledger entry: income or expense.
type Kind string

const (
	Income  Kind = "income"  // Money coming in
	Expense Kind = "expense" // Money going out
)

// Valid reports whether k is one of the two permitted kinds.
func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// Transaction Model
type Transaction struct {
	ID          uint    `gorm:"primaryKey" json:"id"`                                                       // Primary key, insertion order
	UserID      uint    `gorm:"not null;index" json:"user_id"`                                              // Owning account
	User        User    `gorm:"foreignKey:UserID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;" json:"-"` // Referential integrity to users
	Kind        Kind    `gorm:"size:16;not null" json:"kind"`                                               // income or expense
	Amount      float64 `gorm:"not null" json:"amount"`                                                     // Always positive, sign carried by Kind
	Description string  `gorm:"not null" json:"description"`                                                // Non-empty text
	CreatedAt   int64   `gorm:"autoCreateTime:milli" json:"created_at"`                                     // Timestamp of creation in milliseconds
}
