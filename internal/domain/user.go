package domain

// User Model (an Account in the ledger)
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                          // Primary key, assigned at creation
	Username string `gorm:"size:191;uniqueIndex;not null" json:"username"` // Unique, case-sensitive username
	Password string `gorm:"not null" json:"-"`                             // Sealed credential secret, never serialized
}
