package domain

// Profile holds the billing identity a user prints on their invoices.
// At most one per user, enforced by a unique owner index in the store.
type Profile struct {
	ID           uint   `json:"id"`
	OwnerID      uint   `json:"-"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	BusinessName string `json:"business_name,omitempty"`
	Address      string `json:"address,omitempty"`
	Picture      string `json:"profile_picture,omitempty"`
}

// Account is a bank or payment account a user can reference on invoices.
// Many per user; no format validation is applied to the number.
type Account struct {
	ID            uint   `json:"id"`
	OwnerID       uint   `json:"-"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	ProviderID    string `json:"paypal_id,omitempty"`
}
