package models

// Food is a single logged meal. Date is client-supplied; CreatedAt and
// UpdatedAt are server-assigned. All three are RFC3339 text in storage.
type Food struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	IsItOnDiet  bool   `json:"is_it_on_diet"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
