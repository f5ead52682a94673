package storage

// Типы этапов
const (
	StageInternalRBH   = "INTERNAL_RBH"
	StageExternalFixed = "EXTERNAL_FIXED"
)

type ExternalQuote struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type RoleAllocation struct {
	MemberID string `json:"memberId"`
	Hours    int    `json:"hours"`
}

// Stage — этап работ. Внутренний считается по часам и ставкам,
// внешний — фиксированная цена (ручная или из выбранной оферты).
// Инвариант: если SelectedQuoteID задан, FixedPrice повторяет цену оферты.
type Stage struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"` // INTERNAL_RBH | EXTERNAL_FIXED
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	IsEnabled       bool             `json:"isEnabled"`
	FixedPrice      float64          `json:"fixedPrice,omitempty"`
	ExternalQuotes  []ExternalQuote  `json:"externalQuotes,omitempty"`
	SelectedQuoteID *string          `json:"selectedQuoteId,omitempty"`
	RoleAllocations []RoleAllocation `json:"roleAllocations"`
	Sort            int              `json:"sort,omitempty"`
}
