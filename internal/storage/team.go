package storage

// Роли — открытый словарь строк, это только подсказки для фронта
const (
	RoleArchitect = "Architekt"
	RoleAssistant = "Asystent"
	RoleManager   = "Project Manager"
)

type TeamMember struct {
	ID       string  `json:"id"`
	Role     string  `json:"role"`
	Rate     float64 `json:"rate"` // PLN за RBH
	IsActive bool    `json:"isActive"`
}
