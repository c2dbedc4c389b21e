package entity

import "time"

// Níveis de acesso dos usuários.
const (
	LevelAttendant = "ATTENDANT"
	LevelManager   = "MANAGER"
	LevelAdmin     = "ADMIN"
)

// User representa um usuário da aplicação.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Level        string // ATTENDANT, MANAGER, ADMIN
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
