package entity

import "time"

// Tipos de categoria: receita (entrada) ou despesa (saída).
const (
	CategoryTypeEntry  = "ENTRY"
	CategoryTypeOutput = "OUTPUT"
)

// Category representa uma categoria de entradas ou saídas.
// Color é usado pelo dashboard na quebra de despesas por categoria.
type Category struct {
	ID                string
	Name              string
	Type              string // ENTRY, OUTPUT
	Active            bool
	Color             string // hex, ex: "#FF6384"; vazio = paleta padrão
	AllowsSingleEvent bool
	Description       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
