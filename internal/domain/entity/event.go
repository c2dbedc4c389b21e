package entity

import "time"

// Tipos de evento.
const (
	EventTypeClosed = "fechado" // evento fechado (pagamento único do contratante)
	EventTypeSingle = "avulso"  // venda avulsa
)

// Event representa uma ocasião (casamento, festival) à qual entradas e
// saídas podem ser atribuídas. TotalRevenue é derivado das entradas e vive
// apenas na camada de resposta.
type Event struct {
	ID           string
	Name         string
	Date         time.Time
	Type         string // fechado, avulso
	Observations string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
