package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Field aponta o campo do formulário quando o erro é de validação
	// (ex: "quantity" em saída de estoque com quantidade maior que o disponível).
	Field string `json:"field,omitempty"`
}

// ListResponse envelope de listagens com o total após filtros.
type ListResponse[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}
