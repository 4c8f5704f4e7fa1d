package dto

// ImportRequest carries the form fields sent along with an uploaded statement file
type ImportRequest struct {
	AccountID   string `form:"accountId" validate:"omitempty,max=64"`
	StatementID string `form:"statementId" validate:"omitempty,max=64"`
}
