package dto

// CreateBankRequest represents the request payload for registering a bank
type CreateBankRequest struct {
	Name string `json:"bankName" validate:"required,min=1,max=150,bank_name"`
}
