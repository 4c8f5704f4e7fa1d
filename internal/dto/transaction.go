package dto

// UpdateTransactionRequest edits one transaction. Tags, when present, replaces the tag list
// with the given tag ids. Fields are merged into the raw record.
type UpdateTransactionRequest struct {
	Tags   *[]string              `json:"tags" validate:"omitempty,max=50,dive,required"`
	Fields map[string]interface{} `json:"fields"`
}

// BulkUpdateTransactionsRequest adds and removes tags on many transactions of one bank
type BulkUpdateTransactionsRequest struct {
	TransactionIDs []string `json:"transactionIds" validate:"required,min=1,max=1000,dive,required"`
	AddTags        []string `json:"addTags" validate:"omitempty,dive,required"`
	RemoveTags     []string `json:"removeTags" validate:"omitempty,dive,required"`
}

// BulkUpdateResult reports the outcome of a bulk edit
type BulkUpdateResult struct {
	Updated  int      `json:"updated"`
	NotFound []string `json:"notFound"`
}
