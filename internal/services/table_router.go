package services

import (
	"strings"

	"tag-ledger/internal/models"
)

// maxTableNameLength keeps generated names within the PostgreSQL identifier limit.
const maxTableNameLength = 63

const DefaultTableNamespace = "bank-txn"

type TableRouter struct {
	namespace string
}

func NewTableRouter(namespace string) *TableRouter {
	if namespace == "" {
		namespace = DefaultTableNamespace
	}
	return &TableRouter{namespace: namespace}
}

// RouteTable derives the table name of a bank from its display name: lowercase,
// every rune outside [a-z0-9] becomes '-', prefixed with the namespace.
func (r *TableRouter) RouteTable(displayName string) string {
	var b strings.Builder
	b.WriteString(r.namespace)
	b.WriteByte('-')
	for _, ch := range strings.ToLower(displayName) {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteByte('-')
		}
	}
	return truncate(b.String(), maxTableNameLength)
}

// WithSuffix disambiguates a colliding table name with a short suffix, usually
// the first characters of the bank id.
func (r *TableRouter) WithSuffix(tableName, suffix string) string {
	suffix = "-" + suffix
	return truncate(tableName, maxTableNameLength-len(suffix)) + suffix
}

// TableFor returns the persisted table of bank. Rows registered before the
// mapping was stored fall back to the derived name.
func (r *TableRouter) TableFor(bank models.Bank) string {
	if bank.TxTableName != "" {
		return bank.TxTableName
	}
	return r.RouteTable(bank.Name)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
