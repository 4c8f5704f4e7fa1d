package services

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"tag-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Classification rules, in the order they are tried.
const (
	RuleIndicator = "indicator"
	RuleSplit     = "split_columns"
	RuleNone      = "none"
)

// ClassifierConfig holds the field aliases the classifier looks for.
// List order is priority order.
type ClassifierConfig struct {
	AmountFields    []string `yaml:"amount_fields"`
	IndicatorFields []string `yaml:"indicator_fields"`
	CreditPatterns  []string `yaml:"credit_patterns"`
	DebitPatterns   []string `yaml:"debit_patterns"`
	CreditTokens    []string `yaml:"credit_tokens"`
	DebitTokens     []string `yaml:"debit_tokens"`
}

func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		AmountFields: []string{
			"AmountRaw", "Amount", "amount", "Transaction Amount", "Txn Amount",
			"Amount (INR)", "Amount(INR)", "AmountFormatted", "Amount (₹)",
		},
		IndicatorFields: []string{
			"Dr./Cr.", "Dr/Cr", "DR/CR", "Cr/Dr", "CR/DR", "Dr / Cr", "Cr./Dr.",
			"DrCr", "CrDr", "Debit/Credit", "Credit/Debit",
			"Type", "Transaction Type", "txnType", "type",
		},
		CreditPatterns: []string{"credit", "deposit", "cr amount"},
		DebitPatterns:  []string{"debit", "withdraw", "dr amount"},
		CreditTokens:   []string{"cr"},
		DebitTokens:    []string{"dr"},
	}
}

// LoadClassifierConfig reads alias overrides from a YAML file. Entries from the file
// are tried before the built-in defaults. An empty path returns the defaults.
func LoadClassifierConfig(path string) (ClassifierConfig, error) {
	cfg := DefaultClassifierConfig()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read classifier config %s: %w", path, err)
	}

	var overrides ClassifierConfig
	if err := yaml.Unmarshal(content, &overrides); err != nil {
		return cfg, fmt.Errorf("failed to parse classifier config %s: %w", path, err)
	}

	cfg.AmountFields = prependUnique(overrides.AmountFields, cfg.AmountFields)
	cfg.IndicatorFields = prependUnique(overrides.IndicatorFields, cfg.IndicatorFields)
	cfg.CreditPatterns = prependUnique(lowerAll(overrides.CreditPatterns), cfg.CreditPatterns)
	cfg.DebitPatterns = prependUnique(lowerAll(overrides.DebitPatterns), cfg.DebitPatterns)
	cfg.CreditTokens = prependUnique(lowerAll(overrides.CreditTokens), cfg.CreditTokens)
	cfg.DebitTokens = prependUnique(lowerAll(overrides.DebitTokens), cfg.DebitTokens)
	return cfg, nil
}

// Classification is the classifier output with the fields that produced it.
type Classification struct {
	Movement       models.NormalizedMovement `json:"movement"`
	Rule           string                    `json:"rule"`
	AmountField    string                    `json:"amountField,omitempty"`
	IndicatorField string                    `json:"indicatorField,omitempty"`
	CreditTotal    decimal.Decimal           `json:"creditTotal"`
	DebitTotal     decimal.Decimal           `json:"debitTotal"`
}

type Classifier struct {
	config ClassifierConfig
}

func NewClassifier(config ClassifierConfig) ClassifierInterface {
	return &Classifier{
		config: config,
	}
}

// Classify never fails; records without a usable signal come back as Unknown with a zero amount.
// The sign of a unified amount is never used to infer direction.
func (c *Classifier) Classify(data models.JSONBMap) models.NormalizedMovement {
	return c.Explain(data).Movement
}

func (c *Classifier) Explain(data models.JSONBMap) Classification {
	result := Classification{
		Movement:    models.UnknownMovement(),
		Rule:        RuleNone,
		CreditTotal: decimal.Zero,
		DebitTotal:  decimal.Zero,
	}
	if len(data) == 0 {
		return result
	}

	if amount, amountField, ok := c.findAmount(data); ok {
		if direction, indicatorField, ok := c.findIndicator(data); ok {
			result.Movement = models.NormalizedMovement{AmountAbs: amount, Direction: direction}
			result.Rule = RuleIndicator
			result.AmountField = amountField
			result.IndicatorField = indicatorField
			return result
		}
	}

	credit, debit := c.splitTotals(data)
	result.CreditTotal = credit
	result.DebitTotal = debit

	switch {
	case credit.IsPositive() && !debit.IsPositive():
		result.Movement = models.NormalizedMovement{AmountAbs: credit.Round(2), Direction: models.DirectionCredit}
		result.Rule = RuleSplit
	case debit.IsPositive() && !credit.IsPositive():
		result.Movement = models.NormalizedMovement{AmountAbs: debit.Round(2), Direction: models.DirectionDebit}
		result.Rule = RuleSplit
	}

	return result
}

func (c *Classifier) findAmount(data models.JSONBMap) (decimal.Decimal, string, bool) {
	for _, field := range c.config.AmountFields {
		raw, ok := data[field]
		if !ok {
			continue
		}
		if amount, ok := ParseAmount(raw); ok {
			return amount.Abs(), field, true
		}
	}
	return decimal.Zero, "", false
}

func (c *Classifier) findIndicator(data models.JSONBMap) (models.Direction, string, bool) {
	for _, field := range c.config.IndicatorFields {
		if direction, ok := c.indicatorValue(data, field); ok {
			return direction, field, true
		}
	}

	for _, field := range sortedKeys(data) {
		if !looksLikeIndicatorField(field) {
			continue
		}
		if direction, ok := c.indicatorValue(data, field); ok {
			return direction, field, true
		}
	}

	return models.DirectionUnknown, "", false
}

func (c *Classifier) indicatorValue(data models.JSONBMap, field string) (models.Direction, bool) {
	value, ok := data.StringValue(field)
	if !ok {
		return models.DirectionUnknown, false
	}
	return NormalizeIndicator(value)
}

// splitTotals sums absolute values of credit-like and debit-like columns.
// A column whose name matches both sides is ambiguous and ignored.
func (c *Classifier) splitTotals(data models.JSONBMap) (decimal.Decimal, decimal.Decimal) {
	credit := decimal.Zero
	debit := decimal.Zero

	for _, field := range sortedKeys(data) {
		isCredit := c.matches(field, c.config.CreditPatterns, c.config.CreditTokens)
		isDebit := c.matches(field, c.config.DebitPatterns, c.config.DebitTokens)
		if isCredit == isDebit {
			continue
		}

		amount, ok := ParseAmount(data[field])
		if !ok {
			continue
		}

		if isCredit {
			credit = credit.Add(amount.Abs())
		} else {
			debit = debit.Add(amount.Abs())
		}
	}

	return credit, debit
}

func (c *Classifier) matches(field string, patterns, tokens []string) bool {
	lower := strings.ToLower(field)
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	fieldTokens := tokenize(lower)
	for _, t := range tokens {
		if slices.Contains(fieldTokens, t) {
			return true
		}
	}
	return false
}

// NormalizeIndicator maps a raw indicator value to CR or DR.
func NormalizeIndicator(value string) (models.Direction, bool) {
	v := strings.ToUpper(strings.TrimSpace(value))
	v = strings.TrimRight(v, ".")
	switch v {
	case "CR", "CREDIT":
		return models.DirectionCredit, true
	case "DR", "DEBIT":
		return models.DirectionDebit, true
	default:
		return models.DirectionUnknown, false
	}
}

func looksLikeIndicatorField(field string) bool {
	lower := strings.ToLower(field)
	if strings.Contains(lower, "cr") && strings.Contains(lower, "dr") {
		return true
	}
	return strings.Contains(lower, "debit") || strings.Contains(lower, "credit")
}

var currencyPrefixes = []string{"INR", "USD", "RS.", "RS", "₹", "$", "€", "£"}

// ParseAmount reads a numeric value from a raw field. Strings may carry thousands
// separators, a currency prefix, surrounding whitespace and accounting parentheses.
// The sign is preserved; callers take the absolute value.
func ParseAmount(raw interface{}) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero, false
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case json.Number:
		return parseAmountString(v.String())
	case decimal.Decimal:
		return v, true
	case string:
		return parseAmountString(v)
	default:
		return decimal.Zero, false
	}
}

func parseAmountString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = strings.TrimSpace(s[1:])
	} else if strings.HasPrefix(s, "+") {
		s = strings.TrimSpace(s[1:])
	}

	upper := strings.ToUpper(s)
	for _, prefix := range currencyPrefixes {
		if strings.HasPrefix(upper, prefix) {
			s = strings.TrimSpace(s[len(prefix):])
			break
		}
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, true
}

func tokenize(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
}

func sortedKeys(data models.JSONBMap) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func prependUnique(first, rest []string) []string {
	out := make([]string, 0, len(first)+len(rest))
	for _, s := range append(slices.Clone(first), rest...) {
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
