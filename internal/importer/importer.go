// Package importer turns uploaded statement files into raw transaction rows.
package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tag-ledger/internal/models"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrMissingHeader       = errors.New("file has no header row")
	ErrEmptyFile           = errors.New("file has no data rows")
)

// Sheet is a parsed upload: the header row and one map per data row keyed by header.
type Sheet struct {
	Source  string
	Headers []string
	Rows    []models.JSONBMap
}

// SourceFor picks the parser from the file extension.
func SourceFor(fileName string) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".txt":
		return models.ImportSourceCSV, nil
	case ".xlsx", ".xlsm":
		return models.ImportSourceXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, fileName)
	}
}

// Parse reads a CSV or XLSX payload. Header names are kept as written, minus
// surrounding whitespace, because the classifier matches on them.
func Parse(fileName string, data []byte) (*Sheet, error) {
	source, err := SourceFor(fileName)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch source {
	case models.ImportSourceCSV:
		rows, err = readCSV(data)
	case models.ImportSourceXLSX:
		rows, err = readXLSX(data)
	}
	if err != nil {
		return nil, err
	}

	sheet, err := toSheet(rows)
	if err != nil {
		return nil, err
	}
	sheet.Source = source
	return sheet, nil
}

func readCSV(data []byte) ([][]string, error) {
	br := bufio.NewReader(bytes.NewReader(data))
	peek, _ := br.Peek(4096)

	delimiter := ','
	if bytes.Count(peek, []byte(";")) > bytes.Count(peek, []byte(",")) {
		delimiter = ';'
	} else if bytes.Contains(peek, []byte("\t")) && !bytes.Contains(peek, []byte(",")) {
		delimiter = '\t'
	}

	if len(peek) >= 3 && peek[0] == 0xEF && peek[1] == 0xBB && peek[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	r := csv.NewReader(br)
	r.Comma = delimiter
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return records, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, nil
}

func toSheet(rows [][]string) (*Sheet, error) {
	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.Trim(strings.TrimSpace(h), "\"'`")
	}

	if len(rows) == 1 {
		return nil, ErrEmptyFile
	}

	sheet := &Sheet{Headers: headers, Rows: make([]models.JSONBMap, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		record := models.JSONBMap{}
		for i, value := range row {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			record[headers[i]] = value
		}
		if header := tagsHeader(headers); header != "" {
			if raw, ok := record[header].(string); ok {
				delete(record, header)
				record[models.TagsField] = SplitTagNames(raw)
			}
		}
		sheet.Rows = append(sheet.Rows, record)
	}
	return sheet, nil
}

// SplitTagNames turns "Rent, Food;Travel" into name-only tag references.
func SplitTagNames(raw string) []interface{} {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' || r == '|' })
	out := make([]interface{}, 0, len(parts))
	seen := map[string]bool{}
	for _, p := range parts {
		name := strings.TrimSpace(p)
		key := models.TagNameKey(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, map[string]interface{}{"name": name})
	}
	return out
}

func tagsHeader(headers []string) string {
	for _, h := range headers {
		if strings.EqualFold(h, models.TagsField) {
			return h
		}
	}
	return ""
}

func dropBlankRows(rows [][]string) [][]string {
	clean := make([][]string, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		clean = append(clean, row)
	}
	return clean
}
