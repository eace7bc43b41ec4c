// Package importer turns uploaded CSV statements into transaction create
// params. The expected layout is a header row of
// date,amount,kind,category,description with ISO dates and decimal amounts;
// the file encoding is sniffed, not assumed.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/category"
	"github.com/fintrackhq/fintrack/internal/encoding"
)

var ErrInvalidInput = errors.New("invalid statement input")

// Row is one parsed statement line. Category carries the name from the file;
// resolution against the user's categories happens in the service.
type Row struct {
	Date        time.Time
	Amount      decimal.Decimal
	Kind        category.Kind
	Category    string
	Description string
}

const dateLayout = "2006-01-02"

var requiredColumns = []string{"date", "amount", "kind", "category", "description"}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]Row, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	cols, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	var rows []Row

	for i, record := range records[1:] {
		rowNum := i + 2 // 1-based, after the header

		row, err := parseRow(cols, record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))

	for i, cell := range header {
		cols[strings.ToLower(strings.TrimSpace(cell))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidInput, name)
		}
	}

	return cols, nil
}

func parseRow(cols map[string]int, record []string) (Row, error) {
	date, err := time.Parse(dateLayout, cell(record, cols["date"]))
	if err != nil {
		return Row{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, cell(record, cols["date"]))
	}

	amount, err := decimal.NewFromString(cell(record, cols["amount"]))
	if err != nil || !amount.IsPositive() {
		return Row{}, fmt.Errorf("%w: bad amount %q", ErrInvalidInput, cell(record, cols["amount"]))
	}

	kind := category.Kind(strings.ToLower(cell(record, cols["kind"])))
	if !kind.Valid() {
		return Row{}, fmt.Errorf("%w: bad kind %q", ErrInvalidInput, cell(record, cols["kind"]))
	}

	name := cell(record, cols["category"])
	if name == "" {
		return Row{}, fmt.Errorf("%w: missing category", ErrInvalidInput)
	}

	return Row{
		Date:        date,
		Amount:      amount,
		Kind:        kind,
		Category:    name,
		Description: cell(record, cols["description"]),
	}, nil
}

func cell(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}
