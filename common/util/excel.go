package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const ExcelSheet = "Sheet1"

// GenerateExcel writes rows of JSON objects into a single-sheet workbook.
// The header row lists keys in order of first appearance across rows.
func GenerateExcel(rows []json.RawMessage) ([]byte, error) {
	var headers []string
	seen := make(map[string]int)
	values := make([]map[string]any, 0, len(rows))

	for i, raw := range rows {
		keys, err := objectKeys(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		for _, key := range keys {
			if _, ok := seen[key]; !ok {
				seen[key] = len(headers)
				headers = append(headers, key)
			}
		}

		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		values = append(values, row)
	}

	f := excelize.NewFile()
	defer f.Close()

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(ExcelSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	for r, row := range values {
		for key, value := range row {
			cell, err := excelize.CoordinatesToCellName(seen[key]+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(ExcelSheet, cell, excelValue(value)); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func excelValue(value any) any {
	switch v := value.(type) {
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	default:
		return v
	}
}

func objectKeys(raw json.RawMessage) ([]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object")
	}

	var keys []string
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", token)
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := decoder.Decode(&skip); err != nil && err != io.EOF {
			return nil, err
		}
	}
	return keys, nil
}
