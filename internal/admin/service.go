package admin

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"crm-master-api/internal/master"
)

type AdminService struct {
	DB *gorm.DB
}

// Export flattens the named resources into a spreadsheet. Excel output
// puts each resource on its own sheet; CSV output concatenates sections.
func (as *AdminService) Export(resources []string, format ExportFormat) (string, string, []byte, error) {
	if len(resources) == 0 {
		return "", "", nil, fmt.Errorf("at least one resource is required")
	}

	registry := master.Registry()
	tables := make([]exportTable, 0, len(resources))
	for _, name := range resources {
		res, ok := registry[name]
		if !ok {
			return "", "", nil, fmt.Errorf("unknown resource %q", name)
		}
		table, err := as.loadTable(res)
		if err != nil {
			return "", "", nil, err
		}
		tables = append(tables, table)
	}

	stamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := buildCSV(tables)
		if err != nil {
			return "", "", nil, err
		}
		return "text/csv", fmt.Sprintf("master_data_%s.csv", stamp), data, nil
	case FormatExcel:
		data, err := buildXLSX(tables)
		if err != nil {
			return "", "", nil, err
		}
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			fmt.Sprintf("master_data_%s.xlsx", stamp), data, nil
	default:
		return "", "", nil, fmt.Errorf("unsupported format %q", format)
	}
}

func (as *AdminService) loadTable(res master.Resource) (exportTable, error) {
	rows := res.Slice()
	if err := as.DB.Order("id ASC").Find(rows).Error; err != nil {
		return exportTable{}, err
	}

	columns := exportColumns(res.Model())
	table := exportTable{Resource: res.Name, Columns: columns}

	slice := reflect.ValueOf(rows).Elem()
	for i := 0; i < slice.Len(); i++ {
		table.Rows = append(table.Rows, exportValues(slice.Index(i), columns))
	}
	return table, nil
}

// exportColumns lists the model's json tags in declaration order, which
// match the column names across every registered resource.
func exportColumns(model any) []string {
	t := reflect.TypeOf(model).Elem()
	out := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

func exportValues(row reflect.Value, columns []string) []any {
	byTag := make(map[string]any, row.NumField())
	t := row.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		v := row.Field(i).Interface()
		if ts, ok := v.(time.Time); ok {
			v = ts.Format(time.RFC3339)
		}
		byTag[tag] = v
	}

	out := make([]any, 0, len(columns))
	for _, c := range columns {
		out = append(out, byTag[c])
	}
	return out
}

func buildCSV(tables []exportTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for i, table := range tables {
		if i > 0 {
			// blank separator row between resource sections
			if err := w.Write([]string{}); err != nil {
				return nil, err
			}
		}
		if err := w.Write([]string{"resource", table.Resource}); err != nil {
			return nil, err
		}
		if err := w.Write(table.Columns); err != nil {
			return nil, err
		}
		for _, row := range table.Rows {
			record := make([]string, 0, len(row))
			for _, v := range row {
				record = append(record, fmt.Sprintf("%v", v))
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildXLSX(tables []exportTable) ([]byte, error) {
	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	defaultSheet := f.GetSheetName(0)

	for _, table := range tables {
		sheet := safeSheetName(table.Resource)

		f.NewSheet(sheet)

		sw, err := f.NewStreamWriter(sheet)
		if err != nil {
			return nil, err
		}

		header := make([]interface{}, 0, len(table.Columns))
		for _, c := range table.Columns {
			header = append(header, excelize.Cell{Value: c, StyleID: headerStyle})
		}
		_ = sw.SetRow("A1", header)

		rowNum := 2
		for _, row := range table.Rows {
			values := make([]interface{}, 0, len(row))
			for _, v := range row {
				if v == nil {
					values = append(values, "")
				} else {
					values = append(values, fmt.Sprintf("%v", v))
				}
			}
			cell, _ := excelize.CoordinatesToCellName(1, rowNum)
			_ = sw.SetRow(cell, values)
			rowNum++
		}

		if err := sw.Flush(); err != nil {
			return nil, err
		}
	}

	if defaultSheet != "" {
		f.DeleteSheet(defaultSheet)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safeSheetName(name string) string {
	n := strings.TrimSpace(name)
	n = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_").Replace(n)
	if len(n) > 31 {
		n = n[:31]
	}
	return n
}
