package admin

type ExportFormat string

const (
	FormatExcel ExportFormat = "excel"
	FormatCSV   ExportFormat = "csv"
)

// exportTable is one resource flattened for export: ordered columns and
// one row of stringable values per record.
type exportTable struct {
	Resource string
	Columns  []string
	Rows     [][]any
}
