package dividend

import (
	"fmt"
	"strings"
)

// SchemaError reports that a sheet of the export is missing one or more
// required columns. It aborts the whole load: there is no way to build a
// ledger from a sheet whose shape is unknown.
type SchemaError struct {
	Sheet   string
	Columns []string // missing column names, in the export's own language
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet %q is missing required column(s): %s", e.Sheet, strings.Join(e.Columns, ", "))
}

// MalformedInputError reports a sheet whose name cannot be read as a year.
// Sheet names are the only place the export declares its years, so this too
// aborts the whole load.
type MalformedInputError struct {
	Sheet string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("sheet name %q is not a 4-digit year", e.Sheet)
}
