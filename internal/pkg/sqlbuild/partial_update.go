// Package sqlbuild builds parameterized SQL fragments for partial updates.
// It has no knowledge of any table; the job and company repositories both use
// it to turn a sparse field map into a SET clause.
package sqlbuild

import (
	"fmt"
	"sort"
	"strings"

	"jobboard/internal/pkg/errs"
)

// PartialUpdate converts a sparse field map into a comma-joined SET clause with
// 1-based positional placeholders and the parallel ordered argument list.
//
// Field names are enumerated in sorted order so the clause is deterministic.
// Names present in columns are translated to their storage column; absent names
// are used verbatim. Callers appending further positional parameters (such as a
// trailing id) must start numbering at len(fields)+1.
//
// Example:
//
//	clause, args, err := sqlbuild.PartialUpdate(
//	    map[string]any{"numEmployees": 12, "name": "Acme"},
//	    map[string]string{"numEmployees": "num_employees"},
//	)
//	// clause: `"name"=$1, "num_employees"=$2`
//	// args:   []any{"Acme", 12}
//
// An empty field map is a caller contract violation and fails with
// errs.ErrValueIsRequired.
func PartialUpdate(fields map[string]any, columns map[string]string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, errs.NewValueIsRequiredError("no fields to update")
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, 0, len(names))
	args := make([]any, 0, len(names))
	for i, name := range names {
		column := name
		if mapped, ok := columns[name]; ok {
			column = mapped
		}
		assignments = append(assignments, fmt.Sprintf("%q=$%d", column, i+1))
		args = append(args, fields[name])
	}

	return strings.Join(assignments, ", "), args, nil
}
