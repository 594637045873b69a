package templates

import (
	"strings"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
)

// LongDate is the human-readable date format used in documents.
const LongDate = "January 2, 2006"

var registerFilters sync.Once

// The pongo2 filter registry is global, so registration happens once per
// process and skips names another package already claimed.
func ensureFilters() {
	registerFilters.Do(func() {
		if !pongo2.FilterExists("longdate") {
			_ = pongo2.RegisterFilter("longdate", filterLongDate)
		}
		if !pongo2.FilterExists("money") {
			_ = pongo2.RegisterFilter("money", filterMoney)
		}
	})
}

func filterLongDate(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(formatDate(in.String())), nil
}

func filterMoney(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(formatMoney(in.String())), nil
}

// formatDate renders an ISO date as LongDate. Anything else is returned as
// entered.
func formatDate(v string) string {
	v = strings.TrimSpace(v)
	t, err := time.Parse(form.DateLayout, v)
	if err != nil {
		return v
	}
	return t.Format(LongDate)
}

// formatMoney prefixes a bare numeric amount with a dollar sign. Values that
// already carry one, or are not amounts, are returned as entered.
func formatMoney(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "$") || !form.IsAmount(v) {
		return v
	}
	return "$" + v
}
