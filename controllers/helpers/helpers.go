package helpers

import (
	"time"

	"github.com/gookit/validate"
	"github.com/varejotech/caixa/types"
)

type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func Vaildate(payload interface{}, err_src *Errors) {
	v := validate.Struct(payload)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Errors = append(err_src.Errors, err)
			}
		}
	}
}

func ValidateOrderBy(val types.OrderBy) bool {
	return len(val) == 0 || val == types.OrderByAsc || val == types.OrderByDesc
}

// ParseMonth parses a YYYY-MM key into the first instant of that month.
func ParseMonth(month string) (time.Time, bool) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func ParseDate(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
