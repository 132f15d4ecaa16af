package cli

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value for optional YYYY-MM-DD flags. An empty
// value clears the target.
type dateValue struct {
	target **time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(target **time.Time) *dateValue {
	return &dateValue{target: target}
}

func (d *dateValue) String() string {
	if d.target == nil || *d.target == nil {
		return ""
	}
	return (*d.target).Format(domain.DateLayout)
}

func (d *dateValue) Set(s string) error {
	t, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	*d.target = t
	return nil
}

func (d *dateValue) Type() string { return "date" }

// flagError reports bad flag values as invalid input so they get the same
// prefix and exit path as validation failures from the services.
func flagError(_ *cobra.Command, err error) error {
	return domain.InvalidInputf("%v", err)
}

// anyChanged reports whether any of the named flags was set on the command line.
func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, n := range names {
		if flags.Changed(n) {
			return true
		}
	}
	return false
}
