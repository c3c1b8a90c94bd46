package ncaserr

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
)

// Errors accumulates coded errors. The nil value is an empty collection.
type Errors struct {
	errs []Error
}

func (r *Errors) With(err ...Error) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Merge(err *Errors) *Errors {
	if r == nil {
		return err
	}
	if err == nil || len(err.errs) == 0 {
		return r
	}
	return r.With(err.errs...)
}

func (r *Errors) Errors() []Error {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

// ErrorOrNil folds the collection into a single error, nil when empty
func (r *Errors) ErrorOrNil() error {
	if !r.HasError() {
		return nil
	}
	merged := &multierror.Error{
		ErrorFormat: func(es []error) string {
			msg := fmt.Sprintf("%d error(s) occurred:", len(es))
			for _, e := range es {
				msg += "\n\t* " + e.Error()
			}
			return msg
		},
	}
	for _, e := range r.errs {
		merged = multierror.Append(merged, codedMessage{e})
	}
	return merged.ErrorOrNil()
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.Errors() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}

// codedMessage renders an Error with its code while still unwrapping to it
type codedMessage struct{ err Error }

func (c codedMessage) Error() string { return FormatWithCode(c.err) }
func (c codedMessage) Unwrap() error { return c.err }
