package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/itchan-dev/threadfeed/internal/errors"
	"github.com/itchan-dev/threadfeed/internal/middleware/metrics"
)

const maxFormSize = 1 << 20

// parseIdParam parses a store id and returns a meaningful error.
// Ids are BIGSERIAL, so anything above math.MaxInt64 is rejected here.
func parseIdParam(param string, paramName string) (uint64, error) {
	val, err := strconv.ParseUint(param, 10, 63)
	if err != nil {
		return 0, errors.Validation(fmt.Sprintf("invalid %s: must be an integer", paramName))
	}
	return val, nil
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseForm(); err != nil {
		return errors.Validation("Body is invalid form")
	}
	return nil
}

func recordWriteError(kind string, err error) {
	status := errors.StatusCode(err)
	switch {
	case status == http.StatusUnauthorized:
		metrics.RecordWrite(kind, metrics.OutcomeUnauthorized)
	case status >= http.StatusInternalServerError:
		metrics.RecordWrite(kind, metrics.OutcomeFailed)
	default:
		metrics.RecordWrite(kind, metrics.OutcomeRejected)
	}
}
