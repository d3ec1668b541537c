package handler

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"bloodbank/internal/delivery/api/response"
	"bloodbank/internal/delivery/api/validator"
	domainerrors "bloodbank/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = time.DateOnly

// Measurement accepts a JSON number or a numeric string and keeps the raw text, so the
// eligibility rules can treat unparseable input as ineligible.
type Measurement string

// UnmarshalJSON implements json.Unmarshaler.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*m = ""

		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Measurement(strings.TrimSpace(s))

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "measurement must be a number or a numeric string")
	}
	*m = Measurement(n.String())

	return nil
}

// Date is a calendar date encoded as "2006-01-02". RFC 3339 timestamps are accepted too.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "date must be a string")
	}

	parsed, err := parseDate(s)
	if err != nil {
		return err
	}
	d.Time = parsed

	return nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, errors.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// measurementText returns the text of a raw weight or hemoglobin value. Values that are
// neither numbers nor strings come back as their JSON text, which never parses as a number.
func measurementText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var m Measurement
	if err := m.UnmarshalJSON(raw); err != nil {
		return string(raw)
	}

	return string(m)
}

// lastDonationDate decodes a raw last donation date. A missing or null value is not an
// error; anything that is not a date string reports ok=false.
func lastDonationDate(raw json.RawMessage) (*time.Time, bool) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, true
	}

	var d Date
	if err := d.UnmarshalJSON(raw); err != nil {
		return nil, false
	}

	return d.timePtr(), true
}

// timePtr returns nil for a missing date.
func (d *Date) timePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time

	return &t
}

// bindAndValidate decodes the body into req and runs struct validation, writing the
// error response itself. A false result means the response has been written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Request body could not be decoded")
	}

	if err := c.Validate(req); err != nil {
		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			return false, response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
				domainerrors.ErrValidationFailed.Message(), validationErr.Fields)
		}

		return false, response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	return true, nil
}

// pathID parses the :name path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
