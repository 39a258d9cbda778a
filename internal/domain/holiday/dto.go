package holiday

import (
	"github.com/leavehq/leave-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be a valid date (YYYY-MM-DD)"})
	}
	if r.Type != "" && !validator.IsInSlice(r.Type, []string{string(TypePublic), string(TypeCompany)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be public or company"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date.Format(dateLayout),
		Type: string(h.Type),
	}
}

func ToResponseList(holidays []Holiday) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, ToResponse(h))
	}
	return out
}
