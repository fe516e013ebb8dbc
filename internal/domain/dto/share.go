package dto

import (
	"time"

	"github.com/opsgain/portops/internal/domain"
	"github.com/opsgain/portops/internal/pkg/constants"
)

type ShareLinkRequest struct {
	Name  string `json:"name"`
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end" validate:"required,datetime=2006-01-02"`
}

// Selection converts the wire form to a domain selection, enforcing
// start <= end.
func (r *ShareLinkRequest) Selection() (domain.PeriodSelection, error) {
	start, err := time.Parse(domain.DateFormat, r.Start)
	if err != nil {
		return domain.PeriodSelection{}, constants.ErrInvalidPeriod
	}
	end, err := time.Parse(domain.DateFormat, r.End)
	if err != nil {
		return domain.PeriodSelection{}, constants.ErrInvalidPeriod
	}
	if start.After(end) {
		return domain.PeriodSelection{}, constants.ErrInvalidPeriod
	}

	return domain.NewPeriodSelection(r.Name, start, end), nil
}

type ShareLinkResponse struct {
	URL    string `json:"url"`
	LinkID string `json:"link_id"`
}
