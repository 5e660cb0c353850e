package advisor

import "github.com/alexanderramin/fitcoach/internal/domain"

var sedentaryActivities = map[domain.ActivityLabel]struct{}{
	domain.ActivitySitting:  {},
	domain.ActivityLying:    {},
	domain.ActivityStanding: {},
}

// DeriveStatus classifies a detected activity as sedentary or active.
func DeriveStatus(label domain.ActivityLabel) domain.ActivityStatus {
	if _, ok := sedentaryActivities[label]; ok {
		return domain.StatusSedentary
	}
	return domain.StatusActive
}
