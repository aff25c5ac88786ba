package service

import "sportvenue-backend/internal/domain"

// ComputeTotal derives a booking's total charge from the selected activity,
// the selected time slots, and the chosen add-on quantities.
//
// The base price is charged once per selected slot. Add-on quantities only
// count when the add-on exists on the activity; unknown names are ignored.
// With no slots selected the total is zero regardless of add-ons: the base
// price is never charged without at least one hour, and add-ons have nothing
// to attach to.
func ComputeTotal(activity *domain.Activity, selectedTimeSlots []string, addOns domain.AddOnSelection) int {
	if len(selectedTimeSlots) == 0 {
		return 0
	}

	total := activity.BasePrice * len(selectedTimeSlots)

	for name, quantity := range addOns {
		if quantity <= 0 {
			continue
		}
		if addOn, ok := activity.AddOnByName(name); ok {
			total += addOn.Price * quantity
		}
	}

	return total
}
