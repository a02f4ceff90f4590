package domain

// EquipmentType is the catalog entry shared by many physical units.
type EquipmentType struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name" validate:"required"`
	Category       string  `json:"category" validate:"required"`
	RentingPrice   float64 `json:"rentingPrice" validate:"gte=0"`
	EquipmentImage string  `json:"equipmentImage,omitempty"`
}

// Equipment is a single rentable unit. UserID is the current holder,
// nil means the unit is available.
type Equipment struct {
	ID              int64  `json:"id"`
	EquipmentTypeID int64  `json:"equipmentTypeId"`
	UserID          *int64 `json:"-"`
	State           string `json:"state"`
}
