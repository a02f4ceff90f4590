package equipment

import "rentaldesk/internal/repository"

type CreateEquipmentRequest struct {
	EquipmentTypeID int64  `json:"equipmentTypeId" validate:"required"`
	State           string `json:"state"`
}

type UpdateProfileRequest struct {
	State  string `json:"state"`
	UserID *int64 `json:"user_id"`
}

type RentBackRequest struct {
	EquipmentTypeID int64 `json:"equipmentTypeId" validate:"required"`
	UserID          int64 `json:"userId" validate:"required"`
}

type UserRef struct {
	Name string `json:"name"`
}

type EquipmentTypeRef struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	RentingPrice   float64 `json:"rentingPrice"`
	EquipmentImage string  `json:"equipmentImage,omitempty"`
}

type EquipmentResponse struct {
	ID              int64            `json:"id"`
	EquipmentTypeID int64            `json:"equipmentTypeId"`
	State           string           `json:"state"`
	User            *UserRef         `json:"user"`
	EquipmentType   EquipmentTypeRef `json:"equipmentType"`
}

func toEquipmentResponse(d repository.EquipmentDetails) EquipmentResponse {
	var holder *UserRef
	if d.HolderName != nil {
		holder = &UserRef{Name: *d.HolderName}
	}

	return EquipmentResponse{
		ID:              d.ID,
		EquipmentTypeID: d.EquipmentTypeID,
		State:           d.State,
		User:            holder,
		EquipmentType: EquipmentTypeRef{
			Name:           d.TypeName,
			Category:       d.Category,
			RentingPrice:   d.RentingPrice,
			EquipmentImage: d.EquipmentImage,
		},
	}
}
