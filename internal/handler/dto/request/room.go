package request

import (
	"roombook/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Location    string   `json:"location" binding:"required,max=200"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	Description string   `json:"description" binding:"max=2000"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`
	Amenities   []string `json:"amenities" binding:"omitempty,dive,max=100"`
}

func (r *CreateRoomRequest) ToParams() commands.CreateRoomParams {
	return commands.CreateRoomParams{
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Amenities:   r.Amenities,
	}
}

type UpdateRoomRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=200"`
	Location    *string  `json:"location" binding:"omitempty,max=200"`
	Capacity    *int     `json:"capacity" binding:"omitempty,gt=0"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
	Amenities   []string `json:"amenities" binding:"omitempty,dive,max=100"`
}

func (r *UpdateRoomRequest) ToParams() commands.UpdateRoomParams {
	return commands.UpdateRoomParams{
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Amenities:   r.Amenities,
	}
}
