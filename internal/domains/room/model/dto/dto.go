package dto

import (
	"mime/multipart"

	"inn/internal/domains/room/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name         string                `json:"name"         validate:"required,max=100"`
	Location     string                `json:"location"     validate:"omitempty,max=100"`
	Availability int                   `json:"availability" validate:"omitempty,min=0"`
	Photo        *multipart.FileHeader `json:"photo"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile    multipart.File        `json:"-"`
	Active       *bool                 `json:"active"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, photoURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Location:     c.Location,
		Availability: c.Availability,
		Photo:        photoURL,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name         string                `db:"name"         json:"name"                                                                 validate:"omitempty,max=100"`
	Location     string                `db:"location"     json:"location"                                                             validate:"omitempty,max=100"`
	Availability *int                  `db:"availability" json:"availability"                                                         validate:"omitempty,min=0"`
	Photo        *multipart.FileHeader `json:"photo"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile    multipart.File        `json:"-"`
	Active       *bool                 `db:"active"       json:"active"                                                               validate:"omitempty"`
}

type RoomResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Availability int    `json:"availability"`
	Photo        string `json:"photo"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Availability = model.Availability
	r.Photo = model.Photo
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
