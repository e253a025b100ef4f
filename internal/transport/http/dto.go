package http

import (
	"github.com/MouhibAssas/HotelRoomsManagement/internal/domain"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/roomstore"
	"github.com/MouhibAssas/HotelRoomsManagement/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateRoomRequest struct {
	RoomNumber  string   `json:"roomNumber" validate:"required"`
	Bedrooms    int      `json:"bedrooms" validate:"min=1"`
	MaxGuests   int      `json:"maxGuests" validate:"min=1"`
	ViewType    string   `json:"viewType" validate:"required,oneof=none sea pool specific"`
	Status      string   `json:"status" validate:"required,oneof=available occupied maintenance cleaning"`
	GuestName   *string  `json:"guestName"`
	CheckIn     *string  `json:"checkIn"`
	CheckOut    *string  `json:"checkOut"`
	BasePrice   float64  `json:"basePrice" validate:"gte=0"`
	SummerPrice float64  `json:"summerPrice" validate:"gte=0"`
	WinterPrice float64  `json:"winterPrice" validate:"gte=0"`
	Amenities   []string `json:"amenities" validate:"omitempty,dive,required"`
	Floor       int      `json:"floor" validate:"gte=0"`
	RoomType    string   `json:"roomType"`
}

func (r CreateRoomRequest) toInput() domain.RoomInput {
	return domain.RoomInput{
		RoomNumber:  r.RoomNumber,
		Bedrooms:    r.Bedrooms,
		MaxGuests:   r.MaxGuests,
		ViewType:    domain.ViewType(r.ViewType),
		Status:      domain.Status(r.Status),
		GuestName:   r.GuestName,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		BasePrice:   r.BasePrice,
		SummerPrice: r.SummerPrice,
		WinterPrice: r.WinterPrice,
		Amenities:   r.Amenities,
		Floor:       r.Floor,
		RoomType:    r.RoomType,
	}
}

// UpdateRoomRequest — частичное обновление; проверяются только присланные поля.
type UpdateRoomRequest struct {
	RoomNumber  *string               `json:"roomNumber" validate:"omitempty,min=1"`
	Bedrooms    *int                  `json:"bedrooms" validate:"omitempty,min=1"`
	MaxGuests   *int                  `json:"maxGuests" validate:"omitempty,min=1"`
	ViewType    *string               `json:"viewType" validate:"omitempty,oneof=none sea pool specific"`
	Status      *string               `json:"status" validate:"omitempty,oneof=available occupied maintenance cleaning"`
	GuestName   domain.NullableString `json:"guestName"`
	CheckIn     domain.NullableString `json:"checkIn"`
	CheckOut    domain.NullableString `json:"checkOut"`
	BasePrice   *float64              `json:"basePrice" validate:"omitempty,gte=0"`
	SummerPrice *float64              `json:"summerPrice" validate:"omitempty,gte=0"`
	WinterPrice *float64              `json:"winterPrice" validate:"omitempty,gte=0"`
	Amenities   []string              `json:"amenities" validate:"omitempty,dive,required"`
	Floor       *int                  `json:"floor" validate:"omitempty,gte=0"`
	RoomType    *string               `json:"roomType"`
}

func (r UpdateRoomRequest) toPatch() domain.RoomPatch {
	p := domain.RoomPatch{
		RoomNumber:  r.RoomNumber,
		Bedrooms:    r.Bedrooms,
		MaxGuests:   r.MaxGuests,
		GuestName:   r.GuestName,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		BasePrice:   r.BasePrice,
		SummerPrice: r.SummerPrice,
		WinterPrice: r.WinterPrice,
		Amenities:   r.Amenities,
		Floor:       r.Floor,
		RoomType:    r.RoomType,
	}
	if r.ViewType != nil {
		v := domain.ViewType(*r.ViewType)
		p.ViewType = &v
	}
	if r.Status != nil {
		s := domain.Status(*r.Status)
		p.Status = &s
	}
	return p
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied maintenance cleaning"`
}

type RoomsResponse struct {
	Rooms []domain.Room `json:"rooms"`
}

type RoomsListResponse struct {
	Items      []domain.Room    `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
	Source     roomstore.Source `json:"source"`
}

type StatsResponse = service.Stats
