package domain

import (
	"bytes"
	"encoding/json"
)

type ViewType string

const (
	ViewNone     ViewType = "none"
	ViewSea      ViewType = "sea"
	ViewPool     ViewType = "pool"
	ViewSpecific ViewType = "specific"
)

func (v ViewType) Valid() bool {
	switch v {
	case ViewNone, ViewSea, ViewPool, ViewSpecific:
		return true
	}
	return false
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusCleaning    Status = "cleaning"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusCleaning:
		return true
	}
	return false
}

// AllStatuses в порядке отображения на дашборде.
func AllStatuses() []Status {
	return []Status{StatusAvailable, StatusOccupied, StatusMaintenance, StatusCleaning}
}

const (
	DefaultFloor    = 1
	DefaultRoomType = "Standard"
)

func DefaultAmenities() []string {
	return []string{"WiFi", "Air Conditioning"}
}

// Room — запись о номере в том виде, в каком она хранится в слоте.
// GuestName/CheckIn/CheckOut заполняются только для занятых номеров,
// но это соглашение, а не проверка.
type Room struct {
	ID          int64    `json:"id"`
	RoomNumber  string   `json:"roomNumber"`
	Bedrooms    int      `json:"bedrooms"`
	MaxGuests   int      `json:"maxGuests"`
	ViewType    ViewType `json:"viewType"`
	Status      Status   `json:"status"`
	GuestName   *string  `json:"guestName"`
	CheckIn     *string  `json:"checkIn"`
	CheckOut    *string  `json:"checkOut"`
	BasePrice   float64  `json:"basePrice"`
	SummerPrice float64  `json:"summerPrice"`
	WinterPrice float64  `json:"winterPrice"`
	Amenities   []string `json:"amenities"`
	Floor       int      `json:"floor"`
	RoomType    string   `json:"roomType"`
}

// Clone возвращает глубокую копию (amenities и nullable поля не разделяются).
func (r Room) Clone() Room {
	out := r
	out.GuestName = cloneStr(r.GuestName)
	out.CheckIn = cloneStr(r.CheckIn)
	out.CheckOut = cloneStr(r.CheckOut)
	if r.Amenities != nil {
		out.Amenities = append([]string(nil), r.Amenities...)
	}
	return out
}

func CloneRooms(rooms []Room) []Room {
	if rooms == nil {
		return nil
	}
	out := make([]Room, len(rooms))
	for i := range rooms {
		out[i] = rooms[i].Clone()
	}
	return out
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}

// RoomInput — данные для создания номера. ID назначает хранилище;
// пустые Amenities/Floor/RoomType заменяются значениями по умолчанию.
type RoomInput struct {
	RoomNumber  string   `json:"roomNumber"`
	Bedrooms    int      `json:"bedrooms"`
	MaxGuests   int      `json:"maxGuests"`
	ViewType    ViewType `json:"viewType"`
	Status      Status   `json:"status"`
	GuestName   *string  `json:"guestName,omitempty"`
	CheckIn     *string  `json:"checkIn,omitempty"`
	CheckOut    *string  `json:"checkOut,omitempty"`
	BasePrice   float64  `json:"basePrice"`
	SummerPrice float64  `json:"summerPrice"`
	WinterPrice float64  `json:"winterPrice"`
	Amenities   []string `json:"amenities,omitempty"`
	Floor       int      `json:"floor,omitempty"`
	RoomType    string   `json:"roomType,omitempty"`
}

// ToRoom собирает запись с заданным id и заполняет дефолты.
func (in RoomInput) ToRoom(id int64) Room {
	r := Room{
		ID:          id,
		RoomNumber:  in.RoomNumber,
		Bedrooms:    in.Bedrooms,
		MaxGuests:   in.MaxGuests,
		ViewType:    in.ViewType,
		Status:      in.Status,
		GuestName:   cloneStr(in.GuestName),
		CheckIn:     cloneStr(in.CheckIn),
		CheckOut:    cloneStr(in.CheckOut),
		BasePrice:   in.BasePrice,
		SummerPrice: in.SummerPrice,
		WinterPrice: in.WinterPrice,
		Amenities:   DefaultAmenities(),
		Floor:       DefaultFloor,
		RoomType:    DefaultRoomType,
	}
	if in.Amenities != nil {
		r.Amenities = append([]string{}, in.Amenities...)
	}
	if in.Floor != 0 {
		r.Floor = in.Floor
	}
	if in.RoomType != "" {
		r.RoomType = in.RoomType
	}
	return r
}

// NullableString различает три состояния поля в патче:
// ключ отсутствует (Set=false), явный null (Set=true, Value=nil) и значение.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// Null и Str — конструкторы для кода, собирающего патч вручную.
func Null() NullableString { return NullableString{Set: true} }

func Str(s string) NullableString { return NullableString{Set: true, Value: &s} }

// RoomPatch — частичное обновление. Отсутствующие поля сохраняют прежние
// значения; id не патчится.
type RoomPatch struct {
	RoomNumber  *string        `json:"roomNumber,omitempty"`
	Bedrooms    *int           `json:"bedrooms,omitempty"`
	MaxGuests   *int           `json:"maxGuests,omitempty"`
	ViewType    *ViewType      `json:"viewType,omitempty"`
	Status      *Status        `json:"status,omitempty"`
	GuestName   NullableString `json:"guestName"`
	CheckIn     NullableString `json:"checkIn"`
	CheckOut    NullableString `json:"checkOut"`
	BasePrice   *float64       `json:"basePrice,omitempty"`
	SummerPrice *float64       `json:"summerPrice,omitempty"`
	WinterPrice *float64       `json:"winterPrice,omitempty"`
	Amenities   []string       `json:"amenities,omitempty"`
	Floor       *int           `json:"floor,omitempty"`
	RoomType    *string        `json:"roomType,omitempty"`
}

// Apply накладывает патч поверх r (shallow merge) и возвращает результат.
func (p RoomPatch) Apply(r Room) Room {
	out := r.Clone()
	if p.RoomNumber != nil {
		out.RoomNumber = *p.RoomNumber
	}
	if p.Bedrooms != nil {
		out.Bedrooms = *p.Bedrooms
	}
	if p.MaxGuests != nil {
		out.MaxGuests = *p.MaxGuests
	}
	if p.ViewType != nil {
		out.ViewType = *p.ViewType
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.GuestName.Set {
		out.GuestName = cloneStr(p.GuestName.Value)
	}
	if p.CheckIn.Set {
		out.CheckIn = cloneStr(p.CheckIn.Value)
	}
	if p.CheckOut.Set {
		out.CheckOut = cloneStr(p.CheckOut.Value)
	}
	if p.BasePrice != nil {
		out.BasePrice = *p.BasePrice
	}
	if p.SummerPrice != nil {
		out.SummerPrice = *p.SummerPrice
	}
	if p.WinterPrice != nil {
		out.WinterPrice = *p.WinterPrice
	}
	if p.Amenities != nil {
		out.Amenities = append([]string{}, p.Amenities...)
	}
	if p.Floor != nil {
		out.Floor = *p.Floor
	}
	if p.RoomType != nil {
		out.RoomType = *p.RoomType
	}
	return out
}

// IsEmpty — в патче нет ни одного поля.
func (p RoomPatch) IsEmpty() bool {
	return p.RoomNumber == nil && p.Bedrooms == nil && p.MaxGuests == nil &&
		p.ViewType == nil && p.Status == nil &&
		!p.GuestName.Set && !p.CheckIn.Set && !p.CheckOut.Set &&
		p.BasePrice == nil && p.SummerPrice == nil && p.WinterPrice == nil &&
		p.Amenities == nil && p.Floor == nil && p.RoomType == nil
}
