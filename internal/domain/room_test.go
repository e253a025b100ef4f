package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusAndViewValid(t *testing.T) {
	for _, s := range AllStatuses() {
		require.True(t, s.Valid(), s)
	}
	require.False(t, Status("closed").Valid())
	require.False(t, Status("").Valid())

	require.True(t, ViewSpecific.Valid())
	require.False(t, ViewType("garden").Valid())
}

func TestRoomInput_ToRoomDefaults(t *testing.T) {
	r := RoomInput{RoomNumber: "501", Bedrooms: 1, MaxGuests: 2, ViewType: ViewSea, Status: StatusAvailable}.ToRoom(42)

	require.Equal(t, int64(42), r.ID)
	require.Equal(t, []string{"WiFi", "Air Conditioning"}, r.Amenities)
	require.Equal(t, 1, r.Floor)
	require.Equal(t, "Standard", r.RoomType)

	kept := RoomInput{RoomNumber: "9", Amenities: []string{}, Floor: 3, RoomType: "Suite"}.ToRoom(1)
	require.Empty(t, kept.Amenities)
	require.NotNil(t, kept.Amenities)
	require.Equal(t, 3, kept.Floor)
	require.Equal(t, "Suite", kept.RoomType)
}

func TestRoomPatch_ApplyPreservesAbsentFields(t *testing.T) {
	guest := "John Smith"
	base := Room{
		ID: 2, RoomNumber: "102", Bedrooms: 2, MaxGuests: 4, ViewType: ViewPool,
		Status: StatusOccupied, GuestName: &guest, BasePrice: 400, SummerPrice: 600,
		WinterPrice: 350, Amenities: []string{"WiFi"}, Floor: 1, RoomType: "Deluxe",
	}

	cleaning := StatusCleaning
	got := RoomPatch{Status: &cleaning}.Apply(base)

	want := base.Clone()
	want.Status = StatusCleaning
	require.Equal(t, want, got)
	require.Equal(t, StatusOccupied, base.Status, "source record must not change")
}

func TestRoomPatch_JSONTriState(t *testing.T) {
	guest := "Sarah Johnson"
	base := Room{ID: 6, GuestName: &guest, CheckIn: &guest}

	var p RoomPatch
	require.NoError(t, json.Unmarshal([]byte(`{"guestName":null,"floor":4}`), &p))
	require.True(t, p.GuestName.Set)
	require.False(t, p.CheckIn.Set)

	got := p.Apply(base)
	require.Nil(t, got.GuestName)
	require.NotNil(t, got.CheckIn)
	require.Equal(t, 4, got.Floor)
	require.Equal(t, int64(6), got.ID)

	var empty RoomPatch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	require.True(t, empty.IsEmpty())
	require.False(t, p.IsEmpty())
}

func TestRoom_CloneIsDeep(t *testing.T) {
	name := "x"
	r := Room{Amenities: []string{"a"}, GuestName: &name}
	c := r.Clone()
	c.Amenities[0] = "b"
	*c.GuestName = "y"
	require.Equal(t, "a", r.Amenities[0])
	require.Equal(t, "x", *r.GuestName)
}
