package roomstore

import "github.com/MouhibAssas/HotelRoomsManagement/internal/domain"

// Defaults — фиксированный набор из 8 номеров: последний уровень fallback
// и фикстура для тестов. Каждый вызов возвращает новую копию.
func Defaults() []domain.Room {
	return []domain.Room{
		{
			ID: 1, RoomNumber: "101", Bedrooms: 1, MaxGuests: 2,
			ViewType: domain.ViewSea, Status: domain.StatusAvailable,
			BasePrice: 300, SummerPrice: 450, WinterPrice: 250,
			Amenities: []string{"WiFi", "Air Conditioning", "Mini Bar", "Sea View"},
			Floor:     1, RoomType: "Standard",
		},
		{
			ID: 2, RoomNumber: "102", Bedrooms: 2, MaxGuests: 4,
			ViewType: domain.ViewPool, Status: domain.StatusOccupied,
			GuestName: strp("John Smith"), CheckIn: strp("2024-01-15"), CheckOut: strp("2024-01-18"),
			BasePrice: 400, SummerPrice: 600, WinterPrice: 350,
			Amenities: []string{"WiFi", "Air Conditioning", "Mini Bar", "Pool View", "Balcony"},
			Floor:     1, RoomType: "Deluxe",
		},
		{
			ID: 3, RoomNumber: "201", Bedrooms: 1, MaxGuests: 2,
			ViewType: domain.ViewSea, Status: domain.StatusMaintenance,
			BasePrice: 350, SummerPrice: 500, WinterPrice: 300,
			Amenities: []string{"WiFi", "Air Conditioning", "Sea View", "Balcony"},
			Floor:     2, RoomType: "Standard",
		},
		{
			ID: 4, RoomNumber: "202", Bedrooms: 3, MaxGuests: 6,
			ViewType: domain.ViewPool, Status: domain.StatusCleaning,
			BasePrice: 500, SummerPrice: 750, WinterPrice: 450,
			Amenities: []string{"WiFi", "Air Conditioning", "Mini Bar", "Pool View", "Balcony", "Kitchenette"},
			Floor:     2, RoomType: "Suite",
		},
		{
			ID: 5, RoomNumber: "301", Bedrooms: 2, MaxGuests: 4,
			ViewType: domain.ViewSpecific, Status: domain.StatusAvailable,
			BasePrice: 450, SummerPrice: 650, WinterPrice: 400,
			Amenities: []string{"WiFi", "Air Conditioning", "Mini Bar", "Mountain View", "Balcony"},
			Floor:     3, RoomType: "Deluxe",
		},
		{
			ID: 6, RoomNumber: "302", Bedrooms: 1, MaxGuests: 2,
			ViewType: domain.ViewNone, Status: domain.StatusOccupied,
			GuestName: strp("Sarah Johnson"), CheckIn: strp("2024-01-16"), CheckOut: strp("2024-01-20"),
			BasePrice: 280, SummerPrice: 420, WinterPrice: 220,
			Amenities: []string{"WiFi", "Air Conditioning"},
			Floor:     3, RoomType: "Economy",
		},
		{
			ID: 7, RoomNumber: "401", Bedrooms: 2, MaxGuests: 4,
			ViewType: domain.ViewSea, Status: domain.StatusAvailable,
			BasePrice: 550, SummerPrice: 800, WinterPrice: 500,
			Amenities: []string{"WiFi", "Air Conditioning", "Mini Bar", "Sea View", "Balcony", "Jacuzzi"},
			Floor:     4, RoomType: "Premium",
		},
		{
			ID: 8, RoomNumber: "402", Bedrooms: 1, MaxGuests: 2,
			ViewType: domain.ViewPool, Status: domain.StatusAvailable,
			BasePrice: 320, SummerPrice: 480, WinterPrice: 280,
			Amenities: []string{"WiFi", "Air Conditioning", "Pool View"},
			Floor:     4, RoomType: "Standard",
		},
	}
}

func strp(s string) *string { return &s }
