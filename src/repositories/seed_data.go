package repositories

import (
	"time"

	"estateportal/src/domain/entities"
)

const placeholderImage = "/placeholder.svg?height=600&width=800"

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func images(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = placeholderImage
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func sarah(id string) entities.Agent {
	return entities.Agent{
		ID:    id,
		Name:  "Sarah Johnson",
		Phone: "(305) 555-1234",
		Email: "sarah@miamiluxuryestates.com",
		Photo: "/placeholder.svg?height=200&width=200",
	}
}

// SeedProperties devolve uma cópia nova do catálogo inicial a cada chamada.
func SeedProperties() []entities.Property {
	return []entities.Property{
		{
			ID:          "prop1",
			Title:       "Luxury Waterfront Villa",
			Description: "Waterfront villa on Biscayne Bay with a private dock, open floor plan and an infinity pool.",
			Price:       4500000,
			Type:        "villa",
			Status:      entities.StatusForSale,
			Bedrooms:    5,
			Bathrooms:   6,
			Garage:      3,
			Size:        6200,
			YearBuilt:   2018,
			Address:     "123 Palm Island Dr, Miami Beach, FL 33139",
			Location:    entities.Location{Latitude: 25.7775, Longitude: -80.1412},
			Features:    []string{"Waterfront", "Private Dock", "Infinity Pool", "Smart Home System", "Wine Cellar"},
			Images:      images(5),
			Highlighted: true,
			Agent:       sarah("agent1"),
			CreatedAt:   mustParse("2023-05-15T10:30:00Z"),
		},
		{
			ID:          "prop2",
			Title:       "Modern Brickell Condo",
			Description: "Brickell condo with skyline and bay views, Italian cabinetry and a spa-like primary suite.",
			Price:       1850000,
			Type:        "condo",
			Status:      entities.StatusForSale,
			Bedrooms:    3,
			Bathrooms:   3.5,
			Garage:      2,
			Size:        2100,
			YearBuilt:   2019,
			Address:     "485 Brickell Ave, Miami, FL 33131",
			Location:    entities.Location{Latitude: 25.7689, Longitude: -80.1896},
			Features:    []string{"City Views", "Concierge", "Fitness Center", "Valet Parking"},
			Images:      images(4),
			Agent:       sarah("agent2"),
			CreatedAt:   mustParse("2023-06-20T14:45:00Z"),
		},
		{
			ID:          "prop3",
			Title:       "Coral Gables Mediterranean Estate",
			Description: "Mediterranean estate on a one-acre lot with a resort-style pool, wine cellar and guest house.",
			Price:       5900000,
			Type:        "house",
			Status:      entities.StatusForSale,
			Bedrooms:    6,
			Bathrooms:   7,
			Garage:      3,
			Size:        7500,
			YearBuilt:   2010,
			Address:     "789 Coral Way, Coral Gables, FL 33134",
			Location:    entities.Location{Latitude: 25.7465, Longitude: -80.264},
			Features:    []string{"Guest House", "Wine Cellar", "Media Room", "Home Office", "Pool"},
			Images:      images(5),
			VideoURL:    "https://example.com/tours/prop3",
			Highlighted: true,
			Agent:       sarah("agent1"),
			CreatedAt:   mustParse("2023-07-05T09:15:00Z"),
		},
		{
			ID:          "prop4",
			Title:       "Luxury Penthouse with Ocean Views",
			Description: "Full-floor penthouse on Collins Avenue with a private rooftop terrace and direct ocean views.",
			Price:       7200000,
			Type:        "penthouse",
			Status:      entities.StatusForSale,
			Bedrooms:    4,
			Bathrooms:   4.5,
			Garage:      2,
			Size:        3500,
			YearBuilt:   2020,
			Address:     "5775 Collins Ave, Miami Beach, FL 33140",
			Location:    entities.Location{Latitude: 25.8292, Longitude: -80.1222},
			Features:    []string{"Ocean Views", "Rooftop Terrace", "Private Elevator", "Summer Kitchen"},
			Images:      images(5),
			Highlighted: true,
			Agent:       sarah("agent2"),
			CreatedAt:   mustParse("2023-08-10T11:20:00Z"),
		},
		{
			ID:          "prop5",
			Title:       "Downtown Luxury Apartment",
			Description: "Downtown rental steps from Bayfront Park with floor-to-ceiling windows and a resort amenity deck.",
			Price:       3500,
			Type:        "apartment",
			Status:      entities.StatusForRent,
			Bedrooms:    2,
			Bathrooms:   2,
			Garage:      1,
			Size:        1200,
			YearBuilt:   2018,
			Address:     "350 S Miami Ave, Miami, FL 33130",
			Location:    entities.Location{Latitude: 25.7617, Longitude: -80.1918},
			Features:    []string{"Amenity Deck", "Pet Friendly", "In-unit Laundry"},
			Images:      images(4),
			Agent:       sarah("agent3"),
			CreatedAt:   mustParse("2023-09-01T15:30:00Z"),
		},
		{
			ID:          "prop6",
			Title:       "Waterfront Condo in Edgewater",
			Description: "Edgewater condo with a wraparound balcony over the bay and a marina in the building.",
			Price:       1200000,
			Type:        "condo",
			Status:      entities.StatusSold,
			Bedrooms:    3,
			Bathrooms:   2,
			Garage:      1,
			Size:        1800,
			YearBuilt:   2016,
			Address:     "460 NE 28th St, Miami, FL 33137",
			Location:    entities.Location{Latitude: 25.8029, Longitude: -80.1874},
			Features:    []string{"Bay Views", "Marina", "Wraparound Balcony"},
			Images:      images(4),
			Agent:       sarah("agent3"),
			CreatedAt:   mustParse("2023-10-15T13:45:00Z"),
		},
		{
			ID:          "prop7",
			Title:       "Coconut Grove Townhouse",
			Description: "Tri-level townhouse near CocoWalk with a private garden and rooftop deck.",
			Price:       850000,
			Type:        "townhouse",
			Status:      entities.StatusPending,
			Bedrooms:    3,
			Bathrooms:   2.5,
			Garage:      1,
			Size:        1950,
			YearBuilt:   2005,
			Address:     "3250 Grand Ave, Coconut Grove, FL 33133",
			Location:    entities.Location{Latitude: 25.7273, Longitude: -80.2421},
			Features:    []string{"Private Garden", "Rooftop Deck", "Walk to Shops"},
			Images:      images(4),
			Agent:       sarah("agent4"),
			CreatedAt:   mustParse("2023-11-20T10:00:00Z"),
		},
		{
			ID:          "prop8",
			Title:       "Luxury Apartment in South Beach",
			Description: "Ocean Drive rental in a restored Art Deco building, one block from the beach.",
			Price:       2800,
			Type:        "apartment",
			Status:      entities.StatusForRent,
			Bedrooms:    1,
			Bathrooms:   1,
			Garage:      1,
			Size:        850,
			YearBuilt:   2015,
			Address:     "1500 Ocean Dr, Miami Beach, FL 33139",
			Location:    entities.Location{Latitude: 25.7868, Longitude: -80.1304},
			Features:    []string{"Art Deco", "Beach Access", "Updated Kitchen"},
			Images:      images(3),
			Agent:       sarah("agent4"),
			CreatedAt:   mustParse("2023-12-05T16:15:00Z"),
		},
	}
}

// SeedUsers traz as credenciais de demonstração (senhas em texto puro, sem segurança real).
func SeedUsers() []entities.User {
	return []entities.User{
		{
			ID:        "user1",
			Name:      "Admin User",
			Email:     "admin@example.com",
			Password:  "admin123",
			Role:      entities.RoleAdmin,
			CreatedAt: mustParse("2023-01-01T00:00:00Z"),
		},
		{
			ID:        "user2",
			Name:      "John Doe",
			Email:     "user@example.com",
			Password:  "user123",
			Role:      entities.RoleUser,
			CreatedAt: mustParse("2023-01-15T00:00:00Z"),
		},
		{
			ID:        "user3",
			Name:      "Jane Smith",
			Email:     "jane@example.com",
			Password:  "password123",
			Role:      entities.RoleUser,
			CreatedAt: mustParse("2023-02-01T00:00:00Z"),
		},
	}
}

// SeedMessages is ordered newest first, the order the repository keeps.
func SeedMessages() []entities.Message {
	return []entities.Message{
		{
			ID:        "msg5",
			Name:      "Michael Brown",
			Email:     "michael@example.com",
			Phone:     "(786) 333-4444",
			Subject:   "Contact Form Submission",
			Message:   "I'm looking for investment properties in up-and-coming Miami neighborhoods. Could you share ROI and rental market trends?",
			Read:      false,
			CreatedAt: mustParse("2023-09-15T09:30:00Z"),
		},
		{
			ID:         "msg4",
			Name:       "Jennifer Lopez",
			Email:      "jennifer@example.com",
			Phone:      "(305) 777-8888",
			Subject:    "Waterfront Condo in Edgewater",
			Message:    "Is it possible to arrange a virtual tour of the Edgewater condo? I'm out of town but very interested.",
			PropertyID: ptr("prop6"),
			Read:       true,
			CreatedAt:  mustParse("2023-08-05T11:20:00Z"),
		},
		{
			ID:        "msg3",
			Name:      "David Wilson",
			Email:     "david@example.com",
			Phone:     "(786) 555-1234",
			Subject:   "General Inquiry",
			Message:   "I'm relocating next month and looking for a 3-bedroom in Coral Gables around $1.5M. Any listings that match?",
			Read:      false,
			CreatedAt: mustParse("2023-07-10T16:45:00Z"),
		},
		{
			ID:         "msg2",
			Name:       "Maria Garcia",
			Email:      "maria@example.com",
			Phone:      "(305) 987-6543",
			Subject:    "Modern Brickell Condo",
			Message:    "Is the Brickell condo still available? I'd like to know about the building amenities and special assessments.",
			PropertyID: ptr("prop2"),
			Read:       false,
			CreatedAt:  mustParse("2023-06-25T10:15:00Z"),
		},
		{
			ID:         "msg1",
			Name:       "Robert Johnson",
			Email:      "robert@example.com",
			Phone:      "(305) 123-4567",
			Subject:    "Property Inquiry",
			Message:    "Could you send more information about the Luxury Waterfront Villa and schedule a viewing this weekend?",
			PropertyID: ptr("prop1"),
			Read:       true,
			CreatedAt:  mustParse("2023-05-20T14:30:00Z"),
		},
	}
}
