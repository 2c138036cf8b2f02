package repositories

import (
	"strings"

	"villagestay/internal/domain"
	"villagestay/internal/domain/models"
)

// HomestayCatalog is the static read-only listing source. The booking
// flow only ever reads id, nightly rate and capacity from it.
type HomestayCatalog struct{}

// CatalogFilter narrows a catalog listing.
type CatalogFilter struct {
	Query     string
	State     string
	MaxPrice  int64
	MinGuests int
}

func (c HomestayCatalog) List(f CatalogFilter) []models.Homestay {
	out := make([]models.Homestay, 0, len(catalog))
	q := strings.ToLower(strings.TrimSpace(f.Query))
	state := strings.ToLower(strings.TrimSpace(f.State))
	for _, h := range catalog {
		if q != "" && !matchesQuery(h, q) {
			continue
		}
		if state != "" && strings.ToLower(h.Location.State) != state {
			continue
		}
		if f.MaxPrice > 0 && h.PerNight > f.MaxPrice {
			continue
		}
		if f.MinGuests > 0 && h.MaxGuests < f.MinGuests {
			continue
		}
		out = append(out, h)
	}
	return out
}

func (c HomestayCatalog) GetByID(id string) (models.Homestay, error) {
	for _, h := range catalog {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Homestay{}, domain.NotFoundError{Resource: "homestay"}
}

func matchesQuery(h models.Homestay, q string) bool {
	for _, field := range []string{h.Title, h.Description, h.Location.Village, h.Location.District, h.Location.State} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

var catalogReviews = []models.Review{
	{
		ID:         "1",
		HomestayID: "1",
		UserName:   "Amit Singh",
		Rating:     5,
		Comment:    "Amazing experience! The family was so welcoming and the food was incredible.",
		CreatedAt:  "2024-03-01",
	},
	{
		ID:         "2",
		HomestayID: "1",
		UserName:   "Kavya Nair",
		Rating:     4,
		Comment:    "Beautiful location and authentic rural experience. Highly recommended!",
		CreatedAt:  "2024-03-05",
	},
}

var catalog = []models.Homestay{
	{
		ID:          "1",
		HostID:      "1",
		Title:       "Green Valley Homestay",
		Description: "Experience authentic village life surrounded by lush green hills and coffee plantations. Wake up to the sounds of nature and enjoy traditional home-cooked meals with our family.",
		Location:    models.Location{Village: "Madikeri", District: "Kodagu", State: "Karnataka"},
		Amenities:   []string{"WiFi", "Home-cooked meals", "Nature walks", "Coffee plantation tour", "Traditional activities"},
		PerNight:    2500,
		Currency:    "INR",
		MaxGuests:   4,
		Rooms:       2,
		Rating:      4.8,
		Reviews:     catalogReviews,
	},
	{
		ID:          "2",
		HostID:      "2",
		Title:       "Backwater Bliss Homestay",
		Description: "Discover the serene beauty of Kerala backwaters in our traditional homestay. Enjoy canoe rides, fishing, and authentic Kerala cuisine prepared by our family.",
		Location:    models.Location{Village: "Kummakonam", District: "Kottayam", State: "Kerala"},
		Amenities:   []string{"Canoe rides", "Fishing", "Kerala cuisine", "Village walks", "Ayurvedic treatments"},
		PerNight:    3000,
		Currency:    "INR",
		MaxGuests:   6,
		Rooms:       3,
		Rating:      4.9,
	},
	{
		ID:          "3",
		HostID:      "3",
		Title:       "Himalayan Heights Homestay",
		Description: "Escape to the tranquil Himalayan foothills and experience mountain village life. Perfect for trekking enthusiasts and nature lovers seeking peace.",
		Location:    models.Location{Village: "Nainital", District: "Nainital", State: "Uttarakhand"},
		Amenities:   []string{"Trekking guides", "Mountain views", "Organic farming", "Meditation sessions", "Local handicrafts"},
		PerNight:    2000,
		Currency:    "INR",
		MaxGuests:   4,
		Rooms:       2,
		Rating:      4.7,
	},
	{
		ID:          "4",
		HostID:      "1",
		Title:       "Desert Oasis Homestay",
		Description: "Experience the magic of Rajasthan desert in our traditional haveli. Enjoy camel rides, folk music, and authentic Rajasthani hospitality.",
		Location:    models.Location{Village: "Khuri", District: "Jaisalmer", State: "Rajasthan"},
		Amenities:   []string{"Camel rides", "Folk music", "Desert safari", "Traditional crafts", "Rajasthani cuisine"},
		PerNight:    3500,
		Currency:    "INR",
		MaxGuests:   8,
		Rooms:       4,
		Rating:      4.6,
	},
	{
		ID:          "5",
		HostID:      "2",
		Title:       "Tribal Heritage Homestay",
		Description: "Immerse yourself in tribal culture and traditions in the heart of Odisha. Learn about indigenous crafts, participate in tribal dances, and enjoy organic tribal cuisine.",
		Location:    models.Location{Village: "Rayagada", District: "Rayagada", State: "Odisha"},
		Amenities:   []string{"Tribal dance workshops", "Handicraft learning", "Organic farming", "Forest walks", "Traditional healing"},
		PerNight:    1800,
		Currency:    "INR",
		MaxGuests:   6,
		Rooms:       3,
		Rating:      4.5,
	},
	{
		ID:          "6",
		HostID:      "3",
		Title:       "Spice Garden Homestay",
		Description: "Discover the aromatic world of Indian spices in our family-run spice plantation. Learn about spice cultivation, enjoy spice-infused meals, and take home fresh spices.",
		Location:    models.Location{Village: "Thekkady", District: "Idukki", State: "Kerala"},
		Amenities:   []string{"Spice plantation tours", "Cooking classes", "Wildlife spotting", "Boat rides", "Ayurvedic spa"},
		PerNight:    2800,
		Currency:    "INR",
		MaxGuests:   5,
		Rooms:       2,
		Rating:      4.7,
	},
}
