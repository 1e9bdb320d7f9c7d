package repository

import "staybook/internal/domains/property/model"

// propertyListingSample is the static catalog seeded at process start.
// Entries without an id get one assigned from their seed position.
var propertyListingSample = []model.Property{
	{
		Name: "Villa Ocean Breeze",
		Address: model.Address{
			City:    "Seminyak",
			State:   "Bali",
			Country: "Indonesia",
		},
		Rating:   4.89,
		Category: []string{"Luxury Villa", "Pool", "Free Parking"},
		Price:    320,
		Offers: model.Offers{
			Bed:       "3",
			Shower:    "3",
			Occupants: "4-6",
		},
		Image:    "/images/villa-ocean-breeze.jpg",
		Discount: "",
	},
	{
		Name: "Mountain Escape Chalet",
		Address: model.Address{
			City:    "Aspen",
			State:   "Colorado",
			Country: "USA",
		},
		Rating:   4.7,
		Category: []string{"Mountain View", "Fireplace", "Self Checkin"},
		Price:    180,
		Offers: model.Offers{
			Bed:       "4",
			Shower:    "2",
			Occupants: "5-7",
		},
		Image:    "/images/mountain-escape-chalet.jpg",
		Discount: "30",
	},
	{
		Name: "Cozy Desert Retreat",
		Address: model.Address{
			City:    "Palm Springs",
			State:   "California",
			Country: "USA",
		},
		Rating:   4.92,
		Category: []string{"Desert View", "Pet Friendly", "Pool"},
		Price:    150,
		Offers: model.Offers{
			Bed:       "2",
			Shower:    "1",
			Occupants: "2-3",
		},
		Image:    "/images/cozy-desert-retreat.jpg",
		Discount: "",
	},
	{
		Name: "City Lights Penthouse",
		Address: model.Address{
			City:    "New York",
			State:   "New York",
			Country: "USA",
		},
		Rating:   4.85,
		Category: []string{"City View", "Luxury", "Elevator"},
		Price:    550,
		Offers: model.Offers{
			Bed:       "2",
			Shower:    "2",
			Occupants: "2-4",
		},
		Image:    "/images/city-lights-penthouse.jpg",
		Discount: "15",
	},
	{
		Name: "Riverside Cabin",
		Address: model.Address{
			City:    "Queenstown",
			State:   "Otago",
			Country: "New Zealand",
		},
		Rating:   4.77,
		Category: []string{"Riverside", "Fireplace", "Self Checkin"},
		Price:    120,
		Offers: model.Offers{
			Bed:       "3",
			Shower:    "2",
			Occupants: "4-5",
		},
		Image:    "/images/riverside-cabin.jpg",
		Discount: "20",
	},
	{
		Name: "Historic Castle Suite",
		Address: model.Address{
			City:    "Edinburgh",
			State:   "Scotland",
			Country: "UK",
		},
		Rating:   4.95,
		Category: []string{"Historic", "Luxury", "Castle View"},
		Price:    400,
		Offers: model.Offers{
			Bed:       "1",
			Shower:    "1",
			Occupants: "2",
		},
		Image:    "/images/historic-castle-suite.jpg",
		Discount: "",
	},
	{
		Name: "Beachfront Bungalow",
		Address: model.Address{
			City:    "Tulum",
			State:   "Quintana Roo",
			Country: "Mexico",
		},
		Rating:   4.6,
		Category: []string{"Beachfront", "Pet Friendly", "Free WiFi"},
		Price:    95,
		Offers: model.Offers{
			Bed:       "1",
			Shower:    "1",
			Occupants: "2",
		},
		Image:    "/images/beachfront-bungalow.jpg",
		Discount: "10",
	},
	{
		Name: "Lakeside Cottage",
		Address: model.Address{
			City:    "Hallstatt",
			State:   "Upper Austria",
			Country: "Austria",
		},
		Rating:   4.81,
		Category: []string{"Lakeside", "Mountain View", "Fireplace"},
		Price:    175,
		Offers: model.Offers{
			Bed:       "2",
			Shower:    "1",
			Occupants: "2-4",
		},
		Image:    "/images/lakeside-cottage.jpg",
		Discount: "",
	},
	{
		Name: "Urban Loft Downtown",
		Address: model.Address{
			City:    "Toronto",
			State:   "Ontario",
			Country: "Canada",
		},
		Rating:   4.55,
		Category: []string{"City View", "Self Checkin", "Free WiFi"},
		Price:    110,
		Offers: model.Offers{
			Bed:       "1",
			Shower:    "1",
			Occupants: "1-2",
		},
		Image:    "/images/urban-loft-downtown.jpg",
		Discount: "",
	},
	{
		Name: "Safari Lodge Tent",
		Address: model.Address{
			City:    "Maasai Mara",
			State:   "Narok",
			Country: "Kenya",
		},
		Rating:   4.9,
		Category: []string{"Safari", "All Inclusive", "Guided Tours"},
		Price:    450,
		Offers: model.Offers{
			Bed:       "2",
			Shower:    "1",
			Occupants: "2-3",
		},
		Image:    "/images/safari-lodge-tent.jpg",
		Discount: "25",
	},
}
