package mockapi

import (
	"time"

	"eventhub/internal/models"
)

// seedData returns the demo dataset: two users, ten events and two
// pre-existing registrations.
func seedData() ([]models.User, []models.Event, []models.Registration) {
	users := []models.User{
		{ID: "1", Email: "demo@example.com", Password: "password123", Name: "Demo User"},
		{ID: "2", Email: "john@example.com", Password: "john123", Name: "John Doe"},
	}

	events := []models.Event{
		{
			ID:             "1",
			Name:           "Tech Conference",
			Title:          "Tech Conference 2024",
			Description:    "Join us for the biggest tech conference of the year featuring keynotes from industry leaders, hands-on workshops, and networking opportunities.",
			Date:           "2024-03-15",
			Time:           "09:00 AM",
			Location:       "San Francisco Convention Center",
			Price:          299,
			Capacity:       500,
			AvailableSpots: 450,
			Image:          "https://picsum.photos/400/300?random=1",
			Speakers:       []string{"Dr. Sarah Johnson", "Mark Thompson", "Lisa Chen"},
		},
		{
			ID:             "2",
			Name:           "Music Festival",
			Title:          "Music Festival Summer Vibes",
			Description:    "Experience three days of incredible music performances from top artists around the world. Multiple stages, food vendors, and camping available.",
			Date:           "2024-07-20",
			Time:           "02:00 PM",
			Location:       "Golden Gate Park, San Francisco",
			Price:          150,
			Capacity:       10000,
			AvailableSpots: 9800,
			Image:          "https://picsum.photos/400/300?random=2",
			Speakers:       []string{"Various Artists"},
		},
		{
			ID:             "3",
			Name:           "Startup Pitch Night",
			Title:          "Startup Pitch Night",
			Description:    "Watch innovative startups pitch their ideas to top investors. Great networking opportunity for entrepreneurs and investors alike.",
			Date:           "2024-04-10",
			Time:           "06:00 PM",
			Location:       "Silicon Valley Innovation Hub",
			Price:          50,
			Capacity:       200,
			AvailableSpots: 180,
			Image:          "https://picsum.photos/400/300?random=3",
			Speakers:       []string{"John Davis", "Emily Rodriguez"},
		},
		{
			ID:             "4",
			Name:           "Yoga Retreat",
			Title:          "Yoga & Wellness Retreat",
			Description:    "Rejuvenate your mind and body with daily yoga sessions, meditation workshops, healthy meals, and spa treatments in a peaceful mountain setting.",
			Date:           "2024-05-05",
			Time:           "07:00 AM",
			Location:       "Mountain View Retreat Center",
			Price:          450,
			Capacity:       50,
			AvailableSpots: 35,
			Image:          "https://picsum.photos/400/300?random=4",
			Speakers:       []string{"Yoga Master Priya", "Wellness Coach Mike"},
		},
		{
			ID:             "5",
			Name:           "Wine Tasting",
			Title:          "Food & Wine Tasting",
			Description:    "Sample exquisite wines paired with gourmet dishes prepared by celebrity chefs. Learn about wine regions and tasting techniques.",
			Date:           "2024-06-12",
			Time:           "05:00 PM",
			Location:       "Napa Valley Winery",
			Price:          125,
			Capacity:       100,
			AvailableSpots: 75,
			Image:          "https://picsum.photos/400/300?random=5",
			Speakers:       []string{"Chef Gordon", "Sommelier Maria"},
		},
		{
			ID:             "6",
			Name:           "Marketing Summit",
			Title:          "Digital Marketing Summit",
			Description:    "Learn the latest digital marketing strategies, SEO techniques, and social media trends from industry experts.",
			Date:           "2024-04-25",
			Time:           "09:00 AM",
			Location:       "Downtown Conference Center",
			Price:          199,
			Capacity:       300,
			AvailableSpots: 250,
			Image:          "https://picsum.photos/400/300?random=6",
			Speakers:       []string{"Marketing Pro Alex", "SEO Expert Rachel"},
		},
		{
			ID:             "7",
			Name:           "Art Exhibition",
			Title:          "Art Exhibition Opening",
			Description:    "Exclusive opening night for our contemporary art exhibition featuring works from emerging and established artists.",
			Date:           "2024-03-28",
			Time:           "07:00 PM",
			Location:       "Modern Art Gallery",
			Price:          0,
			Capacity:       150,
			AvailableSpots: 120,
			Image:          "https://picsum.photos/400/300?random=7",
			Speakers:       []string{"Curator James", "Artist Showcase"},
		},
		{
			ID:             "8",
			Name:           "Charity Marathon",
			Title:          "Marathon Run for Charity",
			Description:    "Participate in our annual charity marathon. All proceeds go to local children's hospitals. Full and half marathon options available.",
			Date:           "2024-09-10",
			Time:           "06:00 AM",
			Location:       "City Central Park",
			Price:          40,
			Capacity:       5000,
			AvailableSpots: 4500,
			Image:          "https://picsum.photos/400/300?random=8",
			Speakers:       []string{"Coach Tony", "Medical Team"},
		},
		{
			ID:             "9",
			Name:           "Coding Bootcamp",
			Title:          "Coding Bootcamp Workshop",
			Description:    "Intensive 2-day workshop covering modern mobile app development. Includes hands-on projects and mentorship.",
			Date:           "2024-05-18",
			Time:           "09:00 AM",
			Location:       "Tech Learning Center",
			Price:          350,
			Capacity:       30,
			AvailableSpots: 15,
			Image:          "https://picsum.photos/400/300?random=9",
			Speakers:       []string{"Developer Pro Sam", "Tech Lead Jessica"},
		},
		{
			ID:             "10",
			Name:           "Jazz Night",
			Title:          "Jazz Night Live",
			Description:    "An intimate evening of smooth jazz performances by acclaimed musicians. Enjoy craft cocktails and light bites.",
			Date:           "2024-04-05",
			Time:           "08:00 PM",
			Location:       "The Blue Note Jazz Club",
			Price:          45,
			Capacity:       80,
			AvailableSpots: 60,
			Image:          "https://picsum.photos/400/300?random=10",
			Speakers:       []string{"Jazz Band Quartet"},
		},
	}

	registrations := []models.Registration{
		{
			ID:           "1",
			UserID:       "1",
			EventID:      "1",
			RegisteredAt: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "2",
			UserID:       "1",
			EventID:      "3",
			RegisteredAt: time.Date(2024, 2, 10, 14, 30, 0, 0, time.UTC),
		},
	}

	return users, events, registrations
}
