package memory

import "github.com/amanabooks/storefront/internal/domain"

// seedBooks returns the static default catalog. Rating and reviewCount
// are intentionally left zero here; NewSeededStore derives them from the
// seed reviews.
func seedBooks() []domain.Book {
	return []domain.Book{
		{
			ID:            "1",
			Title:         "The Celestial Voyage",
			Author:        "Amara Idris",
			Description:   "A healer guides a pilgrim fleet through hidden wormholes, balancing tradition with dazzling new technology.",
			Price:         21.95,
			Image:         "/images/books/celestial-voyage.jpg",
			ISBN:          "9780000000001",
			Genre:         []string{"Science Fiction", "Adventure"},
			Tags:          []string{"space", "faith", "journey"},
			DatePublished: "2023-02-14",
			Pages:         384,
			Language:      "English",
			Publisher:     "Amana Press",
			InStock:       true,
			Featured:      true,
		},
		{
			ID:            "2",
			Title:         "Echoes in the Minaret",
			Author:        "Yusif Al-Karim",
			Description:   "A historical mystery set across centuries in a bustling desert metropolis, told through intersecting family stories.",
			Price:         18.5,
			Image:         "/images/books/echoes-minaret.jpg",
			ISBN:          "9780000000002",
			Genre:         []string{"Historical Fiction", "Mystery"},
			Tags:          []string{"family", "heritage", "city-life"},
			DatePublished: "2022-08-09",
			Pages:         416,
			Language:      "English",
			Publisher:     "Golden Lantern Books",
			InStock:       true,
			Featured:      false,
		},
		{
			ID:            "3",
			Title:         "The Algorithm of Mercy",
			Author:        "Sahar Malik",
			Description:   "A visionary engineer trains an empathetic AI to aid refugees, only to confront her own past in the process.",
			Price:         24.0,
			Image:         "/images/books/algorithm-mercy.jpg",
			ISBN:          "9780000000003",
			Genre:         []string{"Science Fiction", "Drama"},
			Tags:          []string{"ai", "refugees", "ethics"},
			DatePublished: "2024-04-02",
			Pages:         352,
			Language:      "English",
			Publisher:     "North Star Press",
			InStock:       true,
			Featured:      true,
		},
		{
			ID:            "4",
			Title:         "Gardeners of the Dunes",
			Author:        "Laila Bennani",
			Description:   "A community of elders heals their town with a living archive of seeds, songs, and stories.",
			Price:         17.75,
			Image:         "/images/books/gardeners-dunes.jpg",
			ISBN:          "9780000000004",
			Genre:         []string{"Literary Fiction"},
			Tags:          []string{"community", "healing", "environment"},
			DatePublished: "2021-05-18",
			Pages:         298,
			Language:      "English",
			Publisher:     "Saffron House",
			InStock:       false,
			Featured:      false,
		},
		{
			ID:            "5",
			Title:         "Markets at Dawn",
			Author:        "Bilqis Rahman",
			Description:   "Part travelogue, part cookbook: wander through legendary souks and the stories of the families who run them.",
			Price:         29.5,
			Image:         "/images/books/markets-dawn.jpg",
			ISBN:          "9780000000005",
			Genre:         []string{"Non-fiction", "Travel"},
			Tags:          []string{"food", "culture", "memoir"},
			DatePublished: "2023-09-12",
			Pages:         256,
			Language:      "English",
			Publisher:     "Spice Route Media",
			InStock:       true,
			Featured:      true,
		},
		{
			ID:            "6",
			Title:         "The Starlit Caravan",
			Author:        "Rahim Odeh",
			Description:   "A troupe of traveling poets crosses the desert under constellations, weaving festivals in every oasis.",
			Price:         19.25,
			Image:         "/images/books/starlit-caravan.jpg",
			ISBN:          "9780000000006",
			Genre:         []string{"Fantasy", "Adventure"},
			Tags:          []string{"poetry", "journey", "culture"},
			DatePublished: "2020-11-03",
			Pages:         340,
			Language:      "English",
			Publisher:     "Moonstone Editions",
			InStock:       true,
			Featured:      false,
		},
		{
			ID:            "7",
			Title:         "Fragments of Light",
			Author:        "Iman Darzi",
			Description:   "A multigenerational saga told through letters discovered in an old ceramic workshop.",
			Price:         22.75,
			Image:         "/images/books/fragments-light.jpg",
			ISBN:          "9780000000007",
			Genre:         []string{"Literary Fiction", "Family"},
			Tags:          []string{"letters", "legacy", "identity"},
			DatePublished: "2024-01-05",
			Pages:         388,
			Language:      "English",
			Publisher:     "Amana Press",
			InStock:       true,
			Featured:      true,
		},
		{
			ID:            "8",
			Title:         "Letters from the Oasis",
			Author:        "Noura Jalil",
			Description:   "A contemplative novella about two strangers who exchange letters during the rebuilding of a remote oasis.",
			Price:         15.0,
			Image:         "/images/books/letters-oasis.jpg",
			ISBN:          "9780000000008",
			Genre:         []string{"Novella", "Romance"},
			Tags:          []string{"letters", "oasis", "renewal"},
			DatePublished: "2019-06-27",
			Pages:         192,
			Language:      "English",
			Publisher:     "Azure Lantern",
			InStock:       true,
			Featured:      false,
		},
	}
}

// seedReviews returns the static default reviews, two per seed book.
func seedReviews() []domain.Review {
	return []domain.Review{
		{ID: "review-1a", BookID: "1", Author: "Layla S.", Rating: 5, Title: "Inspiring and thoughtful", Comment: "A gorgeous blend of faith, science, and courage. I could not put it down.", Timestamp: "2024-01-12T10:15:00.000Z", Verified: true},
		{ID: "review-1b", BookID: "1", Author: "Noah F.", Rating: 4, Title: "Epic scope", Comment: "Some slower chapters, but the world-building is phenomenal.", Timestamp: "2024-03-01T18:42:00.000Z", Verified: false},
		{ID: "review-2a", BookID: "2", Author: "Samira K.", Rating: 5, Title: "Rich with history", Comment: "Vivid storytelling that makes the city feel alive. Highly recommended.", Timestamp: "2023-12-04T08:20:00.000Z", Verified: true},
		{ID: "review-2b", BookID: "2", Author: "Hassan M.", Rating: 4, Title: "Beautiful prose", Comment: "A lyrical narrative with only a few pacing issues in the middle acts.", Timestamp: "2024-02-17T16:05:00.000Z", Verified: false},
		{ID: "review-3a", BookID: "3", Author: "Maryam Q.", Rating: 4, Title: "Deeply human sci-fi", Comment: "Balances algorithms with heart. The ending left me hopeful.", Timestamp: "2024-04-10T13:10:00.000Z", Verified: true},
		{ID: "review-3b", BookID: "3", Author: "Jonas P.", Rating: 5, Title: "Could not stop reading", Comment: "Characters that stay with you long after the final page.", Timestamp: "2024-06-02T19:32:00.000Z", Verified: true},
		{ID: "review-4a", BookID: "4", Author: "Ameenah R.", Rating: 4, Title: "Comforting and warm", Comment: "Makes you want to start a garden and invite the neighborhood.", Timestamp: "2023-11-21T11:45:00.000Z", Verified: false},
		{ID: "review-4b", BookID: "4", Author: "Bilal T.", Rating: 3, Title: "Slow but charming", Comment: "A gentle pace, but the characters are worth the patience.", Timestamp: "2024-01-08T07:58:00.000Z", Verified: true},
		{ID: "review-5a", BookID: "5", Author: "Imani J.", Rating: 5, Title: "Bursting with flavor", Comment: "The recipes and anecdotes combine into something unforgettable.", Timestamp: "2024-02-26T20:22:00.000Z", Verified: true},
		{ID: "review-5b", BookID: "5", Author: "Rashid A.", Rating: 4, Title: "A sensory journey", Comment: "You can practically smell the spices. Loved the market lore.", Timestamp: "2024-05-04T09:14:00.000Z", Verified: false},
		{ID: "review-6a", BookID: "6", Author: "Farah D.", Rating: 4, Title: "Magical evenings", Comment: "The pace mirrors a caravan: unhurried but steady. Worth the ride.", Timestamp: "2023-10-19T17:25:00.000Z", Verified: true},
		{ID: "review-6b", BookID: "6", Author: "Yusuf N.", Rating: 5, Title: "Poetic and bold", Comment: "A luminous meditation on community and shared starlight.", Timestamp: "2024-01-30T21:48:00.000Z", Verified: true},
		{ID: "review-7a", BookID: "7", Author: "Nadia H.", Rating: 5, Title: "Letters that heal", Comment: "Every chapter feels like a gentle conversation with an old friend.", Timestamp: "2024-03-19T12:05:00.000Z", Verified: false},
		{ID: "review-7b", BookID: "7", Author: "Omar E.", Rating: 5, Title: "Profound and intimate", Comment: "Tender reflections on memory, family, and reconciliation.", Timestamp: "2024-04-25T15:41:00.000Z", Verified: true},
		{ID: "review-8a", BookID: "8", Author: "Karima W.", Rating: 4, Title: "Quietly powerful", Comment: "A gentle story that lingers like the last moments of dawn.", Timestamp: "2024-02-02T06:33:00.000Z", Verified: true},
		{ID: "review-8b", BookID: "8", Author: "Idris L.", Rating: 4, Title: "Hopeful and wise", Comment: "The characters feel real, and their growth is believable.", Timestamp: "2024-05-27T22:12:00.000Z", Verified: false},
	}
}
