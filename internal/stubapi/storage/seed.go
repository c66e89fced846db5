package storage

import "github.com/bookbuddy/library-client/internal/model"

var seedBooks = []model.Book{
	{
		ID:          "1",
		Title:       "Dune",
		Author:      "Frank Herbert",
		Description: "A noble family becomes embroiled in a war for control over the galaxy's most valuable asset.",
		CoverImage:  "https://covers.openlibrary.org/b/id/8101356-L.jpg",
		Available:   true,
	},
	{
		ID:          "2",
		Title:       "Neuromancer",
		Author:      "William Gibson",
		Description: "A washed-up computer hacker is hired for one last job against a powerful artificial intelligence.",
		CoverImage:  "https://covers.openlibrary.org/b/id/11153217-L.jpg",
		Available:   true,
	},
	{
		ID:          "3",
		Title:       "The Left Hand of Darkness",
		Author:      "Ursula K. Le Guin",
		Description: "An envoy to a wintry planet must bridge a gulf of culture and biology to complete his mission.",
		Available:   true,
	},
	{
		ID:          "4",
		Title:       "Hyperion",
		Author:      "Dan Simmons",
		Description: "Seven pilgrims travel to the Time Tombs, each carrying a tale and a secret.",
		CoverImage:  "https://covers.openlibrary.org/b/id/9256191-L.jpg",
		Available:   false,
	},
}
