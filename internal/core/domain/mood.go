package domain

// Mood is one of the fixed mood categories.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodRelaxed     Mood = "relaxed"
	MoodAdventurous Mood = "adventurous"
)

// moodDestinations maps each mood category to suggested destinations. The
// table is static configuration, loaded once and never mutated.
var moodDestinations = map[Mood][]string{
	MoodHappy: {
		"Goa, India", "Disneyland, USA", "Paris, France", "Bali, Indonesia",
		"Barcelona, Spain", "Sydney, Australia", "Rio de Janeiro, Brazil",
		"Las Vegas, USA", "Amsterdam, Netherlands", "Bangkok, Thailand",
		"Stuttgart, Germany", "Berlin, Germany",
	},
	MoodRelaxed: {
		"Kerala Backwaters, India", "Maldives", "Santorini, Greece",
		"Kyoto, Japan", "Lake Como, Italy", "Bora Bora, French Polynesia",
		"Maui, Hawaii", "Asheville, USA", "Hallstatt, Austria", "Phuket, Thailand",
	},
	MoodAdventurous: {
		"Rishikesh, India", "Machu Picchu, Peru", "Mount Everest, Nepal",
		"Patagonia, Chile", "Grand Canyon, USA", "Banff, Canada",
		"Queenstown, New Zealand", "Alaska, USA", "Mount Kilimanjaro, Tanzania",
		"Iceland",
	},
	"romantic": {
		"Paris, France", "Venice, Italy", "Kyoto, Japan",
		"Amalfi Coast, Italy", "Santorini, Greece", "Prague, Czech Republic",
		"Bora Bora, French Polynesia", "Charleston, South Carolina, USA",
	},
	"curious": {
		"Tokyo, Japan", "Istanbul, Turkey", "Cairo, Egypt",
		"Marrakech, Morocco", "Mexico City, Mexico", "Jerusalem, Israel",
		"Berlin, Germany", "Cusco, Peru",
	},
	"energetic": {
		"Las Vegas, USA", "Ibiza, Spain", "Berlin, Germany",
		"Miami, USA", "Singapore", "Seoul, South Korea",
		"Hong Kong", "New York City, USA",
	},
	"peaceful": {
		"Kyoto, Japan", "Norwegian Fjords, Norway", "Lake District, UK",
		"Banff, Canada", "Ubud, Bali, Indonesia", "Kauai, Hawaii, USA",
		"Luang Prabang, Laos", "Hallstatt, Austria",
	},
	"creative": {
		"Berlin, Germany", "Portland, Oregon, USA", "Barcelona, Spain",
		"Melbourne, Australia", "Copenhagen, Denmark", "Austin, Texas, USA",
		"Kyoto, Japan", "Mexico City, Mexico",
	},
	"cultural": {
		"Rome, Italy", "Kyoto, Japan", "Istanbul, Turkey",
		"Varanasi, India", "Florence, Italy", "Fez, Morocco",
		"Jaipur, India", "Cusco, Peru",
	},
	"reflective": {
		"Scottish Highlands, UK", "Sedona, Arizona, USA", "Big Sur, California, USA",
		"Norwegian Fjords, Norway", "Camino de Santiago, Spain",
		"Varanasi, India", "Bagan, Myanmar", "Joshua Tree, California, USA",
	},
	"stressed": {
		"Bali, Indonesia", "Sedona, Arizona, USA", "Costa Rica",
		"Koh Samui, Thailand", "Amalfi Coast, Italy", "Blue Lagoon, Iceland",
		"Tulum, Mexico", "Hawaii, USA",
	},
	"excited": {
		"Tokyo, Japan", "New York City, USA", "Las Vegas, USA",
		"Dubai, UAE", "London, UK", "Orlando, Florida, USA",
		"Barcelona, Spain", "Hong Kong",
	},
	"spiritual": {
		"Bali, Indonesia", "Varanasi, India", "Camino de Santiago, Spain",
		"Kyoto, Japan", "Sedona, Arizona, USA", "Angkor Wat, Cambodia",
		"Kathmandu, Nepal", "Rishikesh, India",
	},
	"nostalgic": {
		"Havana, Cuba", "New Orleans, USA", "Lisbon, Portugal",
		"Kyoto, Japan", "Rome, Italy", "Charleston, South Carolina, USA",
		"Venice, Italy", "Vienna, Austria",
	},
	"luxurious": {
		"Monaco", "Dubai, UAE", "Santorini, Greece", "Maldives",
		"French Riviera, France", "Amalfi Coast, Italy",
		"Bora Bora, French Polynesia", "St. Moritz, Switzerland",
	},
}

// KnownMood reports whether key is a configured mood category. Callers pass
// a trimmed, lowercased key.
func KnownMood(key string) bool {
	_, ok := moodDestinations[Mood(key)]
	return ok
}

// DestinationsFor returns the destination list for a mood, or an empty slice
// for a category the table does not know. Missing entries are not an error.
func DestinationsFor(m Mood) []string {
	dests := moodDestinations[m]
	if dests == nil {
		return []string{}
	}
	return dests
}
