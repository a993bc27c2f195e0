package media

// genericFallback guarantees every product renders with a hero image even
// when the row and every pool come up empty.
const genericFallback = "https://img.travelcatalog.example/generic/tour-hero.jpg"

// destinationPool substitutes images by destination, keyed lowercase.
var destinationPool = map[string][]string{
	"tokyo": {
		"https://img.travelcatalog.example/dest/tokyo-shibuya.jpg",
		"https://img.travelcatalog.example/dest/tokyo-sensoji.jpg",
		"https://img.travelcatalog.example/dest/tokyo-skyline.jpg",
	},
	"kyoto": {
		"https://img.travelcatalog.example/dest/kyoto-fushimi.jpg",
		"https://img.travelcatalog.example/dest/kyoto-arashiyama.jpg",
	},
	"paris": {
		"https://img.travelcatalog.example/dest/paris-eiffel.jpg",
		"https://img.travelcatalog.example/dest/paris-louvre.jpg",
		"https://img.travelcatalog.example/dest/paris-seine.jpg",
	},
	"rome": {
		"https://img.travelcatalog.example/dest/rome-colosseum.jpg",
		"https://img.travelcatalog.example/dest/rome-trevi.jpg",
	},
	"sydney": {
		"https://img.travelcatalog.example/dest/sydney-opera.jpg",
		"https://img.travelcatalog.example/dest/sydney-harbour.jpg",
	},
	"bangkok": {
		"https://img.travelcatalog.example/dest/bangkok-wat-arun.jpg",
		"https://img.travelcatalog.example/dest/bangkok-floating-market.jpg",
	},
	"new york": {
		"https://img.travelcatalog.example/dest/nyc-manhattan.jpg",
		"https://img.travelcatalog.example/dest/nyc-brooklyn-bridge.jpg",
	},
}

// categoryPool substitutes images by category, keyed lowercase; consulted
// after the destination pool.
var categoryPool = map[string][]string{
	"food & drink": {
		"https://img.travelcatalog.example/cat/food-market.jpg",
		"https://img.travelcatalog.example/cat/food-tasting.jpg",
	},
	"adventure": {
		"https://img.travelcatalog.example/cat/adventure-rafting.jpg",
		"https://img.travelcatalog.example/cat/adventure-hiking.jpg",
	},
	"culture": {
		"https://img.travelcatalog.example/cat/culture-temple.jpg",
		"https://img.travelcatalog.example/cat/culture-museum.jpg",
	},
	"nature": {
		"https://img.travelcatalog.example/cat/nature-waterfall.jpg",
		"https://img.travelcatalog.example/cat/nature-forest.jpg",
	},
	"cruise": {
		"https://img.travelcatalog.example/cat/cruise-sunset.jpg",
	},
	"wildlife": {
		"https://img.travelcatalog.example/cat/wildlife-safari.jpg",
	},
}
