package identity

// colors and animals are this service's own color and animal wordlists,
// modelled on the "colors" and "animals" dictionaries of the
// unique-names-generator npm package but not a verbatim copy of them, so
// names derived here do not match that package's output. Order matters because display names
// are indexed into these slices by a seeded PRNG (see name.go) and must stay
// stable across releases for reconnecting peers to keep their name.
var colors = []string{
	"Almond", "Amaranth", "Amber", "Amethyst", "Apricot", "Aqua", "Asparagus",
	"Auburn", "Azure", "Beige", "Bistre", "Black", "Blue", "BlueGray",
	"BlueGreen", "Blush", "Bronze", "Brown", "Burgundy", "Byzantium",
	"Camouflage", "Caramel", "Carmine", "Catawba", "Champagne", "Charcoal",
	"Chartreuse", "Chestnut", "Chocolate", "Cinnamon", "Cobalt", "Copper",
	"Coral", "Crimson", "Cyan", "Denim", "Desert", "Ecru", "Eggplant",
	"Emerald", "Firebrick", "Flax", "Fuchsia", "Gainsboro", "Gold", "Gray",
	"Green", "Grey", "Harlequin", "Heliotrope", "Indigo", "Ivory", "Jade",
	"Jasmine", "Jungle", "Khaki", "Lavender", "Lemon", "Lilac", "Lime",
	"Magenta", "Mahogany", "Maroon", "Mauve", "Moccasin", "Mustard", "Ochre",
	"Olive", "Onyx", "Orange", "Orchid", "Peach", "Pear", "Periwinkle",
	"Persimmon", "Pink", "Platinum", "Plum", "Puce", "Pumpkin", "Purple",
	"Raspberry", "Red", "Rose", "Ruby", "Rust", "Saffron", "Salmon", "Sand",
	"Sangria", "Sapphire", "Scarlet", "Seashell", "Sepia", "Sienna", "Silver",
	"Tan", "Taupe", "Teal", "Turquoise", "Ultramarine", "Vermilion", "Violet",
	"Viridian", "Wheat", "White", "Yellow", "Zaffre",
}

var animals = []string{
	"Albatross", "Alligator", "Alpaca", "Anaconda", "Ant", "Anteater",
	"Antelope", "Ape", "Armadillo", "Baboon", "Badger", "Barracuda", "Bat",
	"Bear", "Beaver", "Bee", "Bison", "Boar", "Buffalo", "Butterfly", "Camel",
	"Capybara", "Caribou", "Cassowary", "Cat", "Caterpillar", "Cheetah",
	"Chicken", "Chimpanzee", "Chinchilla", "Chough", "Clam", "Cobra", "Cod",
	"Cormorant", "Coyote", "Crab", "Crane", "Crocodile", "Crow", "Curlew",
	"Deer", "Dinosaur", "Dog", "Dogfish", "Dolphin", "Donkey", "Dotterel",
	"Dove", "Dragonfly", "Duck", "Dugong", "Dunlin", "Eagle", "Echidna",
	"Eel", "Eland", "Elephant", "Elk", "Emu", "Falcon", "Ferret", "Finch",
	"Fish", "Flamingo", "Fly", "Fox", "Frog", "Gaur", "Gazelle", "Gerbil",
	"Giraffe", "Gnat", "Gnu", "Goat", "Goldfinch", "Goldfish", "Goose",
	"Gorilla", "Goshawk", "Grasshopper", "Grouse", "Guanaco", "Gull",
	"Hamster", "Hare", "Hawk", "Hedgehog", "Heron", "Herring", "Hippo",
	"Hornet", "Horse", "Hummingbird", "Hyena", "Ibex", "Ibis", "Iguana",
	"Jackal", "Jaguar", "Jay", "Jellyfish", "Kangaroo", "Kingfisher", "Koala",
	"Kookaburra", "Kudu", "Lapwing", "Lark", "Lemur", "Leopard", "Lion",
	"Llama", "Lobster", "Locust", "Loris", "Louse", "Lynx", "Lyrebird",
	"Magpie", "Mallard", "Manatee", "Mandrill", "Mantis", "Marten", "Meerkat",
	"Mink", "Mole", "Mongoose", "Monkey", "Moose", "Mosquito", "Mouse",
	"Mule", "Narwhal", "Newt", "Nightingale", "Ocelot", "Octopus", "Okapi",
	"Opossum", "Oryx", "Ostrich", "Otter", "Owl", "Ox", "Oyster", "Panther",
	"Parrot", "Partridge", "Peafowl", "Pelican", "Penguin", "Pheasant",
	"Pig", "Pigeon", "Pony", "Porcupine", "Porpoise", "Quail", "Quelea",
	"Rabbit", "Raccoon", "Rail", "Ram", "Rat", "Raven", "Reindeer",
	"Rhinoceros", "Rook", "Salamander", "Salmon", "Sandpiper", "Sardine",
	"Scorpion", "Seahorse", "Seal", "Shark", "Sheep", "Shrew", "Skunk",
	"Snail", "Snake", "Spider", "Squid", "Squirrel", "Starling", "Stoat",
	"Stork", "Swallow", "Swan", "Tapir", "Tarsier", "Termite", "Tiger",
	"Toad", "Trout", "Tuna", "Turkey", "Turtle", "Vicuna", "Viper", "Vulture",
	"Wallaby", "Walrus", "Wasp", "Weasel", "Whale", "Wolf", "Wolverine",
	"Wombat", "Woodpecker", "Worm", "Wren", "Yak", "Zebra",
}
