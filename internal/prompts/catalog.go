package prompts

// The built-in catalog. Decoy texts must never equal the canonical prompt of
// their own category, or impostors become indistinguishable by data alone.

var defaultCategories = []Category{
	{Name: "Childhood memory", Real: "What's your favorite childhood memory?", Decoys: []string{
		"Tell a fake memory from when you were young.",
		"Describe a scary memory but keep it short.",
		"Name a movie character's childhood event without naming the character.",
	}},
	{Name: "Small joys", Real: "What's a small thing that makes your day better?", Decoys: []string{
		"Invent a small daily habit you pretend to have.",
		"Describe a strange ritual that seems believable.",
		"Say a common morning habit as if it's unusual.",
	}},
	{Name: "Best meal", Real: "What's the best meal you've ever had and why?", Decoys: []string{
		"Invent a fancy meal you never had.",
		"Describe an awful meal as if it was great.",
		"Mention a famous chef's dish without naming the chef.",
	}},
	{Name: "Time travel", Real: "If you could time travel, what year would you visit and why?", Decoys: []string{
		"Make up a future date and a vague reason.",
		"Give an era but describe it inaccurately.",
		"Pick a historical figure's lifetime and mix up facts.",
	}},
	{Name: "Late hobby", Real: "What's a hobby you wish you'd started earlier?", Decoys: []string{
		"Claim an unusual hobby to sound impressive.",
		"Name a commonly known hobby but give wrong details.",
		"Say you took up a famous pastime from a celebrity.",
	}},
	{Name: "Life-changing book", Real: "What's a book that changed how you see the world?", Decoys: []string{
		"Mention a book you think sounds profound but haven't read.",
		"Describe a classic as if it were a modern quick-read.",
		"Name a fictional book from a movie.",
	}},
	{Name: "Everyday superpower", Real: "What's a superpower you'd actually use in daily life?", Decoys: []string{
		"Invent a useless superpower that sounds clever.",
		"Pick a dramatic power and underplay its benefits.",
		"Choose a popular comic power and rename it.",
	}},
	{Name: "Misunderstanding", Real: "What's the funniest misunderstanding you've had?", Decoys: []string{
		"Tell a made-up awkward situation that seems plausible.",
		"Use a celebrity name in a mix-up you never had.",
		"Describe a misheard lyric as a personal story.",
	}},
	{Name: "Best advice", Real: "What's the best piece of advice you ever received?", Decoys: []string{
		"Quote a proverb incorrectly and claim it's advice.",
		"Make up advice from an imagined mentor.",
		"Repeat a cliché as if it's life-changing.",
	}},
	{Name: "Surprising place", Real: "What's a place that surprised you in a good way?", Decoys: []string{
		"Claim you loved a tourist trap you never visited.",
		"Describe an unexpected quiet spot in a well-known city.",
		"Say you found a secret spot in a famous landmark.",
	}},
	{Name: "Local restaurant", Real: "What's your favorite local restaurant and what do you order?", Decoys: []string{
		"Invent a dish that sounds authentic.",
		"Claim a famous chef's signature meal as yours.",
		"Describe a fusion dish incorrectly.",
	}},
	{Name: "Childhood game", Real: "What's a childhood game you loved?", Decoys: []string{
		"Invent a regional game you never played.",
		"Describe a board game as if it were live-action.",
		"Mention a made-up rule from a known game.",
	}},
	{Name: "Small purchase", Real: "What's a small purchase that improved your life?", Decoys: []string{
		"Claim a costly gadget as life-changing.",
		"Mention a household item incorrectly.",
		"Say a novelty item in a storylike way.",
	}},
	{Name: "Nostalgic smell", Real: "What's a smell that takes you back to a place?", Decoys: []string{
		"Invent a scent memory that's oddly specific.",
		"Describe a perfume you don't know as nostalgic.",
		"Mention a commercial smell as a childhood trigger.",
	}},
	{Name: "Happy song", Real: "What's a song that always makes you smile?", Decoys: []string{
		"Pick an obscure track and pretend it's a classic.",
		"Mention a movie score as your pop song.",
		"Choose a song but misattribute the singer.",
	}},
	{Name: "Recent learning", Real: "What's something you're proud you learned recently?", Decoys: []string{
		"Claim a complex skill mastered overnight.",
		"Describe a trivial achievement grandly.",
		"Name a widely-known trick as your discovery.",
	}},
	{Name: "Favorite season", Real: "What's your favorite season and why?", Decoys: []string{
		"Pick a season and give odd reasons.",
		"Describe a weather event as typical for another season.",
		"Say you're from a climate that doesn't have that season.",
	}},
	{Name: "Essential food", Real: "What's a food you couldn't live without?", Decoys: []string{
		"Name an exotic ingredient and act picky.",
		"Choose a common snack but describe it like cuisine.",
		"Claim a trendy dish as a staple.",
	}},
	{Name: "New habit", Real: "What's a habit you want to start?", Decoys: []string{
		"Invent a wellness trend you never tried.",
		"Describe a mundane habit as life-changing.",
		"Say you will start an extreme sport casually.",
	}},
	{Name: "Last binge", Real: "What's the last show you binge-watched?", Decoys: []string{
		"Name a show you heard of and claim you finished it.",
		"Describe a classic series as a recent binge.",
		"Mention a foreign show but mix countries.",
	}},
	{Name: "Daily gadget", Real: "What's a tech gadget you use daily?", Decoys: []string{
		"Claim you rely on an impractical device.",
		"Name a professional tool as a consumer gadget.",
		"Describe using a trendy gadget incorrectly.",
	}},
	{Name: "Missed snack", Real: "What's a childhood snack you miss?", Decoys: []string{
		"Invent a regional snack brand.",
		"Call a generic candy by a specific name.",
		"Describe making the snack at home with wrong steps.",
	}},
	{Name: "Thinking spot", Real: "What's a place you go to think?", Decoys: []string{
		"Invent a public nook that sounds poetic.",
		"Say you go to a city landmark to reflect.",
		"Describe a mundane place as meditative.",
	}},
	{Name: "Small fear", Real: "What's one small fear you still have?", Decoys: []string{
		"Pick a dramatic phobia and downplay it.",
		"Invent an uncommonly specific fear.",
		"Say a trivial dislike as a deep fear.",
	}},
	{Name: "Small wins", Real: "What's your favorite way to celebrate small wins?", Decoys: []string{
		"Claim extravagant celebrations for small wins.",
		"Describe a ritual that sounds expensive.",
		"Mention a group tradition as personal.",
	}},
	{Name: "Family tradition", Real: "What's a tradition your family follows?", Decoys: []string{
		"Invent a cultural ritual nonsensically.",
		"Describe a holiday with mixed customs.",
		"Claim a celebrity tradition as family lore.",
	}},
	{Name: "Tried something new", Real: "What's your best 'I tried something new' story?", Decoys: []string{
		"Make up an adventure tale with no detail.",
		"Describe a failed attempt as a triumph.",
		"Claim to have done extreme sports.",
	}},
	{Name: "Younger self", Real: "What's a piece of advice you'd give your younger self?", Decoys: []string{
		"Offer cliché advice disguised as original.",
		"Invent a famous quote and make it personal.",
		"Give humorous but implausible counsel.",
	}},
	{Name: "Sound memory", Real: "What's a memory tied to a particular sound?", Decoys: []string{
		"Make up a detailed auditory memory.",
		"Describe a TV soundbite as a real-life trigger.",
		"Say a city's soundscape reminds you of home.",
	}},
	{Name: "Public space", Real: "What's your favorite public space in your city?", Decoys: []string{
		"Claim a famous plaza as your quiet spot.",
		"Describe a tourist place as local-only.",
		"Invent a hidden garden with specific flora.",
	}},
	{Name: "Thought-provoking movie", Real: "What's a movie that made you think differently?", Decoys: []string{
		"Name a popular film and misremember its theme.",
		"Describe a documentary as fiction.",
		"Say a blockbuster changed your philosophy.",
	}},
	{Name: "Skill to try", Real: "What's a skill everyone should try once?", Decoys: []string{
		"Suggest an obscure extreme hobby.",
		"Pick a professional skill as general.",
		"Claim a difficult art is simple to learn.",
	}},
	{Name: "Simple pleasure", Real: "What's a simple pleasure you indulge in?", Decoys: []string{
		"Invent an oddly specific indulgence.",
		"Describe a luxury as simple.",
		"Claim a daily habit as decadent.",
	}},
	{Name: "Holiday tradition", Real: "What's your favorite holiday tradition?", Decoys: []string{
		"Invent a family custom involving celebrities.",
		"Describe a hybrid festival not practiced.",
		"Say you follow a national ritual from another country.",
	}},
	{Name: "Unasked question", Real: "What's a question you wish people asked you more often?", Decoys: []string{
		"Create an odd introspective prompt.",
		"Suggest a niche hobby question.",
		"Claim people ask you about a made-up talent.",
	}},
	{Name: "Best compliment", Real: "What's the best compliment you've received?", Decoys: []string{
		"Make up a flattering story from a famous person.",
		"Describe a backhanded compliment as sincere.",
		"Invoke an award as a personal compliment.",
	}},
	{Name: "Local event", Real: "What's a local event you never miss?", Decoys: []string{
		"Invent a small festival name.",
		"Describe a big event in a different city.",
		"Claim an annual parade as intimate.",
	}},
	{Name: "Kitchen skill", Real: "What's one kitchen skill everyone should master?", Decoys: []string{
		"Name a complex culinary technique as basic.",
		"Suggest an expensive gadget as essential.",
		"Claim a cultural dish is universal.",
	}},
	{Name: "Focus habit", Real: "What's a habit that helps you focus?", Decoys: []string{
		"Invent a pseudo-scientific routine.",
		"Describe a trendy app as the core tool.",
		"Claim extreme routines like cold showers.",
	}},
	{Name: "Travel item", Real: "What's an item you always pack for trips?", Decoys: []string{
		"List a bulky gadget as essential.",
		"Mention an out-of-season item.",
		"Claim a sentimental object as the only need.",
	}},
}

var defaultItems = []string{
	"Pizza", "Sushi", "Burger", "Pasta", "Chocolate", "Coffee", "Ice Cream", "Taco", "Steak", "Salmon",
	"Apple", "Banana", "Orange", "Guitar", "Piano", "Violin", "Basketball", "Soccer", "Tennis", "Baseball",
	"New York", "London", "Paris", "Tokyo", "Los Angeles", "Sydney", "Rome", "Berlin", "Rio de Janeiro", "Dubai",
	"Michael Jackson", "Beyonce", "Taylor Swift", "Elvis Presley", "Madonna", "The Beatles", "Drake", "Kanye West", "Ariana Grande", "Justin Bieber",
	"Darth Vader", "Harry Potter", "Sherlock Holmes", "Frodo Baggins", "Luke Skywalker", "Batman", "Spider-Man", "Superman", "Pikachu", "SpongeBob",
	"Mount Everest", "Grand Canyon", "Niagara Falls", "Eiffel Tower", "Statue of Liberty", "Great Wall", "Machu Picchu", "Stonehenge", "Colosseum", "Taj Mahal",
	"Netflix", "iPhone", "PlayStation", "Xbox", "Nintendo", "Rubik's Cube", "LEGO", "Instagram", "Twitter", "YouTube",
	"Coca-Cola", "Pepsi", "McDonald's", "Starbucks", "KFC", "Domino's", "Red Bull", "Budweiser", "Heineken", "Nespresso",
	"Shrek", "Dumbledore", "Tony Stark", "Walter White", "Joker", "Indiana Jones", "Forrest Gump", "Simba", "Mulan", "Iron Man",
	"Game of Thrones", "The Office", "Friends", "Breaking Bad", "Stranger Things", "Seinfeld", "The Simpsons", "The Mandalorian", "Lord of the Rings", "Star Wars",
	"Amazon", "Walmart", "Google", "Facebook", "Microsoft", "Apple", "Tesla", "SpaceX", "Uber", "Airbnb",
	"Lasagna", "Ramen", "Pad Thai", "Curry", "Paella", "Kimchi", "Falafel", "Sashimi", "Gelato", "Tiramisu",
	"Elon Musk", "Oprah Winfrey", "LeBron James", "Lionel Messi", "Cristiano Ronaldo", "Serena Williams", "Roger Federer", "Usain Bolt", "Michael Jordan", "Tiger Woods",
	"Avatar", "Titanic", "The Godfather", "The Dark Knight", "Inception", "Pulp Fiction", "Jurassic Park", "Toy Story", "The Matrix", "Star Trek",
	"Minecraft", "Fortnite", "Roblox", "World of Warcraft", "League of Legends", "Call of Duty", "Counter-Strike", "Apex Legends", "Among Us", "GTA V",
}
