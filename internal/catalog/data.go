package catalog

var mallInfo = []Mall{
	{ID: "sunway_square", Name: "Sunway Square", DisplayName: "Sunway Square Mall"},
}

var mallRestaurants = map[string][]Restaurant{
	"sunway_square": {
		{Name: "103 Coffee", Unit: "L1-07", Floor: "L1", Category: "Coffee & Cafes", PlaceID: "fbBLzNbbAhyC5EtD8"},
		{Name: "A'Decade", Unit: "L2-22", Floor: "L2", Category: "Local & Malaysian", PlaceID: "9cyHNx553ExuJ3hi6"},
		{Name: "Armoury Steakhouse", Unit: "LG-05", Floor: "LG", Category: "Western & International", PlaceID: "8cy6us9hjZZAfgQU7"},
		{Name: "BESTORE", Unit: "L1-39", Floor: "L1", Category: "Snacks & Specialty Store", PlaceID: "bZcgGiT72iYHjSF37"},
		{Name: "Black Canyon", Unit: "L1-40", Floor: "L1", Category: "Western & International", PlaceID: "bDrUgbEaBWs6N9z76"},
		{Name: "Ba Shu Jia Yan", Unit: "LG-09 & LG-10", Floor: "LG", Category: "Chinese & Taiwanese", PlaceID: "rAbFM3inKp4fiXjT6"},
		{Name: "Beutea", Unit: "LG1-02", Floor: "LG1", Category: "Tea & Beverages", PlaceID: "gTpa8hVRC3zoFKvX8"},
		{Name: "Bread History", Unit: "LG1-25", Floor: "LG1", Category: "Bakery & Pastry", PlaceID: "YNf3xqP7gjnenGRz7"},
		{Name: "Chagee", Unit: "L1-04", Floor: "L1", Category: "Tea & Beverages", PlaceID: "hsHB84aUzaJMoYwV6"},
		{Name: "Coffee Bean", Unit: "L1-31", Floor: "L1", Category: "Coffee & Cafes", PlaceID: "8UQKcnuq4poo2TtP7"},
		{Name: "Christine's Bakery Cafe", Unit: "L1-42", Floor: "L1", Category: "Bakery & Pastry", PlaceID: "Vzi3pQPYAb4VPVWB7"},
		{Name: "CHUCHAT", Unit: "L1-06", Floor: "L1", Category: "Tea & Beverages", PlaceID: "HdHo9caEHwqE7FR46"},
		{Name: "ChaPanda", Unit: "L2-01", Floor: "L2", Category: "Tea & Beverages"},
		{Name: "CU Mart", Unit: "L2-28", Floor: "L2", Category: "Korean & Convenience", PlaceID: "81pYamF1w1PyF43R6"},
		{Name: "Come Buy Yakiniku", Unit: "LG-01", Floor: "LG", Category: "Japanese Cuisine", PlaceID: "ieY95nnWVsQeYHQJ7"},
		{Name: "Count (Flower Drum)", Unit: "LG-06 & LG-07", Floor: "LG", Category: "Chinese & Taiwanese", PlaceID: "iPbZbNnu8CbcaND67"},
		{Name: "Chatramue", Unit: "LG1-18", Floor: "LG1", Category: "Tea & Beverages", PlaceID: "Bw8NZrf3AmpLFkhK7"},
		{Name: "DOZO", Unit: "L1-41", Floor: "L1", Category: "Japanese Cuisine", PlaceID: "fqCY31DUaC8ChX3o6"},
		{Name: "Empire Sushi", Unit: "LG1-22", Floor: "LG1", Category: "Japanese Cuisine"},
		{Name: "Far Coffee", Unit: "L2-18A", Floor: "L2", Category: "Coffee & Cafes", PlaceID: "a7GEwwkEoMzeLmkZ9"},
		{Name: "Fong Woh Tong", Unit: "LG1-23", Floor: "LG1", Category: "Chinese & Taiwanese"},
		{Name: "Gong Luck Cafe", Unit: "L1-30", Floor: "L1", Category: "Local & Malaysian", PlaceID: "Bceop6WU4we1Vu5S9"},
		{Name: "Gokoku Japanese Bakery", Unit: "L1-44", Floor: "L1", Category: "Bakery & Pastry", PlaceID: "HwodhKyk5ZQ5m6LR9"},
		{Name: "Gong Cha", Unit: "L2-02", Floor: "L2", Category: "Tea & Beverages"},
		{Name: "Hock Kee Kopitiam", Unit: "L1-43", Floor: "L1", Category: "Local & Malaysian", PlaceID: "2yJdQL9CPr1oDr3z5"},
		{Name: "Han Bun Sik", Unit: "L2-12", Floor: "L2", Category: "Korean Cuisine", PlaceID: "xUT7WYerdouKGsoa7"},
		{Name: "Happy Potato", Unit: "L2-04", Floor: "L2", Category: "Snacks & Desserts", PlaceID: "FVPDE4T5dpLSE7Mt5"},
		{Name: "I'm Bagel", Unit: "L2-29", Floor: "L2", Category: "Western & International", PlaceID: "aK4sMT9zBwCm1XeU7"},
		{Name: "I LIKE & Yogurt In A Can", Unit: "L2-03", Floor: "L2", Category: "Snacks & Desserts", PlaceID: "LRsojAytvsBgzqpv9"},
		{Name: "JP & CO", Unit: "L1-45", Floor: "L1", Category: "Western & International", PlaceID: "56FcqA8teoZ5Ku4u6"},
		{Name: "Kanteen", Unit: "L1-08", Floor: "L1", Category: "Local & Malaysian"},
		{Name: "Kenangan Coffee", Unit: "L2-08", Floor: "L2", Category: "Coffee & Cafes", PlaceID: "M2fq3Pfzwnyre2ni7"},
		{Name: "Kedai Kopi Malaya", Unit: "LG1-20", Floor: "LG1", Category: "Local & Malaysian", PlaceID: "C8hWQKMMUnd618Uc6"},
		{Name: "Kha Coffee Roaster", Unit: "LG1-14", Floor: "LG1", Category: "Coffee & Cafes", PlaceID: "ngRqG79LMDokFfqr9"},
		{Name: "LLAO LLAO", Unit: "L1-14", Floor: "L1", Category: "Snacks & Desserts", PlaceID: "AY2o8QkqQuucspDJ9"},
		{Name: "Luckin", Unit: "L1-05", Floor: "L1", Category: "Coffee & Cafes", PlaceID: "hsrTZRaaK5UbvEHeA"},
		{Name: "Manjoe", Unit: "L1-17", Floor: "L1", Category: "Chinese & Taiwanese", PlaceID: "3v2opuM9JvVk8RRS9"},
		{Name: "Mix.Store", Unit: "LG-04", Floor: "LG", Category: "Snacks & Specialty Store", PlaceID: "GiJVi2Uqk4TibUpc7"},
		{Name: "Mr. Wu", Unit: "LG-11", Floor: "LG", Category: "Chinese & Taiwanese", PlaceID: "3SrpfuxhL2SYk7aXA"},
		{Name: "Missy Sushi", Unit: "LG-06", Floor: "LG", Category: "Japanese Cuisine", PlaceID: "sPSthzG1BSRjos1N6"},
		{Name: "Nasi Lemak Shop", Unit: "LG1-16", Floor: "LG1", Category: "Local & Malaysian", PlaceID: "jZBwji1p2b85ovuKA"},
		{Name: "Nine Dragon Char Chan Teng (Kowloon Cafe)", Unit: "LG1-13", Floor: "LG1", Category: "Chinese & Taiwanese", PlaceID: "HCDjtpfo6AaBHprU8"},
		{Name: "Nippon Sushi", Unit: "LG1-01", Floor: "LG1", Category: "Japanese Cuisine", PlaceID: "x9YSdRGxkuHrxiQm6"},
		{Name: "Odon Beyond", Unit: "L1-03", Floor: "L1", Category: "Japanese Cuisine", PlaceID: "L53kDg7b1HyfrdKH6"},
		{Name: "One Dish One Taste", Unit: "LG1-12B", Floor: "LG1", Category: "Chinese & Taiwanese"},
		{Name: "Pak Curry", Unit: "LG1-26", Floor: "LG1", Category: "Local & Malaysian", PlaceID: "wn7z5CQfESoZG4iD9"},
		{Name: "Ramen Mob", Unit: "L1-12", Floor: "L1", Category: "Japanese Cuisine", PlaceID: "zrcMQS1tvyWiEpya6"},
		{Name: "Richeese Factory", Unit: "LG1-15", Floor: "LG1", Category: "Fast Food", PlaceID: "RNK7dyqkSNLNP2V8A"},
		{Name: "Sweetie", Unit: "LG1-24", Floor: "LG1", Category: "Snacks & Desserts"},
		{Name: "Salad Atelier", Unit: "L1-01", Floor: "L1", Category: "Western & International", PlaceID: "tgAYaAv18MnbCtHr5"},
		{Name: "Super Matcha", Unit: "L1-20", Floor: "L1", Category: "Tea & Beverages", PlaceID: "6QjRZ6edKZofvyN27"},
		{Name: "Shabuyaki by Nippon Sushi", Unit: "LG-12 & LG-13", Floor: "LG", Category: "Japanese Cuisine"},
		{Name: "Stuff'D", Unit: "LG1-27", Floor: "LG1", Category: "Western & International", PlaceID: "5yw6fwJcvoGT8GHc6"},
		{Name: "Subway", Unit: "LG1-21", Floor: "LG1", Category: "Fast Food"},
		{Name: "The Public House", Unit: "L1-09", Floor: "L1", Category: "Western & International", PlaceID: "D3e43oMf2zMd7ASu5"},
		{Name: "Tealive Plus", Unit: "L2-30", Floor: "L2", Category: "Tea & Beverages"},
		{Name: "Tang Gui Fei Tanghulu", Unit: "L2-17", Floor: "L2", Category: "Snacks & Desserts", PlaceID: "21VFJna44i6xYref9"},
		{Name: "The Walking Hotpot Signature", Unit: "L2-23", Floor: "L2", Category: "Chinese & Taiwanese", PlaceID: "gPrcGRUEhAgAzCSJ7"},
		{Name: "The Chicken Rice Shop", Unit: "LG1-10", Floor: "LG1", Category: "Local & Malaysian", PlaceID: "mbxDFcZV8jzmBWaM6"},
		{Name: "Village Grocer", Unit: "LG1-05 to LG1-09", Floor: "LG1", Category: "Supermarket", PlaceID: "H3spKPGzaj6war8A9"},
		{Name: "Yellow Bento", Unit: "L2-01", Floor: "L2", Category: "Japanese Cuisine", PlaceID: "XuXetfXJVGaxJNBG8"},
		{Name: "Yonny", Unit: "L1-32", Floor: "L1", Category: "Chinese & Taiwanese", PlaceID: "UdP75iyUAGZJ6HgX8"},
		{Name: "Yama by Hojichaya", Unit: "L2-10A", Floor: "L2", Category: "Japanese Cuisine", PlaceID: "GNJeSQDHNkWJNa4KA"},
		{Name: "Yogurt Planet", Unit: "LG1-19", Floor: "LG1", Category: "Snacks & Desserts", PlaceID: "wCyZNRzR3HJZka2y6"},
		{Name: "Zus Coffee", Unit: "L1-02", Floor: "L1", Category: "Coffee & Cafes", PlaceID: "ciunsPEq5nqnp54g7"},
		{Name: "Zok Noodle House", Unit: "L2-24", Floor: "L2", Category: "Chinese & Taiwanese", PlaceID: "gdejSbdHpXJHJe5X9"},
	},
}
