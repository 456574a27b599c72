package workload

// Words is the vocabulary names, cities and streets are drawn from.
var Words = [...]string{
	"Kieran", "Jong", "Jisheng", "Vickie", "Adam", "Simon", "Lance",
	"Everett", "Bryan", "Timothy", "Daren", "Emmett", "Edwin", "List",
	"Sharon", "Trying", "Dan", "Saad", "Kamiya", "Nikolai", "Del",
	"Casper", "Arthur", "Mac", "Rajesh", "Belinda", "Robin", "Lenora",
	"Carisa", "Penny", "Sabrina", "Ofer", "Suzanne", "Pria", "Magnus",
	"Ralph", "Cathrin", "Phill", "Alex", "Reinhard", "Marsh", "Tandy",
	"Mongo", "Matthieu", "Sundaresan", "Piotr", "Ramneek", "Lynne", "Erwin",
	"Edgar", "Srikanth", "Kimberly", "Jingbai", "Lui", "Jussi", "Wilmer",
	"Stuart", "Grant", "Hotta", "Stan", "Samir", "Ramadoss", "Narendra",
	"Gill", "Jeff", "Raul", "Ken", "Rahul", "Max", "Agatha",
	"Elizabeth", "Tai", "Ellen", "Matt", "Ian", "Toerless", "Naomi",
	"Rodent", "Terrance", "Ethan", "Florian", "Rik", "Stanislaw", "Mott",
	"Charlie", "Marguerite", "Hitoshi", "Panacea", "Dieter", "Randell", "Earle",
	"Rajiv", "Ted", "Mann", "Bobbie", "Pat", "Olivier", "Harmon",
	"Raman", "Justin",
}
