package players

// defaultPlayers is the bundled registry of supported players and their
// game-log slugs.
var defaultPlayers = []Player{
	{Name: "LeBron James", Slug: "jamesle01"},
	{Name: "Stephen Curry", Slug: "curryst01"},
	{Name: "Kevin Durant", Slug: "duranke01"},
	{Name: "Giannis Antetokounmpo", Slug: "antetgi01"},
	{Name: "Luka Doncic", Slug: "doncilu01"},
	{Name: "Nikola Jokic", Slug: "jokicni01"},
	{Name: "Joel Embiid", Slug: "embiijo01"},
	{Name: "Kawhi Leonard", Slug: "leonaka01"},
	{Name: "Damian Lillard", Slug: "lillada01"},
	{Name: "Anthony Davis", Slug: "davisan02"},
	{Name: "James Harden", Slug: "hardeja01"},
	{Name: "Jayson Tatum", Slug: "tatumja01"},
	{Name: "Devin Booker", Slug: "bookede01"},
	{Name: "Donovan Mitchell", Slug: "mitchdo01"},
	{Name: "Trae Young", Slug: "youngtr01"},
	{Name: "Kyrie Irving", Slug: "irvinky01"},
	{Name: "Paul George", Slug: "georgpa01"},
	{Name: "Jimmy Butler", Slug: "butleji01"},
	{Name: "Klay Thompson", Slug: "thompkl01"},
	{Name: "Zion Williamson", Slug: "willizi01"},
	{Name: "Jaylen Brown", Slug: "brownja02"},
	{Name: "Karl-Anthony Towns", Slug: "townska01"},
	{Name: "Ja Morant", Slug: "moranja01"},
	{Name: "Bam Adebayo", Slug: "adebaba01"},
	{Name: "Draymond Green", Slug: "greendr01"},
	{Name: "Bradley Beal", Slug: "bealbr01"},
	{Name: "Pascal Siakam", Slug: "siakapa01"},
	{Name: "Shai Gilgeous-Alexander", Slug: "gilgesh01"},
	{Name: "De'Aaron Fox", Slug: "foxde01"},
	{Name: "Domantas Sabonis", Slug: "sabondo01"},
	{Name: "Anthony Edwards", Slug: "edwaran01"},
	{Name: "DeMar DeRozan", Slug: "derozde01"},
	{Name: "Chris Paul", Slug: "paulch01"},
	{Name: "Rudy Gobert", Slug: "goberru01"},
	{Name: "Fred VanVleet", Slug: "vanvlfr01"},
	{Name: "Julius Randle", Slug: "randlju01"},
	{Name: "Jrue Holiday", Slug: "holidjr01"},
	{Name: "CJ McCollum", Slug: "mccolcj01"},
	{Name: "Khris Middleton", Slug: "middlkh01"},
	{Name: "Brandon Ingram", Slug: "ingrabr01"},
	{Name: "Dejounte Murray", Slug: "murrade01"},
	{Name: "Tyrese Haliburton", Slug: "halibty01"},
	{Name: "LaMelo Ball", Slug: "ballla01"},
	{Name: "Jalen Brunson", Slug: "brunsja01"},
	{Name: "Tyler Herro", Slug: "herroty01"},
	{Name: "Jaren Jackson Jr.", Slug: "jacksja02"},
	{Name: "Derrick White", Slug: "whitede01"},
	{Name: "OG Anunoby", Slug: "anunoog01"},
	{Name: "Mikal Bridges", Slug: "bridgmi01"},
	{Name: "Jarrett Allen", Slug: "allenja01"},
	{Name: "Evan Mobley", Slug: "mobleev01"},
	{Name: "Scottie Barnes", Slug: "barnessc01"},
	{Name: "Paolo Banchero", Slug: "banchpa01"},
	{Name: "Chet Holmgren", Slug: "holmgch01"},
	{Name: "Victor Wembanyama", Slug: "wembavi01"},
	{Name: "Scoot Henderson", Slug: "hendesk01"},
	{Name: "Cade Cunningham", Slug: "cunnica01"},
	{Name: "Jalen Green", Slug: "greenja05"},
	{Name: "Franz Wagner", Slug: "wagnefr01"},
	{Name: "Alperen Sengun", Slug: "sengual01"},
	{Name: "Desmond Bane", Slug: "banede01"},
}
