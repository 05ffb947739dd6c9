package search

// aliases maps a canonical lowercase key phrase to its alternative spellings
// and transliterations. Matching is symmetric and group-transitive: once the
// query touches any member, the whole group joins the term set.
var aliases = map[string][]string{
	"chanukah":           {"hanukkah", "hanukah", "hanuka", "chanuka", "channukah"},
	"sukkot":             {"sukkos", "succot", "succos", "succoth"},
	"rosh hashana":       {"rosh hashanah", "rosh hashona", "rosh hashonah"},
	"shavuot":            {"shavuos", "shavuoth", "shevuot"},
	"simchat torah":      {"simchas torah", "simhat torah", "simchat tora"},
	"shmini atzeret":     {"shemini atzeret", "shmini atzeres", "shemini atzeres"},
	"yom kippur":         {"yom kipur", "yom kippor"},
	"pesach":             {"passover", "pessach", "pesah"},
	"purim":              {"poorim"},
	"tisha b'av":         {"tisha bav", "tisha beav", "tishah bav", "ninth of av"},
	"tu bishvat":         {"tu b'shvat", "tu bshvat", "tu b'shevat", "tu beshvat"},
	"lag baomer":         {"lag b'omer", "lag bomer"},
	"yom haatzmaut":      {"yom ha'atzmaut", "israel independence"},
	"yom hazikaron":      {"yom ha'zikaron", "israeli memorial"},
	"yom hashoah":        {"yom ha'shoah", "holocaust remembrance"},
	"ta'anit esther":     {"taanis esther", "fast of esther", "taanit esther"},
	"asara b'tevet":      {"asara btevet", "10 tevet", "tenth of tevet"},
	"tzom gedaliah":      {"tzom gedalia", "fast of gedaliah"},
	"tzom tammuz":        {"17 tammuz", "seventeenth of tammuz", "fast of tammuz"},
	"shushan purim":      {"shushan poorim"},
	"pesach sheni":       {"second passover"},
	"tu b'av":            {"tu bav", "15 av"},
	"yom yerushalayim":   {"jerusalem day"},
	"martin luther king": {"mlk day", "mlk"},
	"presidents' day":    {"presidents day", "washington's birthday"},
	"independence day":   {"4th of july", "fourth of july", "july 4th", "july 4"},
	"thanksgiving":       {"turkey day"},
}
