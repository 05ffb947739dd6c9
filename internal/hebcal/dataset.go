package hebcal

// span is one holiday observance as published by hebcal. start is the erev
// date when hasEve is set (the main days then run start+1..end); fast days
// have no erev and run start..end.
type span struct {
	base   string
	start  string
	end    string
	hasEve bool
}

// dataset covers Hebrew years 5786-5790 (civil 2025-2030), diaspora reckoning.
var dataset = []span{
	// 5786 (2025-2026)
	{base: "Rosh Hashana", start: "2025-09-22", end: "2025-09-24", hasEve: true},
	{base: "Tzom Gedaliah", start: "2025-09-25", end: "2025-09-25"},
	{base: "Yom Kippur", start: "2025-10-01", end: "2025-10-02", hasEve: true},
	{base: "Sukkot", start: "2025-10-06", end: "2025-10-13", hasEve: true},
	{base: "Shmini Atzeret", start: "2025-10-13", end: "2025-10-14", hasEve: true},
	{base: "Simchat Torah", start: "2025-10-14", end: "2025-10-15", hasEve: true},
	{base: "Chanukah", start: "2025-12-14", end: "2025-12-22", hasEve: true},
	{base: "Asara B'Tevet", start: "2025-12-30", end: "2025-12-30"},
	{base: "Tu BiShvat", start: "2026-02-01", end: "2026-02-02", hasEve: true},
	{base: "Ta'anit Esther", start: "2026-03-02", end: "2026-03-02"},
	{base: "Purim", start: "2026-03-02", end: "2026-03-03", hasEve: true},
	{base: "Shushan Purim", start: "2026-03-03", end: "2026-03-04", hasEve: true},
	{base: "Pesach", start: "2026-04-01", end: "2026-04-09", hasEve: true},
	{base: "Yom HaShoah", start: "2026-04-13", end: "2026-04-14", hasEve: true},
	{base: "Yom HaZikaron", start: "2026-04-20", end: "2026-04-21", hasEve: true},
	{base: "Yom HaAtzmaut", start: "2026-04-21", end: "2026-04-22", hasEve: true},
	{base: "Pesach Sheni", start: "2026-04-30", end: "2026-05-01", hasEve: true},
	{base: "Lag BaOmer", start: "2026-05-04", end: "2026-05-05", hasEve: true},
	{base: "Yom Yerushalayim", start: "2026-05-14", end: "2026-05-15", hasEve: true},
	{base: "Shavuot", start: "2026-05-21", end: "2026-05-23", hasEve: true},
	{base: "Tzom Tammuz", start: "2026-07-02", end: "2026-07-02"},
	{base: "Tisha B'Av", start: "2026-07-22", end: "2026-07-23"},
	{base: "Tu B'Av", start: "2026-07-28", end: "2026-07-29", hasEve: true},

	// 5787 (2026-2027)
	{base: "Rosh Hashana", start: "2026-09-11", end: "2026-09-13", hasEve: true},
	{base: "Tzom Gedaliah", start: "2026-09-14", end: "2026-09-14"},
	{base: "Yom Kippur", start: "2026-09-20", end: "2026-09-21", hasEve: true},
	{base: "Sukkot", start: "2026-09-25", end: "2026-10-02", hasEve: true},
	{base: "Shmini Atzeret", start: "2026-10-02", end: "2026-10-03", hasEve: true},
	{base: "Simchat Torah", start: "2026-10-03", end: "2026-10-04", hasEve: true},
	{base: "Chanukah", start: "2026-12-04", end: "2026-12-12", hasEve: true},
	{base: "Asara B'Tevet", start: "2026-12-20", end: "2026-12-20"},
	{base: "Tu BiShvat", start: "2027-01-22", end: "2027-01-23", hasEve: true},
	{base: "Ta'anit Esther", start: "2027-03-22", end: "2027-03-22"},
	{base: "Purim", start: "2027-03-22", end: "2027-03-23", hasEve: true},
	{base: "Shushan Purim", start: "2027-03-23", end: "2027-03-24", hasEve: true},
	{base: "Pesach", start: "2027-04-21", end: "2027-04-29", hasEve: true},
	{base: "Yom HaShoah", start: "2027-05-03", end: "2027-05-04", hasEve: true},
	{base: "Yom HaZikaron", start: "2027-05-10", end: "2027-05-11", hasEve: true},
	{base: "Yom HaAtzmaut", start: "2027-05-11", end: "2027-05-12", hasEve: true},
	{base: "Lag BaOmer", start: "2027-05-24", end: "2027-05-25", hasEve: true},
	{base: "Shavuot", start: "2027-06-10", end: "2027-06-12", hasEve: true},
	{base: "Tzom Tammuz", start: "2027-07-22", end: "2027-07-22"},
	{base: "Tisha B'Av", start: "2027-08-11", end: "2027-08-12"},
	{base: "Tu B'Av", start: "2027-08-17", end: "2027-08-18", hasEve: true},

	// 5788 (2027-2028)
	{base: "Rosh Hashana", start: "2027-10-01", end: "2027-10-03", hasEve: true},
	{base: "Yom Kippur", start: "2027-10-10", end: "2027-10-11", hasEve: true},
	{base: "Sukkot", start: "2027-10-15", end: "2027-10-22", hasEve: true},
	{base: "Shmini Atzeret", start: "2027-10-22", end: "2027-10-23", hasEve: true},
	{base: "Simchat Torah", start: "2027-10-23", end: "2027-10-24", hasEve: true},
	{base: "Chanukah", start: "2027-12-24", end: "2028-01-01", hasEve: true},
	{base: "Tu BiShvat", start: "2028-02-11", end: "2028-02-12", hasEve: true},
	{base: "Purim", start: "2028-03-11", end: "2028-03-12", hasEve: true},
	{base: "Pesach", start: "2028-04-10", end: "2028-04-18", hasEve: true},
	{base: "Lag BaOmer", start: "2028-05-13", end: "2028-05-14", hasEve: true},
	{base: "Shavuot", start: "2028-05-30", end: "2028-06-01", hasEve: true},
	{base: "Tisha B'Av", start: "2028-07-31", end: "2028-08-01"},

	// 5789 (2028-2029)
	{base: "Rosh Hashana", start: "2028-09-20", end: "2028-09-22", hasEve: true},
	{base: "Yom Kippur", start: "2028-09-29", end: "2028-09-30", hasEve: true},
	{base: "Sukkot", start: "2028-10-04", end: "2028-10-11", hasEve: true},
	{base: "Chanukah", start: "2028-12-12", end: "2028-12-20", hasEve: true},
	{base: "Tu BiShvat", start: "2029-01-31", end: "2029-02-01", hasEve: true},
	{base: "Purim", start: "2029-02-28", end: "2029-03-01", hasEve: true},
	{base: "Pesach", start: "2029-03-30", end: "2029-04-07", hasEve: true},
	{base: "Shavuot", start: "2029-05-19", end: "2029-05-21", hasEve: true},
	{base: "Tisha B'Av", start: "2029-07-21", end: "2029-07-22"},

	// 5790 (2029-2030)
	{base: "Rosh Hashana", start: "2029-09-09", end: "2029-09-11", hasEve: true},
	{base: "Yom Kippur", start: "2029-09-18", end: "2029-09-19", hasEve: true},
	{base: "Sukkot", start: "2029-09-23", end: "2029-09-30", hasEve: true},
	{base: "Chanukah", start: "2029-12-01", end: "2029-12-09", hasEve: true},
	{base: "Tu BiShvat", start: "2030-01-21", end: "2030-01-22", hasEve: true},
	{base: "Purim", start: "2030-03-18", end: "2030-03-19", hasEve: true},
	{base: "Pesach", start: "2030-04-17", end: "2030-04-25", hasEve: true},
	{base: "Shavuot", start: "2030-06-06", end: "2030-06-08", hasEve: true},
}
