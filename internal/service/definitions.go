package service

import "github.com/luachhq/luach-api/internal/models"

// jewishHolidayDefinitions maps event-source base names onto the logical
// holidays the API surfaces. Hebrew text and descriptions follow hebcal.com.
// Holidays that begin at sunset own both their erev base and their main-day
// base; fast days own only the day itself.
var jewishHolidayDefinitions = []models.JewishHolidayDefinition{
	{
		Title: "Rosh Hashana", Category: models.CategoryMajor,
		Hebrew: "רֹאשׁ הַשָּׁנָה", Description: "The Jewish New Year",
		BaseNames: []string{"Erev Rosh Hashana", "Rosh Hashana"},
	},
	{
		Title: "Tzom Gedaliah", Category: models.CategoryFast,
		Hebrew: "צוֹם גְּדַלְיָה", Description: "Fast commemorating the assassination of Gedaliah ben Ahikam",
		BaseNames: []string{"Tzom Gedaliah"},
	},
	{
		Title: "Yom Kippur", Category: models.CategoryMajor,
		Hebrew: "יוֹם כִּפּוּר", Description: "Day of Atonement",
		BaseNames: []string{"Erev Yom Kippur", "Yom Kippur"},
	},
	{
		Title: "Sukkot", Category: models.CategoryMajor,
		Hebrew: "סוּכּוֹת", Description: "Feast of Booths",
		BaseNames: []string{"Erev Sukkot", "Sukkot"},
	},
	{
		Title: "Shmini Atzeret", Category: models.CategoryMajor,
		Hebrew: "שְׁמִינִי עֲצֶרֶת", Description: "Eighth Day of Assembly",
		BaseNames: []string{"Erev Shmini Atzeret", "Shmini Atzeret"},
		Israel: &models.IsraelVariant{
			Title:  "Shmini Atzeret / Simchat Torah",
			Hebrew: "שְׁמִינִי עֲצֶרֶת / שִׂמְחַת תּוֹרָה",
		},
	},
	{
		Title: "Simchat Torah", Category: models.CategoryMajor,
		Hebrew: "שִׂמְחַת תּוֹרָה", Description: "Rejoicing with the Torah",
		BaseNames: []string{"Erev Simchat Torah", "Simchat Torah"},
		Israel:    &models.IsraelVariant{Excluded: true},
	},
	{
		Title: "Chanukah", Category: models.CategoryMajor,
		Hebrew: "חֲנוּכָּה", Description: "Festival of Lights",
		BaseNames: []string{"Erev Chanukah", "Chanukah"},
	},
	{
		Title: "Asara B'Tevet", Category: models.CategoryFast,
		Hebrew: "עֲשָׂרָה בְּטֵבֵת", Description: "Fast commemorating the siege of Jerusalem",
		BaseNames: []string{"Asara B'Tevet"},
	},
	{
		Title: "Tu BiShvat", Category: models.CategoryMinor,
		Hebrew: "ט\"וּ בִּשְׁבָט", Description: "New Year for Trees",
		BaseNames: []string{"Erev Tu BiShvat", "Tu BiShvat"},
	},
	{
		Title: "Ta'anit Esther", Category: models.CategoryFast,
		Hebrew: "תַּעֲנִית אֶסְתֵּר", Description: "Fast of Esther",
		BaseNames: []string{"Ta'anit Esther"},
	},
	{
		Title: "Purim", Category: models.CategoryMajor,
		Hebrew: "פּוּרִים", Description: "Celebration of Jewish deliverance as told by Megilat Esther",
		BaseNames: []string{"Erev Purim", "Purim"},
	},
	{
		Title: "Shushan Purim", Category: models.CategoryMinor,
		Hebrew: "שׁוּשַׁן פּוּרִים", Description: "Purim as celebrated in walled cities",
		BaseNames: []string{"Erev Shushan Purim", "Shushan Purim"},
	},
	{
		Title: "Pesach", Category: models.CategoryMajor,
		Hebrew: "פֶּסַח", Description: "Passover, the Feast of Unleavened Bread",
		BaseNames: []string{"Erev Pesach", "Pesach"},
		Israel:    &models.IsraelVariant{EndDelta: -1},
	},
	{
		Title: "Yom HaShoah", Category: models.CategoryModern,
		Hebrew: "יוֹם הַשּׁוֹאָה", Description: "Holocaust Remembrance Day",
		BaseNames: []string{"Erev Yom HaShoah", "Yom HaShoah"},
	},
	{
		Title: "Yom HaZikaron", Category: models.CategoryModern,
		Hebrew: "יוֹם הַזִּכָּרוֹן", Description: "Israeli Memorial Day",
		BaseNames: []string{"Erev Yom HaZikaron", "Yom HaZikaron"},
	},
	{
		Title: "Yom HaAtzmaut", Category: models.CategoryModern,
		Hebrew: "יוֹם הָעַצְמָאוּת", Description: "Israel Independence Day",
		BaseNames: []string{"Erev Yom HaAtzmaut", "Yom HaAtzmaut"},
	},
	{
		Title: "Pesach Sheni", Category: models.CategoryMinor,
		Hebrew: "פֶּסַח שֵׁנִי", Description: "Second Passover",
		BaseNames: []string{"Erev Pesach Sheni", "Pesach Sheni"},
	},
	{
		Title: "Lag BaOmer", Category: models.CategoryMinor,
		Hebrew: "ל\"ג בָּעוֹמֶר", Description: "33rd day of counting the Omer",
		BaseNames: []string{"Erev Lag BaOmer", "Lag BaOmer"},
	},
	{
		Title: "Yom Yerushalayim", Category: models.CategoryModern,
		Hebrew: "יוֹם יְרוּשָׁלַיִם", Description: "Jerusalem Day",
		BaseNames: []string{"Erev Yom Yerushalayim", "Yom Yerushalayim"},
	},
	{
		Title: "Shavuot", Category: models.CategoryMajor,
		Hebrew: "שָׁבוּעוֹת", Description: "Festival of Weeks",
		BaseNames: []string{"Erev Shavuot", "Shavuot"},
		Israel:    &models.IsraelVariant{EndDelta: -1},
	},
	{
		Title: "Tzom Tammuz", Category: models.CategoryFast,
		Hebrew: "צוֹם תַּמּוּז", Description: "Fast of the 17th of Tammuz",
		BaseNames: []string{"Tzom Tammuz"},
	},
	{
		Title: "Tisha B'Av", Category: models.CategoryFast,
		Hebrew: "תִּשְׁעָה בְּאָב", Description: "Fast commemorating the destruction of the Temples",
		BaseNames: []string{"Tisha B'Av"},
	},
	{
		Title: "Tu B'Av", Category: models.CategoryMinor,
		Hebrew: "ט\"וּ בְּאָב", Description: "Minor holiday of love",
		BaseNames: []string{"Erev Tu B'Av", "Tu B'Av"},
	},
}
