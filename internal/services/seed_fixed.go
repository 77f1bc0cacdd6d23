package services

import (
	"time"

	"next-target-mock/internal/models"
)

// fixedSeed is the curated demo roster. Personal ids are 9 digits and
// numbers run 46601-46620.
var fixedSeed = []models.Person{
	{
		PersonalID:  "334455667",
		FirstName:   "אריאל",
		LastName:    "חדד",
		Battalion:   "גדעון",
		Company:     "אלפא",
		Platoon:     "1",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "אריאל חדד",
		Professions: []string{"לוחם חי״ר"},
		Team:        "ברק",
		TeamNumbers: []int{101, 102},
		Number:      "46601",
	},
	{
		PersonalID:  "223344556",
		FirstName:   "אפרת",
		LastName:    "שלום",
		Battalion:   "רשף",
		Company:     "מסייעת",
		Platoon:     "3",
		ServiceType: "קבע",
		Active:      true,
		FullName:    "אפרת שלום",
		Professions: []string{"קצינת שלישות"},
		Team:        "מטה",
		TeamNumbers: []int{201},
		Number:      "46602",
	},
	{
		PersonalID:  "335566778",
		FirstName:   "בועז",
		LastName:    "יעקב",
		Battalion:   "צפע",
		Company:     "חוד",
		Platoon:     "2",
		ServiceType: "מילואים",
		Active:      false,
		FullName:    "בועז יעקב",
		Professions: []string{"חובש"},
		Team:        "רפואה",
		TeamNumbers: []int{305, 306},
		Number:      "46603",
	},
	{
		PersonalID:  "201122334",
		FirstName:   "דנה",
		LastName:    "אטיאס",
		Battalion:   "שקד",
		Company:     "מבצעית",
		Platoon:     "4",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "דנה אטיאס",
		Professions: []string{"תצפיתנית"},
		Team:        "אופק",
		TeamNumbers: []int{401},
		Number:      "46604",
	},
	{
		PersonalID:  "304455669",
		FirstName:   "הראל",
		LastName:    "מור",
		Battalion:   "עזוז",
		Company:     "ג׳",
		Platoon:     "1",
		ServiceType: "קבע",
		Active:      true,
		FullName:    "הראל מור",
		Professions: []string{"מפקד צוות"},
		Team:        "סופה",
		TeamNumbers: []int{501, 502, 503, 504},
		Number:      "46605",
	},
	{
		PersonalID:  "318822334",
		FirstName:   "ירדן",
		LastName:    "כהן",
		Battalion:   "בזק",
		Company:     "א׳",
		Platoon:     "2",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "ירדן כהן",
		Professions: []string{"קשר"},
		Team:        "הדר",
		TeamNumbers: []int{601},
		Number:      "46606",
	},
	{
		PersonalID:  "209933445",
		FirstName:   "לירז",
		LastName:    "אביטן",
		Battalion:   "צפע",
		Company:     "מסייעת",
		Platoon:     "3",
		ServiceType: "מילואים",
		Active:      false,
		FullName:    "לירז אביטן",
		Professions: []string{"נהג בט״ש"},
		Team:        "לוגיסטיקה",
		TeamNumbers: []int{705},
		Number:      "46607",
	},
	{
		PersonalID:  "310022334",
		FirstName:   "מאור",
		LastName:    "וקנין",
		Battalion:   "עשת",
		Company:     "מפקדה",
		Platoon:     "1",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "מאור וקנין",
		Professions: []string{"טכנאי"},
		Team:        "חימוש",
		TeamNumbers: []int{801, 802},
		Number:      "46608",
	},
	{
		PersonalID:  "201133446",
		FirstName:   "נטע",
		LastName:    "בר",
		Battalion:   "קרקאל",
		Company:     "ב׳",
		Platoon:     "4",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "נטע בר",
		Professions: []string{"לוחמת"},
		Team:        "יהלום",
		TeamNumbers: []int{901},
		Number:      "46609",
	},
	{
		PersonalID:  "320044557",
		FirstName:   "עידן",
		LastName:    "לוין",
		Battalion:   "נחשון",
		Company:     "חוד",
		Platoon:     "2",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "עידן לוין",
		Professions: []string{"קלע"},
		Team:        "עורב",
		TeamNumbers: []int{101, 105},
		Number:      "46610",
	},
	{
		PersonalID:  "321155668",
		FirstName:   "עדי",
		LastName:    "שרון",
		Battalion:   "אריות הירדן",
		Company:     "א׳",
		Platoon:     "3",
		ServiceType: "קבע",
		Active:      true,
		FullName:    "עדי שרון",
		Professions: []string{"קצינת מבצעים"},
		Team:        "חמ״ל",
		TeamNumbers: []int{110},
		Number:      "46611",
	},
	{
		PersonalID:  "315577881",
		FirstName:   "רפאל",
		LastName:    "גולן",
		Battalion:   "ברק",
		Company:     "ג׳",
		Platoon:     "2",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "רפאל גולן",
		Professions: []string{"מטוליסט"},
		Team:        "חוד",
		TeamNumbers: []int{121, 122},
		Number:      "46612",
	},
	{
		PersonalID:  "301144558",
		FirstName:   "שגיא",
		LastName:    "פרץ",
		Battalion:   "רמפה",
		Company:     "ב׳",
		Platoon:     "1",
		ServiceType: "סדיר",
		Active:      false,
		FullName:    "שגיא פרץ",
		Professions: []string{"מש״ק תש"},
		Team:        "ת״ש",
		TeamNumbers: []int{130},
		Number:      "46613",
	},
	{
		PersonalID:  "204466779",
		FirstName:   "תמי",
		LastName:    "כהן",
		Battalion:   "דוכיפת",
		Company:     "מסייעת",
		Platoon:     "3",
		ServiceType: "קבע",
		Active:      true,
		FullName:    "תמי כהן",
		Professions: []string{"רס״פ"},
		Team:        "לוגיסטיקה",
		TeamNumbers: []int{141, 142, 143},
		Number:      "46614",
	},
	{
		PersonalID:  "328899001",
		FirstName:   "אור",
		LastName:    "לוין",
		Battalion:   "שקד",
		Company:     "מבצעית",
		Platoon:     "2",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "אור לוין",
		Professions: []string{"חובש קרבי"},
		Team:        "תאג״ד",
		TeamNumbers: []int{150},
		Number:      "46615",
	},
	{
		PersonalID:  "314455002",
		FirstName:   "גיל",
		LastName:    "חן",
		Battalion:   "בזק",
		Company:     "א׳",
		Platoon:     "1",
		ServiceType: "מילואים",
		Active:      true,
		FullName:    "גיל חן",
		Professions: []string{"נהג כבד"},
		Team:        "ניוד",
		TeamNumbers: []int{161},
		Number:      "46616",
	},
	{
		PersonalID:  "323344111",
		FirstName:   "רועי",
		LastName:    "סבג",
		Battalion:   "נחשון",
		Company:     "חוד",
		Platoon:     "4",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "רועי סבג",
		Professions: []string{"לוחם"},
		Team:        "נמר",
		TeamNumbers: []int{171, 172},
		Number:      "46617",
	},
	{
		PersonalID:  "229988112",
		FirstName:   "שחר",
		LastName:    "ברק",
		Battalion:   "צפע",
		Company:     "מפקדה",
		Platoon:     "1",
		ServiceType: "קבע",
		Active:      true,
		FullName:    "שחר ברק",
		Professions: []string{"קצין טכני"},
		Team:        "אחזקה",
		TeamNumbers: []int{180},
		Number:      "46618",
	},
	{
		PersonalID:  "320099883",
		FirstName:   "דביר",
		LastName:    "עמר",
		Battalion:   "קרקאל",
		Company:     "ב׳",
		Platoon:     "2",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "דביר עמר",
		Professions: []string{"מ״כ"},
		Team:        "הכשרה",
		TeamNumbers: []int{191, 192},
		Number:      "46619",
	},
	{
		PersonalID:  "314477884",
		FirstName:   "ניתאי",
		LastName:    "גבאי",
		Battalion:   "עזוז",
		Company:     "ג׳",
		Platoon:     "3",
		ServiceType: "סדיר",
		Active:      true,
		FullName:    "ניתאי גבאי",
		Professions: []string{"לוחם"},
		Team:        "אלון",
		TeamNumbers: []int{200},
		Number:      "46620",
	},
}

// FixedSeedPeople returns a fresh copy of the curated roster stamped with now.
func FixedSeedPeople(now time.Time) []models.Person {
	people := make([]models.Person, 0, len(fixedSeed))
	for _, p := range fixedSeed {
		p.Professions = append([]string{}, p.Professions...)
		p.TeamNumbers = append([]int{}, p.TeamNumbers...)
		p.ApplyDefaults(now)
		people = append(people, p)
	}
	return people
}
