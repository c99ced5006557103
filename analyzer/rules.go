package analyzer

import "regexp"

// Document type labels. Detection walks documentTypeRules in order and the
// first matching rule wins, so the slice order is the tie-break.
const (
	DocTypeEmpty      = "مستند فارغ"
	DocTypeGeneral    = "مستند قانوني عام"
	DocTypeCollection = "مجموعة مستندات"
)

type documentTypeRule struct {
	label   string
	pattern *regexp.Regexp
}

var documentTypeRules = []documentTypeRule{
	{"صحيفة دعوى", regexp.MustCompile(`(?i)صحيفة\s*دعوى|دعوى\s*مدنية|دعوى\s*جنائية|المدعي|المدعى\s*عليه`)},
	{"عقد بيع", regexp.MustCompile(`(?i)عقد\s*بيع|بيع\s*وشراء|البائع|المشتري|الثمن|المبيع`)},
	{"عقد إيجار", regexp.MustCompile(`(?i)عقد\s*إيجار|إيجار|المؤجر|المستأجر|الأجرة|المأجور`)},
	{"حكم قضائي", regexp.MustCompile(`(?i)حكم|قضت\s*المحكمة|تقرر|باسم\s*الشعب|المحكمة\s*العليا`)},
	{"إنذار عدلي", regexp.MustCompile(`(?i)إنذار\s*عدلي|إنذار|كاتب\s*العدل|ينذر|المنذر`)},
	{"وكالة", regexp.MustCompile(`(?i)وكالة|وكيل|موكل|ينيب|بالوكالة`)},
	{"شهادة", regexp.MustCompile(`(?i)شهادة|يشهد|الشاهد|نشهد`)},
	{"عقد زواج", regexp.MustCompile(`(?i)عقد\s*زواج|زواج|الزوج|الزوجة|المهر|الصداق`)},
	{"وصية", regexp.MustCompile(`(?i)وصية|الموصي|الموصى\s*له|أوصي|وصيتي`)},
}

// partyRule captures a run of Arabic letters and spaces (5-50 chars) after a
// role label. RE2 has no lookahead, so the capture is confined to one line
// and then cut at the first boundary token; a match is only accepted when it
// ends at a line break, at end of text, or at a boundary cut.
type partyRule struct {
	pattern    *regexp.Regexp
	boundaries []string
}

// arabicName matches a 5-50 character run of Arabic letters and spaces that
// starts and ends on a letter, without crossing line breaks.
const arabicName = `([\x{0623}-\x{064A}][\x{0623}-\x{064A} ]{3,48}[\x{0623}-\x{064A}])`

var plaintiffRules = []partyRule{
	{regexp.MustCompile(`المدعي\s*:?\s*` + arabicName), []string{"العنوان", "الهاتف", "المدعى"}},
	{regexp.MustCompile(`المشتري\s*:?\s*` + arabicName), []string{"العنوان", "الهاتف", "البائع"}},
	{regexp.MustCompile(`المؤجر\s*:?\s*` + arabicName), []string{"العنوان", "الهاتف", "المستأجر"}},
	{regexp.MustCompile(`الموكل\s*:?\s*` + arabicName), []string{"العنوان", "الهاتف", "الوكيل"}},
}

var defendantRules = []partyRule{
	{regexp.MustCompile(`المدعى\s*عليه\s*:?\s*` + arabicName), []string{"العنوان", "الهاتف", "موضوع"}},
	{regexp.MustCompile(`البائع\s*:?\s*` + arabicName), []string{"العنوان", "الهاتف", "المشتري"}},
	{regexp.MustCompile(`المستأجر\s*:?\s*` + arabicName), []string{"العنوان", "الهاتف", "المؤجر"}},
	{regexp.MustCompile(`الوكيل\s*:?\s*` + arabicName), []string{"العنوان", "الهاتف", "الموكل"}},
}

var witnessRules = []partyRule{
	{regexp.MustCompile(`الشاهد\s*الأول\s*:?\s*` + arabicName), []string{"الشاهد"}},
	{regexp.MustCompile(`الشاهد\s*الثاني\s*:?\s*` + arabicName), []string{"الشاهد"}},
	{regexp.MustCompile(`شاهد\s*:?\s*` + arabicName), []string{"شاهد"}},
}

// dateRule matches a date either bare or behind an introductory phrase; for
// phrase forms the embedded date is re-extracted from capture group 1.
var dateRules = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
	regexp.MustCompile(`\d{4}/\d{1,2}/\d{1,2}`),
	regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`),
	regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{4}`),
	regexp.MustCompile(`في\s*يوم\s*\w*\s*الموافق\s*(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`بتاريخ\s*(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`مؤرخ\s*في\s*(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`التاريخ\s*:?\s*(\d{1,2}/\d{1,2}/\d{4})`),
}

// cleanDatePattern normalizes a phrase match back down to the literal date
// substring in any of the four supported shapes.
var cleanDatePattern = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}|\d{4}/\d{1,2}/\d{1,2}|\d{1,2}-\d{1,2}-\d{4}|\d{1,2}\.\d{1,2}\.\d{4}`)

// Amount rules keep the full matched substring verbatim, currency token and
// thousands separators (Latin or Arabic comma) included.
var amountRules = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,3}(?:[,،]\d{3})*\s*ريال`),
	regexp.MustCompile(`\d+\s*ريال`),
	regexp.MustCompile(`\d{1,3}(?:[,،]\d{3})*\s*دولار`),
	regexp.MustCompile(`مبلغ\s*:?\s*\d{1,3}(?:[,،]\d{3})*\s*ريال`),
	regexp.MustCompile(`الثمن\s*:?\s*\d{1,3}(?:[,،]\d{3})*\s*ريال`),
	regexp.MustCompile(`أجرة\s*المثل\s*:?\s*\d{1,3}(?:[,،]\d{3})*\s*ريال`),
	regexp.MustCompile(`بواقع\s*\d{1,3}(?:[,،]\d{3})*\s*ريال`),
	regexp.MustCompile(`المهر\s*:?\s*\d{1,3}(?:[,،]\d{3})*\s*ريال`),
	regexp.MustCompile(`الصداق\s*:?\s*\d{1,3}(?:[,،]\d{3})*\s*ريال`),
}

// yemeniCities is the location gazetteer, tested by exact substring presence.
var yemeniCities = []string{
	"صنعاء", "عدن", "تعز", "الحديدة", "إب", "ذمار",
	"المكلا", "سيئون", "زبيد", "يريم", "جبلة", "رداع",
	"عمران", "صعدة", "مأرب", "الجوف", "حضرموت", "شبوة",
	"أبين", "لحج", "الضالع", "البيضاء", "ريمة", "محويت",
}

// Area rules capture the name after a neighborhood/area/street/address
// prefix, up to the next delimiter or line end.
var areaRules = []*regexp.Regexp{
	regexp.MustCompile(`حي\s*([\x{0623}-\x{064A} ]+?)(?:\s*-|\s*،|\s*\.|\n|$)`),
	regexp.MustCompile(`منطقة\s*([\x{0623}-\x{064A} ]+?)(?:\s*-|\s*،|\s*\.|\n|$)`),
	regexp.MustCompile(`شارع\s*([\x{0623}-\x{064A} ]+?)(?:\s*-|\s*،|\s*\.|\n|$)`),
	regexp.MustCompile(`العنوان\s*:?\s*([\x{0623}-\x{064A}\- ]+?)(?:\n|الهاتف|$)`),
}

var legalReferenceRules = []*regexp.Regexp{
	regexp.MustCompile(`المادة\s*\d+`),
	regexp.MustCompile(`القانون\s*رقم\s*\d+`),
	regexp.MustCompile(`الدستور`),
	regexp.MustCompile(`قانون\s*[\x{0623}-\x{064A}\s]+`),
	regexp.MustCompile(`المرسوم\s*رقم\s*\d+`),
	regexp.MustCompile(`القرار\s*رقم\s*\d+`),
	regexp.MustCompile(`اللائحة\s*رقم\s*\d+`),
}

// legalTerms is the fixed vocabulary scanned by literal substring presence.
// Found terms are reported in vocabulary order.
var legalTerms = []string{
	"ملكية", "إخلاء", "تعويض", "أجرة المثل", "عقد", "دعوى",
	"حكم", "استئناف", "نقض", "تنفيذ", "حجز", "رهن",
	"ضمان", "كفالة", "وراثة", "ميراث", "وصية", "طلاق",
	"نفقة", "حضانة", "زواج", "مهر", "صداق", "خلع",
	"فسخ", "بطلان", "إبطال", "تصديق", "توثيق", "تسجيل",
	"شهر", "إعلان", "تبليغ", "حضور", "غياب",
}
