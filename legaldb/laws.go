package legaldb

import (
	"strings"

	"mizan-backend/models"
)

// MatchMode selects how law and precedent queries are matched.
type MatchMode int

const (
	// MatchKeywordsOnly matches the query against keyword tags alone.
	MatchKeywordsOnly MatchMode = iota
	// MatchKeywordsOrText additionally matches the query against the
	// entry's body text or summary.
	MatchKeywordsOrText
)

var constitutionLawArticles = []models.LegalArticle{
	{
		ID:       "const_1",
		Law:      "الدستور اليمني",
		Article:  "المادة 1",
		Text:     "الجمهورية اليمنية دولة عربية إسلامية مستقلة ذات سيادة، وحدتها لا تتجزأ، ولا يجوز التنازل عن أي جزء منها، والشعب اليمني جزء من الأمة العربية والإسلامية.",
		Category: "أحكام عامة",
		Keywords: []string{"دولة", "سيادة", "وحدة", "عربية", "إسلامية"},
	},
	{
		ID:       "const_15",
		Law:      "الدستور اليمني",
		Article:  "المادة 15",
		Text:     "التقاضي حق مصون ومكفول للناس كافة، ولكل مواطن حق الالتجاء إلى قاضيه الطبيعي، والدفاع عن حقوقه وحرياته بكافة الوسائل المشروعة.",
		Category: "حقوق وحريات",
		Keywords: []string{"تقاضي", "قاضي طبيعي", "دفاع", "حقوق", "حريات"},
	},
	{
		ID:       "const_47",
		Law:      "الدستور اليمني",
		Article:  "المادة 47",
		Text:     "الملكية الخاصة مصونة، ولا يجوز المساس بها إلا للمصلحة العامة ومقابل تعويض عادل وفقاً للقانون.",
		Category: "حقوق اقتصادية",
		Keywords: []string{"ملكية خاصة", "مصونة", "مصلحة عامة", "تعويض"},
	},
}

var civilLawArticles = []models.LegalArticle{
	{
		ID:       "civil_674",
		Law:      "القانون المدني اليمني",
		Article:  "المادة 674",
		Text:     "للمالك الحق في استعمال ملكه والتصرف فيه واستغلاله في حدود القانون، وله أن يسترد ملكه من يد الغير.",
		Category: "حق الملكية",
		Keywords: []string{"مالك", "استعمال", "تصرف", "استغلال", "استرداد"},
	},
	{
		ID:       "civil_675",
		Law:      "القانون المدني اليمني",
		Article:  "المادة 675",
		Text:     "لا يجوز لأحد أن يغتصب ملك الغير أو يعتدي عليه، ومن فعل ذلك وجب عليه رد الملك إلى صاحبه مع التعويض عن الأضرار.",
		Category: "حق الملكية",
		Keywords: []string{"اغتصاب", "اعتداء", "رد", "تعويض", "أضرار"},
	},
	{
		ID:       "civil_147",
		Law:      "القانون المدني اليمني",
		Article:  "المادة 147",
		Text:     "العقد شريعة المتعاقدين، فلا يجوز نقضه ولا تعديله إلا باتفاق الطرفين أو للأسباب التي يقررها القانون.",
		Category: "العقود",
		Keywords: []string{"عقد", "شريعة المتعاقدين", "نقض", "تعديل", "اتفاق"},
	},
}

var procedureLawArticles = []models.LegalArticle{
	{
		ID:       "proc_3",
		Law:      "قانون المرافعات اليمني",
		Article:  "المادة 3",
		Text:     "لا يجوز لأحد أن يتقاضى عن حق ليس له أو ينوب عن غيره في الخصومة إلا بوكالة صحيحة أو بصفة نظامية.",
		Category: "أحكام عامة",
		Keywords: []string{"تقاضي", "حق", "نيابة", "وكالة", "صفة نظامية"},
	},
	{
		ID:       "proc_45",
		Law:      "قانون المرافعات اليمني",
		Article:  "المادة 45",
		Text:     "يجب أن تشتمل صحيفة الدعوى على بيان المحكمة المرفوعة إليها الدعوى وأسماء الخصوم وصفاتهم وموطن كل منهم وموضوع الدعوى وأسانيدها والطلبات.",
		Category: "إجراءات المحاكمة",
		Keywords: []string{"صحيفة الدعوى", "محكمة", "خصوم", "موضوع", "أسانيد", "طلبات"},
	},
}

var precedents = []models.LegalPrecedent{
	{
		ID:         "prec_156_2019",
		CaseNumber: "156/2019",
		Year:       "2019",
		Court:      "المحكمة العليا",
		Summary:    "قضت المحكمة العليا بأن عقد البيع المسجل لدى كاتب العدل يعتبر حجة قاطعة على الملكية ولا يجوز الطعن فيه إلا بالتزوير.",
		Ruling:     "الحكم لصالح المدعي بإثبات الملكية",
		Keywords:   []string{"عقد بيع", "كاتب العدل", "حجة قاطعة", "ملكية", "تزوير"},
		Category:   "ملكية عقارية",
	},
	{
		ID:         "prec_89_2021",
		CaseNumber: "89/2021",
		Year:       "2021",
		Court:      "محكمة الاستئناف",
		Summary:    "حكمت محكمة الاستئناف بأن الشغل بدون سند قانوني يوجب الإخلاء وأجرة المثل عن فترة الشغل غير المشروع.",
		Ruling:     "إلزام الشاغل بالإخلاء ودفع أجرة المثل",
		Keywords:   []string{"شغل", "سند قانوني", "إخلاء", "أجرة المثل", "غير مشروع"},
		Category:   "إخلاء عقاري",
	},
	{
		ID:         "prec_234_2020",
		CaseNumber: "234/2020",
		Year:       "2020",
		Court:      "المحكمة العليا",
		Summary:    "أكدت المحكمة العليا أن الإنذار العدلي شرط أساسي قبل رفع دعوى الإخلاء، وأن عدم توجيه الإنذار يبطل الدعوى.",
		Ruling:     "بطلان دعوى الإخلاء لعدم توجيه إنذار مسبق",
		Keywords:   []string{"إنذار عدلي", "شرط أساسي", "إخلاء", "بطلان", "دعوى"},
		Category:   "إجراءات قانونية",
	},
}

func keywordMatch(keywords []string, query string) bool {
	for _, keyword := range keywords {
		if strings.Contains(keyword, query) || strings.Contains(query, keyword) {
			return true
		}
	}
	return false
}

// SearchLaws returns every law article matching the query. An article
// matches when a keyword tag is a substring of the query or vice versa;
// with MatchKeywordsOrText the article body is also checked for the query.
func SearchLaws(query string, mode MatchMode) []models.LegalArticle {
	all := make([]models.LegalArticle, 0, len(constitutionLawArticles)+len(civilLawArticles)+len(procedureLawArticles))
	all = append(all, constitutionLawArticles...)
	all = append(all, civilLawArticles...)
	all = append(all, procedureLawArticles...)

	var matches []models.LegalArticle
	for _, article := range all {
		if keywordMatch(article.Keywords, query) {
			matches = append(matches, article)
			continue
		}
		if mode == MatchKeywordsOrText && strings.Contains(article.Text, query) {
			matches = append(matches, article)
		}
	}
	return matches
}

// SearchPrecedents returns every precedent matching the query, with the
// same keyword semantics as SearchLaws; in MatchKeywordsOrText mode the
// precedent summary is also checked.
func SearchPrecedents(query string, mode MatchMode) []models.LegalPrecedent {
	var matches []models.LegalPrecedent
	for _, precedent := range precedents {
		if keywordMatch(precedent.Keywords, query) {
			matches = append(matches, precedent)
			continue
		}
		if mode == MatchKeywordsOrText && strings.Contains(precedent.Summary, query) {
			matches = append(matches, precedent)
		}
	}
	return matches
}
