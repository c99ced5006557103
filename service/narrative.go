package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"mizan-backend/models"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// NarrativeInput carries everything the narrative stage needs.
type NarrativeInput struct {
	Merged       *models.ExtractedDocument
	Description  string
	CaseType     models.CaseType
	Constitution []models.ConstitutionArticle
	Laws         []models.LegalArticle
	Precedents   []models.LegalPrecedent
}

// Narrative is the assembled free-text portion of an analysis.
type Narrative struct {
	CaseSummary        string
	DisputeType        string
	Claims             []string
	Defenses           []string
	LegalAnalysis      string
	RecommendedActions []string
}

// NarrativeGenerator assembles the narrative fields of an analysis result.
type NarrativeGenerator interface {
	Generate(ctx context.Context, input NarrativeInput) (*Narrative, error)
}

// TemplateNarrative is the default generator: deterministic template
// assembly over the merged extraction, with no external calls.
type TemplateNarrative struct{}

// NewTemplateNarrative creates the template-based narrative generator.
func NewTemplateNarrative() *TemplateNarrative {
	return &TemplateNarrative{}
}

type disputeRule struct {
	keywords []string
	label    string
}

// Dispute classification cascade; the first branch whose keyword occurs in
// the merged text wins.
var disputeRules = []disputeRule{
	{[]string{"ملكية", "إخلاء"}, "نزاع ملكية عقارية"},
	{[]string{"عقد"}, "نزاع تعاقدي"},
	{[]string{"ميراث", "وراثة"}, "نزاع ميراث"},
	{[]string{"زواج", "طلاق"}, "نزاع أحوال شخصية"},
}

const disputeGeneral = "نزاع قانوني عام"

var claimRules = []disputeRule{
	{[]string{"ملكية"}, "إثبات ملكية المدعي للعين موضوع النزاع"},
	{[]string{"إخلاء"}, "إخلاء المدعى عليه من العين المتنازع عليها"},
	{[]string{"تعويض"}, "التعويض عن الأضرار المترتبة على فعل المدعى عليه"},
	{[]string{"أجرة المثل"}, "إلزام المدعى عليه بدفع أجرة المثل"},
	{[]string{"عقد"}, "تنفيذ الالتزامات التعاقدية المتفق عليها"},
}

const claimFallback = "الحكم للمدعي بطلباته الواردة في صحيفة الدعوى"

var defenseRules = []disputeRule{
	{[]string{"ملكية"}, "إنكار ملكية المدعي للعين موضوع النزاع"},
	{[]string{"إخلاء"}, "الدفع بوجود سند قانوني للشغل"},
	{[]string{"عقد"}, "الدفع بصحة العقد ونفاذه بين الطرفين"},
	{[]string{"تزوير"}, "الطعن بالتزوير في المستندات المقدمة"},
}

const defenseFallback = "إنكار الادعاءات الواردة في صحيفة الدعوى"

// Generate implements NarrativeGenerator.
func (t *TemplateNarrative) Generate(ctx context.Context, input NarrativeInput) (*Narrative, error) {
	text := input.Merged.ExtractedText
	disputeType := classifyDispute(text)

	return &Narrative{
		CaseSummary:        buildSummary(input, disputeType),
		DisputeType:        disputeType,
		Claims:             cascade(text, claimRules, claimFallback),
		Defenses:           cascade(text, defenseRules, defenseFallback),
		LegalAnalysis:      buildLegalAnalysis(input),
		RecommendedActions: recommendActions(text, disputeType),
	}, nil
}

func classifyDispute(text string) string {
	for _, rule := range disputeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.label
			}
		}
	}
	return disputeGeneral
}

// cascade collects the label of every rule with a keyword hit, falling back
// to a single fixed entry when nothing matches.
func cascade(text string, rules []disputeRule, fallback string) []string {
	var hits []string
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				hits = append(hits, rule.label)
				break
			}
		}
	}
	if len(hits) == 0 {
		return []string{fallback}
	}
	return hits
}

func buildSummary(input NarrativeInput, disputeType string) string {
	plaintiff := input.Merged.Parties.Plaintiff
	if plaintiff == "" {
		plaintiff = "غير محدد"
	}
	defendant := input.Merged.Parties.Defendant
	if defendant == "" {
		defendant = "غير محدد"
	}

	summary := fmt.Sprintf("%s بين المدعي %s والمدعى عليه %s.", disputeType, plaintiff, defendant)
	if len(input.Merged.Dates) > 0 {
		summary += fmt.Sprintf(" بدأ النزاع بتاريخ %s.", input.Merged.Dates[0])
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		summary += " " + truncate(desc, 200)
	}
	return summary
}

func buildLegalAnalysis(input NarrativeInput) string {
	var b strings.Builder

	if len(input.Constitution) > 0 {
		b.WriteString("الأساس الدستوري:\n")
		for _, article := range input.Constitution {
			fmt.Fprintf(&b, "- المادة %d (%s): %s\n", article.Number, article.Title, truncate(article.Text, 100))
		}
	}
	if len(input.Laws) > 0 {
		b.WriteString("القوانين المطبقة:\n")
		for _, article := range input.Laws {
			fmt.Fprintf(&b, "- %s %s: %s\n", article.Law, article.Article, truncate(article.Text, 100))
		}
	}
	if len(input.Precedents) > 0 {
		b.WriteString("السوابق القضائية:\n")
		for _, precedent := range input.Precedents {
			fmt.Fprintf(&b, "- %s (%s): %s\n", precedent.CaseNumber, precedent.Court, truncate(precedent.Summary, 100))
		}
	}

	return b.String()
}

func recommendActions(text, disputeType string) []string {
	actions := []string{
		"جمع وتوثيق جميع المستندات المؤيدة للدعوى لدى كاتب العدل",
	}
	if strings.Contains(text, "إخلاء") {
		actions = append(actions, "توجيه إنذار عدلي للمدعى عليه قبل رفع الدعوى")
	}
	actions = append(actions,
		"رفع الدعوى أمام المحكمة المختصة",
		fmt.Sprintf("الاستعانة بمحامٍ متخصص في قضايا %s", disputeType),
	)
	return actions
}

// truncate shortens s to limit runes, appending an ellipsis when cut.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

// GeminiNarrative decorates the template narrative with a model-written
// legal analysis when a Gemini client is configured. The structured fields
// stay deterministic; API failures fall back to the template text.
type GeminiNarrative struct {
	client   *genai.Client
	model    string
	fallback *TemplateNarrative
	logger   *zap.Logger
}

// NewGeminiNarrative creates a Gemini-backed narrative generator.
func NewGeminiNarrative(client *genai.Client, model string, logger *zap.Logger) *GeminiNarrative {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiNarrative{
		client:   client,
		model:    model,
		fallback: NewTemplateNarrative(),
		logger:   logger,
	}
}

// Generate implements NarrativeGenerator.
func (g *GeminiNarrative) Generate(ctx context.Context, input NarrativeInput) (*Narrative, error) {
	narrative, err := g.fallback.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	if g.client == nil {
		return narrative, nil
	}

	prompt := fmt.Sprintf(`بصفتك خبيرًا قانونيًا يمنيًا متخصصًا، قدم تحليلًا قانونيًا موجزًا للقضية التالية.

النص المستخرج من المستندات (أول 1000 حرف): %s
نوع النزاع: %s
الأطراف: المدعي: %s، المدعى عليه: %s`,
		truncate(input.Merged.ExtractedText, 1000),
		narrative.DisputeType,
		orUnknown(input.Merged.Parties.Plaintiff),
		orUnknown(input.Merged.Parties.Defendant))

	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Warn("gemini narrative failed, using template analysis", zap.Error(err))
		return narrative, nil
	}

	if text := firstCandidateText(resp); text != "" {
		narrative.LegalAnalysis = text
	}
	return narrative, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "غير محدد"
	}
	return s
}

func firstCandidateText(resp *genai.GenerateContentResponse) string {
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				return string(text)
			}
		}
	}
	return ""
}
