// Package feedback turns a feature bundle and grading result into
// human-readable commentary. Every category is deterministic except the
// optional narrative, which comes from an external generator and degrades
// to an inline message when unavailable.
package feedback

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/graderly/essay-engine/internal/analysis"
	"github.com/graderly/essay-engine/internal/grading"
	"github.com/graderly/essay-engine/internal/narrative"
)

// Feedback is the complete commentary set for a graded essay.
type Feedback struct {
	Strengths         string `json:"strengths"`
	Improvements      string `json:"improvements"`
	Suggestions       string `json:"suggestions"`
	GrammarFeedback   string `json:"grammar_feedback"`
	StyleFeedback     string `json:"style_feedback"`
	StructureFeedback string `json:"structure_feedback"`
	Narrative         string `json:"narrative,omitempty"`
	NarrativeProvider string `json:"narrative_provider,omitempty"`
}

// Builder assembles feedback. A nil generator disables the narrative
// section entirely.
type Builder struct {
	generator narrative.Generator
}

// NewBuilder creates a feedback builder. generator may be nil.
func NewBuilder(generator narrative.Generator) *Builder {
	return &Builder{generator: generator}
}

// Build produces every feedback category. Narrative failures never fail the
// call; the section carries an inline notice instead.
func (b *Builder) Build(ctx context.Context, text string, bundle *analysis.FeatureBundle, result *grading.Result, prompt string) (*Feedback, error) {
	if err := bundle.Validate(); err != nil {
		return nil, err
	}

	fb := &Feedback{
		Strengths:         identifyStrengths(bundle),
		Improvements:      identifyImprovements(bundle, result),
		Suggestions:       generateSuggestions(bundle),
		GrammarFeedback:   grammarFeedback(bundle),
		StyleFeedback:     styleFeedback(bundle),
		StructureFeedback: structureFeedback(bundle),
	}

	if b.generator != nil {
		req := narrative.Request{
			EssayText:    text,
			Prompt:       prompt,
			OverallScore: result.OverallScore,
			LetterGrade:  result.LetterGrade,
			WordCount:    bundle.BasicStats.WordCount,
		}
		content, err := b.generator.Generate(ctx, req)
		if err != nil {
			fb.Narrative = fmt.Sprintf("Narrative feedback is unavailable: %v", err)
			fb.NarrativeProvider = "unavailable"
		} else {
			fb.Narrative = content
			fb.NarrativeProvider = b.generator.Name()
		}
	}

	return fb, nil
}

func identifyStrengths(b *analysis.FeatureBundle) string {
	var strengths []string

	switch wc := b.BasicStats.WordCount; {
	case wc >= 500:
		strengths = append(strengths, "**Adequate Length**: Your essay meets the expected word count, demonstrating thorough development of ideas.")
	case wc >= 300:
		strengths = append(strengths, "**Good Length**: Your essay has a solid word count that allows for meaningful discussion of the topic.")
	}

	switch ld := b.Vocabulary.LexicalDiversity; {
	case ld > 0.6:
		strengths = append(strengths, "**Rich Vocabulary**: You demonstrate excellent vocabulary diversity, using varied and sophisticated word choices.")
	case ld > 0.4:
		strengths = append(strengths, "**Good Vocabulary**: Your vocabulary shows good variety and appropriate word selection.")
	}

	if b.Vocabulary.ComplexWordRatio > 0.15 {
		strengths = append(strengths, "**Academic Language**: You effectively use complex vocabulary that enhances the sophistication of your writing.")
	}

	if b.Structure.HasClearIntroduction {
		strengths = append(strengths, "**Strong Introduction**: Your essay begins with a clear introduction that sets up your topic effectively.")
	}
	if b.Structure.HasClearConclusion {
		strengths = append(strengths, "**Effective Conclusion**: Your essay ends with a conclusion that brings closure to your discussion.")
	}
	if b.Structure.TransitionWordCount >= 5 {
		strengths = append(strengths, "**Good Flow**: You use transition words effectively to connect ideas and create smooth flow between paragraphs.")
	}

	if b.Readability.FleschReadingEase > 60 {
		strengths = append(strengths, "**Clear Writing**: Your writing is clear and accessible, making it easy for readers to follow your ideas.")
	}

	if b.Grammar != nil {
		switch ic := b.Grammar.IssueCount; {
		case ic <= 2:
			strengths = append(strengths, "**Strong Mechanics**: Your essay demonstrates excellent grammar and mechanical accuracy.")
		case ic <= 5:
			strengths = append(strengths, "**Good Mechanics**: Your essay shows solid command of grammar and writing conventions.")
		}
	}

	if b.Style != nil && b.Style.SentenceVarietyScore > 10 {
		strengths = append(strengths, "**Sentence Variety**: You demonstrate good sentence variety, creating engaging and dynamic prose.")
	}

	if b.Sentiment != nil {
		switch b.Sentiment.OverallTone {
		case "positive":
			strengths = append(strengths, "**Positive Tone**: Your writing maintains an engaging and optimistic tone throughout.")
		case "neutral":
			strengths = append(strengths, "**Balanced Tone**: Your writing maintains an appropriate and balanced tone for academic discourse.")
		}
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "**Effort and Completion**: You have completed the assignment and demonstrated effort in your writing.")
	}

	return strings.Join(strengths, "\n\n")
}

func identifyImprovements(b *analysis.FeatureBundle, result *grading.Result) string {
	var improvements []string

	if b.BasicStats.WordCount < 250 {
		improvements = append(improvements, "**Essay Length**: Consider expanding your essay to develop your ideas more fully. Aim for at least 300-500 words to provide adequate depth and detail.")
	}

	if !b.Structure.HasClearIntroduction {
		improvements = append(improvements, "**Introduction**: Strengthen your introduction by clearly stating your main topic or thesis. A strong opening paragraph should engage the reader and preview your main points.")
	}
	if !b.Structure.HasClearConclusion {
		improvements = append(improvements, "**Conclusion**: Add a more definitive conclusion that summarizes your main points and provides closure. Avoid simply restating your introduction.")
	}
	if b.Structure.ParagraphCount < 3 {
		improvements = append(improvements, "**Paragraph Structure**: Organize your essay into more distinct paragraphs. Each paragraph should focus on one main idea and include supporting details.")
	}
	if b.Structure.TransitionWordCount < 2 {
		improvements = append(improvements, "**Transitions**: Use more transition words and phrases to connect your ideas and improve the flow between paragraphs (e.g., 'furthermore,' 'however,' 'in addition').")
	}

	if b.Vocabulary.LexicalDiversity < 0.4 {
		improvements = append(improvements, "**Vocabulary Variety**: Expand your vocabulary by using more varied word choices. Avoid repeating the same words frequently and consider using synonyms.")
	}

	if b.Grammar != nil {
		switch ic := b.Grammar.IssueCount; {
		case ic > 10:
			improvements = append(improvements, "**Grammar and Mechanics**: Focus on improving grammar, spelling, and punctuation. Consider proofreading more carefully or using grammar-checking tools.")
		case ic > 5:
			improvements = append(improvements, "**Proofreading**: Review your essay for minor grammar and mechanical errors. A final proofread can help catch small mistakes.")
		}
	}

	if b.Readability.FleschReadingEase < 30 {
		improvements = append(improvements, "**Sentence Clarity**: Some sentences may be too complex. Consider breaking down long, complicated sentences into shorter, clearer ones.")
	}

	if b.Style != nil {
		if b.Style.SentenceStarterVariety < 0.5 {
			improvements = append(improvements, "**Sentence Variety**: Vary how you begin your sentences. Starting too many sentences the same way can make your writing feel repetitive.")
		}

		types := issueTypeSet(b.Style.Issues)
		if types["Overused Word"] {
			improvements = append(improvements, "**Word Choice**: Avoid overusing certain words. Look for opportunities to use synonyms and vary your language.")
		}
		if types["Cliché"] {
			improvements = append(improvements, "**Original Language**: Replace clichéd phrases with more original and specific language that better expresses your ideas.")
		}
	}

	if result != nil && result.OverallScore < 70 {
		improvements = append(improvements, "**Overall Development**: Focus on developing your ideas more thoroughly with specific examples, details, and explanations to support your main points.")
	}

	if len(improvements) == 0 {
		improvements = append(improvements, "**Continue Refining**: While your essay shows good effort, continue to refine your writing by focusing on clarity, detail, and precision in your expression.")
	}

	return strings.Join(improvements, "\n\n")
}

func generateSuggestions(b *analysis.FeatureBundle) string {
	var suggestions []string

	if b.BasicStats.WordCount < 400 {
		suggestions = append(suggestions, "**Expand with Examples**: Add specific examples, anecdotes, or evidence to support your main points and reach a more substantial word count.")
	}

	if b.Structure.ParagraphCount < 4 {
		suggestions = append(suggestions, "**Paragraph Development**: Consider organizing your essay into 4-5 paragraphs: introduction, 2-3 body paragraphs (each with one main idea), and conclusion.")
	}

	if b.Grammar != nil {
		counts := issueTypeCounts(b.Grammar.Issues)
		if counts["Passive Voice"] > 2 {
			suggestions = append(suggestions, "**Active Voice**: Try converting passive voice sentences to active voice for stronger, more direct writing. For example, change 'The ball was thrown by John' to 'John threw the ball.'")
		}
		if counts["Long Sentence"] > 1 {
			suggestions = append(suggestions, "**Sentence Length**: Break down overly long sentences into shorter, more manageable ones. Aim for an average of 15-20 words per sentence.")
		}
	}

	if b.Vocabulary.ComplexWordRatio < 0.1 {
		suggestions = append(suggestions, "**Academic Vocabulary**: Incorporate more sophisticated vocabulary appropriate to your topic. Use a thesaurus to find more precise or academic alternatives to common words.")
	}

	if b.Readability.FleschKincaidGrade > 12 {
		suggestions = append(suggestions, "**Simplify Complex Ideas**: While sophisticated vocabulary is good, ensure your ideas are clearly expressed. Consider breaking complex concepts into simpler, more digestible parts.")
	}

	if b.Structure.TransitionWordCount < 3 {
		suggestions = append(suggestions, "**Add Transitions**: Use transitional phrases to connect your ideas: 'First,' 'Additionally,' 'However,' 'In contrast,' 'Furthermore,' 'Finally,' etc.")
	}

	suggestions = append(suggestions,
		"**Support with Evidence**: Strengthen your arguments with specific examples, statistics, quotes, or personal experiences that directly relate to your main points.",
		"**Read Aloud**: Read your essay aloud to catch awkward phrasing, run-on sentences, and areas where the flow could be improved.",
		"**Peer Review**: Have someone else read your essay and provide feedback on clarity and persuasiveness of your arguments.",
		"**Final Proofread**: After making content revisions, do a final proofread focusing specifically on grammar, spelling, and punctuation errors.",
	)

	return strings.Join(suggestions, "\n\n")
}

func grammarFeedback(b *analysis.FeatureBundle) string {
	if b.Grammar == nil || len(b.Grammar.Issues) == 0 {
		return "**Excellent Grammar**: Your essay demonstrates strong command of grammar and mechanics with minimal errors."
	}

	counts := issueTypeCounts(b.Grammar.Issues)
	var parts []string

	for _, issueType := range sortedKeys(counts) {
		count := counts[issueType]
		switch issueType {
		case "Long Sentence":
			parts = append(parts, fmt.Sprintf("**Long Sentences** (%d instances): Consider breaking down lengthy sentences for better readability. Aim for 15-25 words per sentence on average.", count))
		case "Short Sentence":
			parts = append(parts, fmt.Sprintf("**Short Sentences** (%d instances): Some sentences are very brief. Consider combining related short sentences or adding more detail.", count))
		case "Passive Voice":
			parts = append(parts, fmt.Sprintf("**Passive Voice** (%d instances): Try using active voice for more direct and engaging writing. Active voice typically makes your writing stronger and clearer.", count))
		case "Sentence Fragment":
			parts = append(parts, fmt.Sprintf("**Sentence Fragments** (%d instances): Ensure all sentences are complete with a subject and predicate. Fragments can confuse readers.", count))
		default:
			parts = append(parts, fmt.Sprintf("**%s** (%d instances): Review these areas for improvement.", issueType, count))
		}
	}

	return strings.Join(parts, "\n\n")
}

func styleFeedback(b *analysis.FeatureBundle) string {
	if b.Style == nil {
		return "**Strong Style**: Your writing demonstrates good stylistic choices with appropriate variety and voice."
	}

	var parts []string

	switch v := b.Style.SentenceVarietyScore; {
	case v < 5:
		parts = append(parts, "**Sentence Variety**: Your sentences tend to be similar in length. Try varying sentence length and structure to create more engaging prose.")
	case v > 15:
		parts = append(parts, "**Sentence Consistency**: While variety is good, ensure your sentences maintain a consistent style appropriate for your audience.")
	default:
		parts = append(parts, "**Good Sentence Variety**: You demonstrate effective variation in sentence length and structure.")
	}

	if b.Style.SentenceStarterVariety < 0.6 {
		parts = append(parts, "**Sentence Beginnings**: Vary how you start your sentences. Avoid beginning too many sentences with the same words or patterns.")
	}

	types := issueTypeSet(b.Style.Issues)
	if types["Overused Word"] {
		parts = append(parts, "**Word Repetition**: You repeat certain words frequently. Use synonyms and varied vocabulary to avoid monotony.")
	}
	if types["Cliché"] {
		parts = append(parts, "**Clichéd Language**: Replace overused phrases with more original and specific language.")
	}

	if len(parts) == 0 {
		parts = append(parts, "**Strong Style**: Your writing demonstrates good stylistic choices with appropriate variety and voice.")
	}

	return strings.Join(parts, "\n\n")
}

func structureFeedback(b *analysis.FeatureBundle) string {
	var parts []string

	switch pc := b.Structure.ParagraphCount; {
	case pc < 3:
		parts = append(parts, "**Paragraph Organization**: Organize your essay into more distinct paragraphs. A typical essay should have an introduction, body paragraphs (2-3), and a conclusion.")
	case pc > 7:
		parts = append(parts, "**Paragraph Consolidation**: Consider combining some paragraphs. Too many short paragraphs can make your essay feel choppy.")
	}

	if len(b.Structure.ParagraphLengths) > 0 {
		switch avg := b.Structure.AvgParagraphLength; {
		case avg < 30:
			parts = append(parts, "**Paragraph Development**: Develop your paragraphs more fully. Each paragraph should contain 50-100 words and focus on one main idea with supporting details.")
		case avg > 150:
			parts = append(parts, "**Paragraph Length**: Some paragraphs may be too long. Consider breaking lengthy paragraphs into smaller, more focused ones.")
		}
	}

	if !b.Structure.HasClearIntroduction {
		parts = append(parts, "**Introduction**: Strengthen your opening paragraph. A good introduction should engage the reader, introduce your topic, and preview your main points.")
	}
	if !b.Structure.HasClearConclusion {
		parts = append(parts, "**Conclusion**: Add a stronger conclusion that summarizes your main points and provides a sense of closure. Avoid simply repeating your introduction.")
	}

	switch tc := b.Structure.TransitionWordCount; {
	case tc < 2:
		parts = append(parts, "**Transitions**: Use more transitional words and phrases to connect your ideas and improve flow between paragraphs.")
	case tc > 10:
		parts = append(parts, "**Transition Balance**: While transitions are important, ensure they feel natural and don't overwhelm your writing.")
	}

	if len(parts) == 0 {
		parts = append(parts, "**Well-Structured**: Your essay demonstrates good organizational structure with clear paragraphs and logical flow.")
	}

	return strings.Join(parts, "\n\n")
}

func issueTypeSet(issues []analysis.Issue) map[string]bool {
	types := make(map[string]bool, len(issues))
	for _, issue := range issues {
		types[issue.Type] = true
	}
	return types
}

func issueTypeCounts(issues []analysis.Issue) map[string]int {
	counts := make(map[string]int, len(issues))
	for _, issue := range issues {
		counts[issue.Type]++
	}
	return counts
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
