package rubric

// builtinRubrics are the four rubrics every registry starts with. Weights
// within a rubric sum to 1.0 and every criterion is scored out of 25.
var builtinRubrics = []Rubric{
	{
		Key:         "standard",
		Name:        "Standard Essay",
		Description: "General purpose essay evaluation",
		Criteria: []Criterion{
			{
				Key:         "content",
				Name:        "Content & Ideas",
				Role:        RoleContent,
				Weight:      0.35,
				MaxScore:    25,
				Description: "Quality of ideas, depth of analysis, and relevance to topic",
			},
			{
				Key:         "organization",
				Name:        "Organization & Structure",
				Role:        RoleOrganization,
				Weight:      0.25,
				MaxScore:    25,
				Description: "Logical flow, paragraph structure, and overall organization",
			},
			{
				Key:         "grammar",
				Name:        "Grammar & Mechanics",
				Role:        RoleGrammar,
				Weight:      0.20,
				MaxScore:    25,
				Description: "Grammar, spelling, punctuation, and sentence structure",
			},
			{
				Key:         "style",
				Name:        "Style & Voice",
				Role:        RoleStyle,
				Weight:      0.20,
				MaxScore:    25,
				Description: "Writing style, voice, word choice, and clarity",
			},
		},
	},
	{
		Key:         "academic",
		Name:        "Academic Essay",
		Description: "For academic and research papers",
		Criteria: []Criterion{
			{
				Key:         "thesis",
				Name:        "Thesis & Argument",
				Role:        RoleContent,
				Weight:      0.30,
				MaxScore:    25,
				Description: "Clear thesis statement and argument development",
			},
			{
				Key:         "evidence",
				Name:        "Evidence & Support",
				Role:        RoleEvidence,
				Weight:      0.25,
				MaxScore:    25,
				Description: "Use of evidence, examples, and supporting details",
			},
			{
				Key:         "analysis",
				Name:        "Critical Analysis",
				Role:        RoleAnalysis,
				Weight:      0.25,
				MaxScore:    25,
				Description: "Depth of analysis and critical thinking",
			},
			{
				Key:         "mechanics",
				Name:        "Writing Mechanics",
				Role:        RoleGrammar,
				Weight:      0.20,
				MaxScore:    25,
				Description: "Grammar, style, and academic writing conventions",
			},
		},
	},
	{
		Key:         "creative_writing",
		Name:        "Creative Writing",
		Description: "For creative and narrative writing",
		Criteria: []Criterion{
			{
				Key:         "creativity",
				Name:        "Creativity & Originality",
				Role:        RoleCreativity,
				Weight:      0.30,
				MaxScore:    25,
				Description: "Original ideas, creative expression, and imagination",
			},
			{
				Key:         "narrative",
				Name:        "Narrative Structure",
				Role:        RoleOrganization,
				Weight:      0.25,
				MaxScore:    25,
				Description: "Plot development, character development, and pacing",
			},
			{
				Key:         "language",
				Name:        "Language & Style",
				Role:        RoleStyle,
				Weight:      0.25,
				MaxScore:    25,
				Description: "Descriptive language, literary devices, and voice",
			},
			{
				Key:         "mechanics",
				Name:        "Technical Skills",
				Role:        RoleGrammar,
				Weight:      0.20,
				MaxScore:    25,
				Description: "Grammar, spelling, and writing conventions",
			},
		},
	},
	{
		Key:         "argumentative",
		Name:        "Argumentative Essay",
		Description: "For persuasive and argumentative essays",
		Criteria: []Criterion{
			{
				Key:         "claim",
				Name:        "Claim & Position",
				Role:        RoleClaim,
				Weight:      0.25,
				MaxScore:    25,
				Description: "Clear claim and position on the issue",
			},
			{
				Key:         "reasoning",
				Name:        "Reasoning & Logic",
				Role:        RoleReasoning,
				Weight:      0.30,
				MaxScore:    25,
				Description: "Logical reasoning and argument development",
			},
			{
				Key:         "evidence",
				Name:        "Evidence & Sources",
				Role:        RoleEvidence,
				Weight:      0.25,
				MaxScore:    25,
				Description: "Quality and relevance of evidence and sources",
			},
			{
				Key:         "counterargument",
				Name:        "Counterargument",
				Role:        RoleCounterargument,
				Weight:      0.20,
				MaxScore:    25,
				Description: "Acknowledgment and refutation of opposing views",
			},
		},
	},
}
