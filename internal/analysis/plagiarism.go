package analysis

import "strings"

var suspiciousPhrases = []string{
	"according to wikipedia",
	"as stated on the internet",
	"copy and paste",
	"source: google",
}

const plagiarismNote = "Heuristic phrase check only; not a substitute for a plagiarism detection service"

func checkPlagiarismIndicators(text string) *Plagiarism {
	p := &Plagiarism{
		SuspiciousPhrases: []string{},
		RiskLevel:         "low",
		Note:              plagiarismNote,
	}

	lower := strings.ToLower(text)
	for _, phrase := range suspiciousPhrases {
		if strings.Contains(lower, phrase) {
			p.SuspiciousPhrases = append(p.SuspiciousPhrases, phrase)
		}
	}

	if len(p.SuspiciousPhrases) > 0 {
		p.RiskLevel = "high"
	}

	return p
}
