package llm

import (
	"fmt"
	"strings"

	"github.com/verifysense/verifysense/internal/model"
)

// buildExtractionPrompt asks for objective, verifiable assertions only,
// returned as a numbered list so parsing stays trivial.
func buildExtractionPrompt(content string) string {
	return fmt.Sprintf(`Extract the main factual claims from the following text.
A factual claim is a statement that can be verified as true or false.
Focus only on objective, verifiable assertions, not opinions or subjective statements.
Return only the claims as a numbered list, with each claim being concise and focused on a single fact.

Text: %s`, content)
}

// buildExplanationPrompt frames the model as a fact-checking educator and
// requests JSON with a summary and self-verification steps.
func buildExplanationPrompt(claim model.Claim, factChecks []model.FactCheckResult, evidence []model.EvidenceItem, score model.VerificationScore) string {
	var b strings.Builder

	b.WriteString("As a fact-checking educator, explain how the following claim was verified in a clear, educational way.\n\n")
	fmt.Fprintf(&b, "Claim: %q\n", string(claim))

	if len(factChecks) > 0 {
		b.WriteString("\nFact Check Results:\n")
		for _, check := range factChecks {
			publisher := check.PublisherName
			if publisher == "" {
				publisher = "Fact Checker"
			}
			rating := check.Rating
			if rating == "" {
				rating = "No rating"
			}
			fmt.Fprintf(&b, "- %s: %s\n", publisher, rating)
		}
	} else {
		b.WriteString("\nNo direct fact checks were found for this claim.\n")
	}

	if len(evidence) > 0 {
		b.WriteString("\nEvidence Sources:\n")
		for _, item := range evidence {
			title := item.Title
			if title == "" {
				title = "Source"
			}
			snippet := item.Snippet
			if snippet == "" {
				snippet = "No snippet"
			}
			fmt.Fprintf(&b, "- %s: %s\n", title, snippet)
		}
	} else {
		b.WriteString("\nNo supporting evidence was found for this claim.\n")
	}

	fmt.Fprintf(&b, "\nConfidence: %s (%d/100)\n", score.Label, score.Final)

	b.WriteString(`
Create a brief, educational explanation of how this claim was verified. Include:
1. A short summary paragraph explaining the verification result
2. 3-4 clear steps showing how someone could verify this information themselves
3. A brief conclusion with advice on evaluating similar claims

Format the response as JSON with two fields:
- summary: A concise paragraph explaining the verification result
- steps: An array of 3-4 verification steps anyone could follow`)

	return b.String()
}

// parseNumberedList pulls claims out of a numbered-list response. When the
// model ignored the format, the whole response counts as one claim.
func parseNumberedList(text string) []model.Claim {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var claims []model.Claim
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !startsWithDigit(line) {
			continue
		}
		// Strip "1." / "2)" style numbering
		rest := strings.TrimLeft(line, "0123456789")
		rest = strings.TrimLeft(rest, ".) ")
		if rest != "" {
			claims = append(claims, model.Claim(rest))
		}
	}

	if len(claims) == 0 {
		claims = []model.Claim{model.Claim(text)}
	}
	return claims
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
