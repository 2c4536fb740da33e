// Package transcript extracts course information from free-form
// transcript or course plan text, either with a deterministic scanner
// or through an LLM provider.
package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/gradpath/internal/catalog"
)

// Source records where a course's details came from.
type Source string

const (
	// SourceCatalog means the code matched a catalog entry.
	SourceCatalog Source = "catalog"
	// SourceText means the details were scraped from the text itself.
	SourceText Source = "text"
)

// Course is one course found in a transcript.
type Course struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Credit     float64 `json:"credit"`
	Source     Source  `json:"source"`
	Confidence float64 `json:"confidence"`
}

// Extraction is the result of scanning transcript text.
type Extraction struct {
	// Codes lists every distinct normalized code in first-seen order.
	Codes []string `json:"codes"`
	// Matched holds courses whose code exists in the catalog.
	Matched []Course `json:"matched"`
	// Unknown holds courses found in the text but not in the catalog.
	Unknown []Course `json:"unknown"`
}

// codePattern matches course codes like "CSE 2215", "CSE2215" or
// "ENG 1011A" anywhere in a line of text.
var codePattern = regexp.MustCompile(`([A-Za-z]{2,4})\s*([0-9]{4}[A-Za-z]?)`)

// defaultCredit is assumed when the text carries no credit near a code.
const defaultCredit = 3

// Scan finds every course code in text, deduplicates on first sight and
// splits the result into catalog matches and unknowns. Unknown courses
// get their name and credit scraped from the neighboring text when
// possible, falling back to "Unknown" and the default credit.
func Scan(cat *catalog.Catalog, text string) Extraction {
	var ex Extraction
	seen := make(map[string]bool)

	for _, m := range codePattern.FindAllStringSubmatch(text, -1) {
		code := strings.ToUpper(m[1]) + " " + strings.ToUpper(m[2])
		if seen[code] {
			continue
		}
		seen[code] = true
		ex.Codes = append(ex.Codes, code)

		if cat != nil {
			if course, ok := cat.Find(code); ok {
				ex.Matched = append(ex.Matched, Course{
					Code:       code,
					Name:       course.Name,
					Credit:     course.Credit,
					Source:     SourceCatalog,
					Confidence: 0.95,
				})
				continue
			}
		}

		name, credit := detailsNear(text, code)
		if name == "" {
			name = "Unknown"
		}
		if credit == 0 {
			credit = defaultCredit
		}
		ex.Unknown = append(ex.Unknown, Course{
			Code:       code,
			Name:       name,
			Credit:     credit,
			Source:     SourceText,
			Confidence: 0.5,
		})
	}

	return ex
}

// detailsNear scrapes a course name and credit from the text following
// a code. Handles shapes like "CSE 1234 Course Name Here 3" and
// "CSE 1234 - Course Name (3 cr)".
func detailsNear(text, code string) (string, float64) {
	escaped := strings.ReplaceAll(regexp.QuoteMeta(code), " ", `\s*`)
	pattern, err := regexp.Compile(`(?i)` + escaped +
		`[\s\-:]+([A-Za-z][A-Za-z\s&,'-]{5,50})(?:[\s(]*([0-9])(?:\s*(?:cr|credits?))?)?`)
	if err != nil {
		return "", 0
	}

	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return "", 0
	}

	name := strings.TrimSpace(m[1])
	var credit float64
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err == nil {
			credit = float64(n)
		}
	}
	return name, credit
}

// All returns matched and unknown courses in one slice, catalog matches
// first.
func (e Extraction) All() []Course {
	out := make([]Course, 0, len(e.Matched)+len(e.Unknown))
	out = append(out, e.Matched...)
	out = append(out, e.Unknown...)
	return out
}

// MatchedCodes returns the codes of catalog-matched courses only.
func (e Extraction) MatchedCodes() []string {
	codes := make([]string, 0, len(e.Matched))
	for _, c := range e.Matched {
		codes = append(codes, c.Code)
	}
	return codes
}

// TotalCredits sums the credits of every extracted course.
func (e Extraction) TotalCredits() float64 {
	var sum float64
	for _, c := range e.All() {
		sum += c.Credit
	}
	return sum
}

// Merge unions extracted and manually entered code lists. Codes are
// normalized before comparison and the first-seen order is kept.
func Merge(extracted, manual []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(extracted)+len(manual))
	for _, list := range [][]string{extracted, manual} {
		for _, code := range list {
			norm := catalog.NormalizeCode(code)
			if norm == "" || seen[norm] {
				continue
			}
			seen[norm] = true
			out = append(out, norm)
		}
	}
	return out
}
