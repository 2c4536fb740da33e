package transcript

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/abhisek/gradpath/internal/catalog"
	"github.com/abhisek/gradpath/internal/llm"
)

func scanCatalog() *catalog.Catalog {
	core := []catalog.Course{
		{Code: "CSE 1111", Name: "Structured Programming", Credit: 3, Trimester: 1},
		{Code: "CSE 2215", Name: "Data Structures", Credit: 3, Trimester: 3},
		{Code: "ENG 1011", Name: "English I", Credit: 3, Trimester: 1},
	}
	return catalog.New(core, nil, nil)
}

func TestScan_MatchesKnownCourses(t *testing.T) {
	text := "Completed: CSE 1111 Structured Programming A\nCSE2215 Data Structures B+\n"

	ex := Scan(scanCatalog(), text)

	if len(ex.Matched) != 2 {
		t.Fatalf("Matched = %v, want two", ex.Matched)
	}
	if ex.Matched[0].Code != "CSE 1111" || ex.Matched[1].Code != "CSE 2215" {
		t.Errorf("codes = %v", ex.Codes)
	}
	for _, c := range ex.Matched {
		if c.Source != SourceCatalog {
			t.Errorf("%s source = %v, want catalog", c.Code, c.Source)
		}
		if c.Confidence != 0.95 {
			t.Errorf("%s confidence = %v", c.Code, c.Confidence)
		}
	}
	// Catalog details win over the text.
	if ex.Matched[1].Name != "Data Structures" || ex.Matched[1].Credit != 3 {
		t.Errorf("matched course = %+v", ex.Matched[1])
	}
}

func TestScan_DeduplicatesFirstSeen(t *testing.T) {
	text := "CSE 1111 appears here and cse 1111 appears again and CSE1111 once more"

	ex := Scan(scanCatalog(), text)
	if len(ex.Codes) != 1 {
		t.Errorf("Codes = %v, want one entry", ex.Codes)
	}
}

func TestScan_UnknownCourseScrapesDetails(t *testing.T) {
	text := "MAT 2205 Probability and Statistics 3 cr"

	ex := Scan(scanCatalog(), text)
	if len(ex.Unknown) != 1 {
		t.Fatalf("Unknown = %v, want one", ex.Unknown)
	}
	c := ex.Unknown[0]
	if c.Code != "MAT 2205" {
		t.Errorf("code = %q", c.Code)
	}
	if c.Name != "Probability and Statistics" {
		t.Errorf("name = %q", c.Name)
	}
	if c.Credit != 3 {
		t.Errorf("credit = %v", c.Credit)
	}
	if c.Source != SourceText || c.Confidence != 0.5 {
		t.Errorf("course = %+v", c)
	}
}

func TestScan_UnknownCourseFallsBackToDefaults(t *testing.T) {
	ex := Scan(scanCatalog(), "XYZ 9999")
	if len(ex.Unknown) != 1 {
		t.Fatalf("Unknown = %v", ex.Unknown)
	}
	if ex.Unknown[0].Name != "Unknown" {
		t.Errorf("name = %q, want Unknown", ex.Unknown[0].Name)
	}
	if ex.Unknown[0].Credit != 3 {
		t.Errorf("credit = %v, want the default 3", ex.Unknown[0].Credit)
	}
}

func TestScan_NoCodes(t *testing.T) {
	ex := Scan(scanCatalog(), "nothing that looks like a course here")
	if len(ex.Codes) != 0 || len(ex.Matched) != 0 || len(ex.Unknown) != 0 {
		t.Errorf("expected empty extraction, got %+v", ex)
	}
}

func TestExtraction_Accessors(t *testing.T) {
	ex := Scan(scanCatalog(), "CSE 1111, ENG 1011 and XYZ 9999")

	if got := ex.MatchedCodes(); len(got) != 2 {
		t.Errorf("MatchedCodes = %v", got)
	}
	if got := ex.All(); len(got) != 3 {
		t.Errorf("All = %v", got)
	}
	if got := ex.TotalCredits(); got != 9 {
		t.Errorf("TotalCredits = %v, want 9", got)
	}
}

func TestMerge_UnionsAndNormalizes(t *testing.T) {
	got := Merge([]string{"cse1111", "ENG 1011"}, []string{"CSE 1111", "mat2205"})
	want := []string{"CSE 1111", "ENG 1011", "MAT 2205"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMerge_Empty(t *testing.T) {
	if got := Merge(nil, nil); len(got) != 0 {
		t.Errorf("Merge(nil, nil) = %v", got)
	}
}

func TestExtractor_FoldsLLMResponse(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"courses": []map[string]any{
			{"code": "cse1111", "name": "", "credit": 0},
			{"code": "MAT 2205", "name": "Probability", "credit": 3},
			{"code": "CSE 1111", "name": "dup", "credit": 3},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})

	ex, err := NewExtractor(mock, DefaultExtractorConfig()).
		Extract(context.Background(), scanCatalog(), "raw transcript text")
	if err != nil {
		t.Fatal(err)
	}

	if len(ex.Codes) != 2 {
		t.Fatalf("Codes = %v, want two after normalization and dedup", ex.Codes)
	}
	if len(ex.Matched) != 1 || ex.Matched[0].Code != "CSE 1111" {
		t.Errorf("Matched = %v", ex.Matched)
	}
	// Catalog details replace whatever the LLM reported.
	if ex.Matched[0].Name != "Structured Programming" {
		t.Errorf("matched name = %q", ex.Matched[0].Name)
	}
	if len(ex.Unknown) != 1 || ex.Unknown[0].Name != "Probability" {
		t.Errorf("Unknown = %v", ex.Unknown)
	}

	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d", mock.CallCount())
	}
	if mock.Calls[0].Schema != CourseListSchema {
		t.Error("request did not carry the course list schema")
	}
}

func TestExtractor_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	_, err := NewExtractor(mock, DefaultExtractorConfig()).
		Extract(context.Background(), scanCatalog(), "text")
	if err == nil {
		t.Fatal("expected error")
	}
}
