package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadInternships(t *testing.T) {
	data := `[
  {
    "id": "int-001",
    "title": "Data Analyst Intern",
    "organization": "Acme Analytics",
    "location": "Nairobi, Kenya",
    "education_levels": ["Bachelor's", "Diploma"],
    "skills": ["python", "sql"],
    "interests": ["ai"],
    "description": "Analyze things.",
    "compensation": "Stipend",
    "delivery_mode": "hybrid"
  },
  {
    "id": "int-002",
    "title": "Field Intern",
    "organization": "AgriCo",
    "location": "Eldoret",
    "education_levels": ["Certificate"],
    "skills": ["surveying"],
    "interests": ["agriculture"]
  }
]`

	path := filepath.Join(t.TempDir(), "internships.json")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := LoadInternships(path)
	if err != nil {
		t.Fatalf("LoadInternships: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("loaded %d internships, want 2", len(items))
	}
	if items[0].ID != "int-001" || items[0].DeliveryMode != "hybrid" {
		t.Errorf("first item = %+v", items[0])
	}
	if items[1].Compensation != "Unknown" || items[1].DeliveryMode != "Unknown" {
		t.Errorf("missing fields should default to Unknown, got %+v", items[1])
	}
}

func TestLoadInternships_Missing(t *testing.T) {
	if _, err := LoadInternships(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadInternships on a missing file = nil error")
	}
}

const careersCSV = `CandidateID,Name,Age,Education,Skills,Interests,Recommended_Career,Recommendation_Score
c-1,Amina,23,Bachelor's, python; sql ,ai; ml,Data Scientist,0.91
c-2,Brian,25,Diploma,html; css,design,Web Designer,0.84
c-3,Carol,22,Bachelor's,python,data,Data Scientist,0.77
`

func TestParseCareers(t *testing.T) {
	careers, err := ParseCareers(strings.NewReader(careersCSV))
	if err != nil {
		t.Fatalf("ParseCareers: %v", err)
	}

	if careers.Len() != 3 {
		t.Errorf("Len() = %d, want 3", careers.Len())
	}

	labels := careers.Labels()
	want := []string{"Data Scientist", "Web Designer"}
	if len(labels) != len(want) || labels[0] != want[0] || labels[1] != want[1] {
		t.Errorf("Labels() = %v, want %v (distinct, first-seen order)", labels, want)
	}
}

func TestParseCareers_FirstRowWins(t *testing.T) {
	careers, err := ParseCareers(strings.NewReader(careersCSV))
	if err != nil {
		t.Fatalf("ParseCareers: %v", err)
	}

	rec := careers.RecordFor("Data Scientist")
	if rec == nil {
		t.Fatal("RecordFor returned nil for a known label")
	}
	if rec.CandidateID != "c-1" {
		t.Errorf("RecordFor returned row %s, want the first row c-1", rec.CandidateID)
	}
	if rec.Skills != "python; sql" {
		t.Errorf("Skills = %q, want trimmed cell contents", rec.Skills)
	}
	if rec.Age != 23 {
		t.Errorf("Age = %d, want 23", rec.Age)
	}
}

func TestParseCareers_UnknownLabel(t *testing.T) {
	careers, err := ParseCareers(strings.NewReader(careersCSV))
	if err != nil {
		t.Fatalf("ParseCareers: %v", err)
	}
	if rec := careers.RecordFor("Astronaut"); rec != nil {
		t.Errorf("RecordFor(Astronaut) = %+v, want nil", rec)
	}
}

func TestParseCareers_MissingLabelColumn(t *testing.T) {
	csv := "CandidateID,Name\nc-1,Amina\n"
	if _, err := ParseCareers(strings.NewReader(csv)); err == nil {
		t.Error("ParseCareers without Recommended_Career = nil error")
	}
}
