package util

import (
	"os"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp(t.TempDir(), "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadGigsFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{
			"id": "g1",
			"name": "Test Gig",
			"genre_tags": ["Rock"],
			"information_tags": [],
			"venue": {"id": "v1", "name": "Test Venue", "latitude": -37.81, "longitude": 144.96},
			"prices": []
		}
	]`
	tempFile := createTempFile(t, content)

	// Act
	gigs, err := ReadGigsFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(gigs) != 1 {
		t.Fatalf("Expected 1 gig, got %d", len(gigs))
	}
	if gigs[0].Venue.Name != "Test Venue" {
		t.Errorf("Expected venue name 'Test Venue', got %s", gigs[0].Venue.Name)
	}
	if gigs[0].Venue.Latitude != -37.81 {
		t.Errorf("Expected latitude -37.81, got %f", gigs[0].Venue.Latitude)
	}
}

func TestReadGigsFromJSON_Null(t *testing.T) {
	gigs, err := ReadGigsFromJSON(createTempFile(t, `null`))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if gigs == nil || len(gigs) != 0 {
		t.Errorf("Expected an empty non-nil slice, got %#v", gigs)
	}
}

func TestReadGigsFromJSON_Errors(t *testing.T) {
	if _, err := ReadGigsFromJSON("/nonexistent/gigs.json"); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
	if _, err := ReadGigsFromJSON(createTempFile(t, `{"id": 1}`)); err == nil {
		t.Errorf("Expected an error for a non-array body")
	}
}
