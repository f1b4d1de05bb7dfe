package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "user@", "@example.com", "user@example"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestValidateImageURL(t *testing.T) {
	if got := ValidateImageURL("https://example.com/image.jpg"); got == nil || *got != "https://example.com/image.jpg" {
		t.Fatalf("expected https URL accepted, got %v", got)
	}
	if got := ValidateImageURL("  http://example.com/a.png  "); got == nil || *got != "http://example.com/a.png" {
		t.Fatalf("expected trimmed http URL accepted, got %v", got)
	}

	rejected := []string{
		"",
		"not a url",
		"ftp://example.com/file",
		"example.com/no-scheme.jpg",
		"https://",
	}
	for _, raw := range rejected {
		if got := ValidateImageURL(raw); got != nil {
			t.Fatalf("expected %q rejected, got %q", raw, *got)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("unexpected sanitized value: %q", got)
	}
}
