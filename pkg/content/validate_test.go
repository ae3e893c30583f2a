package content

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func decode(t *testing.T, doc string) (raw interface{}) {
	t.Helper()
	err := json.Unmarshal([]byte(doc), &raw)
	if err != nil {
		t.Fatalf("Failed to decode test document: %v", err)
	}
	return raw
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantError bool
		wantParts []string
	}{
		{
			name: "valid document",
			doc: `{
				"name": "A", "contact_info": {"phone": "1", "email": "a@b.c"},
				"summary": [{"text": "s"}], "skills": [{"text": "k", "target_audiences": []}],
				"experience": [{"title": "t", "company": "c", "dates": "d", "bullets": []}],
				"education": "e", "languages": "l"
			}`,
			wantError: false,
		},
		{
			name:      "root is not an object",
			doc:       `[]`,
			wantError: true,
			wantParts: []string{"Invalid type"},
		},
		{
			name:      "every missing top-level key is named",
			doc:       `{}`,
			wantError: true,
			wantParts: []string{
				"name is required", "contact_info is required", "summary is required", "skills is required",
				"experience is required", "education is required", "languages is required",
			},
		},
		{
			name: "nested violations are all collected",
			doc: `{
				"name": "A", "contact_info": {"phone": 5},
				"summary": [{"target_audiences": "frontend"}], "skills": ["plain string"],
				"experience": [{"title": "t", "company": "c", "intro": 3, "bullets": [{"text": "b", "target_audiences": [1]}]}],
				"education": "e", "languages": "l"
			}`,
			wantError: true,
			wantParts: []string{
				"contact_info.phone",
				"email is required",
				"text is required",
				"summary.0.target_audiences",
				"skills.0",
				"dates is required",
				"experience.0.intro",
				"experience.0.bullets.0.target_audiences.0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(decode(t, tt.doc))
			if tt.wantError && err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if err == nil {
				return
			}

			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}

			for _, part := range tt.wantParts {
				if !strings.Contains(err.Error(), part) {
					t.Errorf("Expected error to mention %q, got:\n%s", part, err.Error())
				}
			}
		})
	}
}

func TestValidationErrorIsSorted(t *testing.T) {
	err := Validate(decode(t, `{}`))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}

	if len(verr.Errors) != 7 {
		t.Fatalf("Expected 7 violations, got %d: %v", len(verr.Errors), verr.Errors)
	}

	for i := 1; i < len(verr.Errors); i++ {
		if verr.Errors[i-1].Message > verr.Errors[i].Message {
			t.Errorf("Violations not sorted: %q before %q", verr.Errors[i-1].Message, verr.Errors[i].Message)
		}
	}
}
