package enrich

import (
	"reflect"
	"testing"
)

func TestNormalizeProfile_EmailShapes(t *testing.T) {
	raw := map[string]interface{}{
		"name": "Ada Lovelace",
		"emails": []interface{}{
			map[string]interface{}{"email": "a@b.com"},
			"c@d.com",
			map[string]interface{}{"number": "x"},
		},
	}

	contact := NormalizeProfile(raw)

	want := []string{"a@b.com", "c@d.com"}
	if !reflect.DeepEqual(contact.Emails, want) {
		t.Errorf("Emails = %v, want %v", contact.Emails, want)
	}
}

func TestNormalizeProfile_PhoneShapes(t *testing.T) {
	raw := map[string]interface{}{
		"phone_numbers": []interface{}{
			map[string]interface{}{"raw_number": "+49 30 1234"},
			map[string]interface{}{"value": "+1 555 0100"},
			"+44 20 9999",
			42.0, // unrecognized shape, dropped
			map[string]interface{}{"label": "work"}, // no usable key, dropped
			map[string]interface{}{"email": "a@b.com"}, // email-shaped, dropped
		},
	}

	contact := NormalizeProfile(raw)

	want := []string{"+49 30 1234", "+1 555 0100", "+44 20 9999"}
	if !reflect.DeepEqual(contact.Phones, want) {
		t.Errorf("Phones = %v, want %v", contact.Phones, want)
	}
}

func TestNormalizeProfile_NameResolution(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]interface{}
		want string
	}{
		{
			name: "explicit full name wins",
			raw:  map[string]interface{}{"name": "Grace Hopper", "first_name": "G", "last_name": "H"},
			want: "Grace Hopper",
		},
		{
			name: "first and last joined",
			raw:  map[string]interface{}{"first_name": "Grace", "last_name": "Hopper"},
			want: "Grace Hopper",
		},
		{
			name: "missing last name leaves no trailing space",
			raw:  map[string]interface{}{"first_name": "Grace"},
			want: "Grace",
		},
		{
			name: "no name fields",
			raw:  map[string]interface{}{},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeProfile(tc.raw).Name; got != tc.want {
				t.Errorf("Name = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeProfile_Location(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]interface{}
		want string
	}{
		{
			name: "explicit location preferred",
			raw:  map[string]interface{}{"location": "  Berlin, Germany ", "city": "Munich"},
			want: "Berlin, Germany",
		},
		{
			name: "parts joined",
			raw:  map[string]interface{}{"city": "Berlin", "state": "Berlin", "country": "Germany"},
			want: "Berlin, Berlin, Germany",
		},
		{
			name: "missing parts skipped",
			raw:  map[string]interface{}{"city": "Berlin", "country": "Germany"},
			want: "Berlin, Germany",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeProfile(tc.raw).Location; got != tc.want {
				t.Errorf("Location = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeProfile_Company(t *testing.T) {
	nested := map[string]interface{}{
		"organization": map[string]interface{}{"name": "Acme GmbH"},
	}
	if got := NormalizeProfile(nested).Company; got != "Acme GmbH" {
		t.Errorf("nested organization: Company = %q, want %q", got, "Acme GmbH")
	}

	legacy := map[string]interface{}{"organization_name": "Initech"}
	if got := NormalizeProfile(legacy).Company; got != "Initech" {
		t.Errorf("legacy field: Company = %q, want %q", got, "Initech")
	}
}

func TestNormalizeProfile_Summary(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]interface{}
		want string
	}{
		{
			name: "all segments",
			raw: map[string]interface{}{
				"title":    "Engineer",
				"company":  "Acme",
				"city":     "Berlin",
				"industry": "Fintech",
			},
			want: "Engineer at Acme in Berlin | Fintech",
		},
		{
			name: "title default and omitted segments",
			raw:  map[string]interface{}{"industry": "Logistics"},
			want: "Professional | Logistics",
		},
		{
			name: "title only",
			raw:  map[string]interface{}{"title": "Designer"},
			want: "Designer",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeProfile(tc.raw).Summary; got != tc.want {
				t.Errorf("Summary = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeProfile_RelevanceDefault(t *testing.T) {
	if got := NormalizeProfile(map[string]interface{}{}).RelevanceScore; got != 90 {
		t.Errorf("RelevanceScore = %v, want 90", got)
	}
	raw := map[string]interface{}{"match_score": 72.5}
	if got := NormalizeProfile(raw).RelevanceScore; got != 72.5 {
		t.Errorf("RelevanceScore = %v, want 72.5", got)
	}
}

func TestNormalizeProfile_ID(t *testing.T) {
	if got := NormalizeProfile(map[string]interface{}{"id": "abc123"}).ID; got != "abc123" {
		t.Errorf("string id: got %q", got)
	}
	if got := NormalizeProfile(map[string]interface{}{"id": 4711.0}).ID; got != "4711" {
		t.Errorf("numeric id: got %q, want %q", got, "4711")
	}

	// Synthesized ids must be unique within a run.
	a := NormalizeProfile(map[string]interface{}{}).ID
	b := NormalizeProfile(map[string]interface{}{}).ID
	if a == "" || b == "" || a == b {
		t.Errorf("synthesized ids not unique: %q vs %q", a, b)
	}
}

func TestNormalizeProfile_Idempotent(t *testing.T) {
	raw := map[string]interface{}{
		"id":         "p1",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"title":      "Engineer",
		"emails":     []interface{}{"a@b.com"},
	}

	first := NormalizeProfile(raw)
	second := NormalizeProfile(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization not idempotent:\n first = %+v\nsecond = %+v", first, second)
	}
}

func TestNormalizeProfile_NeverNilLists(t *testing.T) {
	contact := NormalizeProfile(map[string]interface{}{})
	if contact.Emails == nil || contact.Phones == nil {
		t.Errorf("expected non-nil lists, got emails=%v phones=%v", contact.Emails, contact.Phones)
	}
}
