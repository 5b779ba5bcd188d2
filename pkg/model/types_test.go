package model

import "testing"

func TestParseSearchType(t *testing.T) {
	tests := []struct {
		in      string
		want    SearchType
		wantErr bool
	}{
		{in: "font_name", want: SearchByFont},
		{in: "most_frequent", want: SearchMostFrequent},
		{in: "all_styles", want: SearchAllStyles},
		{in: "", wantErr: true},
		{in: "fonts", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseSearchType(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseSearchType(%q) : erreur attendue", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSearchType(%q) : %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSearchType(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseReplaceType(t *testing.T) {
	if _, err := ParseReplaceType("everything"); err != nil {
		t.Errorf("everything : %v", err)
	}
	if _, err := ParseReplaceType("font_name"); err != nil {
		t.Errorf("font_name : %v", err)
	}
	if _, err := ParseReplaceType("nothing"); err == nil {
		t.Error("nothing : erreur attendue")
	}
}

func TestParseToggle(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ""}, // vide = skip, pas une erreur
		{in: "yes", want: ToggleOn},
		{in: "oui", want: ToggleOn},
		{in: "1", want: ToggleOn},
		{in: "no", want: ToggleOff},
		{in: "non", want: ToggleOff},
		{in: "0", want: ToggleOff},
		{in: "peut-être", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseToggle(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseToggle(%q) : erreur attendue", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseToggle(%q) : %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseToggle(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
