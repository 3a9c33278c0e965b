package utils

import (
	"testing"

	"gig_manager/constants"
)

func TestIsValidValueOfConstant(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		values   []string
		expected bool
	}{
		{"Known state", "CA", constants.STATES, true},
		{"DC included", "DC", constants.STATES, true},
		{"Unknown state", "XX", constants.STATES, false},
		{"Lowercase state rejected", "ca", constants.STATES, false},
		{"Known genre", "Rock n Roll", constants.GENRES, true},
		{"Genre with ampersand", "R&B", constants.GENRES, true},
		{"Unknown genre", "Polka", constants.GENRES, false},
		{"Empty value", "", constants.GENRES, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidValueOfConstant(tt.value, tt.values)
			if got != tt.expected {
				t.Errorf("IsValidValueOfConstant(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestVocabularySizes(t *testing.T) {
	if len(constants.GENRES) != 19 {
		t.Errorf("genre vocabulary = %d entries, want 19", len(constants.GENRES))
	}
	if len(constants.STATES) != 51 {
		t.Errorf("state vocabulary = %d entries, want 51", len(constants.STATES))
	}
}

func TestHasDuplicate(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected bool
	}{
		{"No duplicates", []string{"Jazz", "Blues"}, false},
		{"Duplicate tag", []string{"Jazz", "Jazz"}, true},
		{"Empty list", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasDuplicate(tt.values); got != tt.expected {
				t.Errorf("HasDuplicate(%v) = %v, want %v", tt.values, got, tt.expected)
			}
		})
	}
}
