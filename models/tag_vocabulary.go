package models

import (
	"sort"
	"strings"
)

// TagVocabulary holds the distinct lower-cased genre and info tags seen on a day.
type TagVocabulary struct {
	Genres   []string `json:"genres"`
	InfoTags []string `json:"info_tags"`
}

// NormalizeTag is the single case-normalisation applied to every tag at ingestion.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// TagSet is an accumulating set of normalised tags.
type TagSet map[string]struct{}

func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

func (s TagSet) Add(tag string) {
	if tag == "" {
		return
	}
	s[tag] = struct{}{}
}

func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// ContainsAny reports whether at least one of tags is in the set.
func (s TagSet) ContainsAny(tags []string) bool {
	for _, t := range tags {
		if s.Contains(t) {
			return true
		}
	}
	return false
}

// Sorted returns the members in alphabetical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (v TagVocabulary) HasGenre(tag string) bool {
	return containsSorted(v.Genres, tag)
}

func (v TagVocabulary) HasInfoTag(tag string) bool {
	return containsSorted(v.InfoTags, tag)
}

func containsSorted(sorted []string, tag string) bool {
	i := sort.SearchStrings(sorted, tag)
	return i < len(sorted) && sorted[i] == tag
}
