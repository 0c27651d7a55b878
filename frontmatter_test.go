package blog

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	doc := `---
title: "Hello World"
date: "2024-01-15"
tags: [rust, web, "axum blog"]
summary: "A first post."
author: "aryan"
github_repo: "aryansrao/hello"
homepage: "https://example.com"
---

Body text here.
`
	meta, body, ok := ParseFrontMatter(doc)
	if !ok {
		t.Fatal("expected front matter to parse")
	}
	if meta.Title != "Hello World" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Date != "2024-01-15" {
		t.Errorf("Date = %q", meta.Date)
	}
	want := []string{"rust", "web", "axum blog"}
	if !reflect.DeepEqual(meta.Tags, want) {
		t.Errorf("Tags = %v, want %v", meta.Tags, want)
	}
	if meta.Author != "aryan" {
		t.Errorf("Author = %q", meta.Author)
	}
	if meta.GitHubRepo != "aryansrao/hello" {
		t.Errorf("GitHubRepo = %q", meta.GitHubRepo)
	}
	if meta.Website != "https://example.com" {
		t.Errorf("Website (homepage alias) = %q", meta.Website)
	}
	if body != "\n\nBody text here.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseFrontMatterMissingBlock(t *testing.T) {
	tests := []string{
		"no delimiters at all",
		"---\nonly: one delimiter",
		"",
	}
	for _, doc := range tests {
		if _, _, ok := ParseFrontMatter(doc); ok {
			t.Errorf("ParseFrontMatter(%q) ok = true, want false", doc)
		}
	}
}

func TestParseFrontMatterUnknownKeysIgnored(t *testing.T) {
	doc := "---\ntitle: T\nfuture_key: whatever\n---\nbody"
	meta, _, ok := ParseFrontMatter(doc)
	if !ok || meta.Title != "T" {
		t.Fatalf("meta = %+v, ok = %v", meta, ok)
	}
}

func TestParseTagList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`[go, web]`, []string{"go", "web"}},
		{`go, web`, []string{"go", "web"}},
		{`['a', "b c", ]`, []string{"a", "b c"}},
		{`[]`, nil},
		{``, nil},
	}
	for _, tt := range tests {
		got := parseTagList(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseTagList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEncodeDocumentRoundTrips(t *testing.T) {
	in := Metadata{
		Title:      "Hello World",
		Date:       "2024-01-15",
		Tags:       []string{"go", "web tools"},
		Summary:    "A post.",
		Author:     "aryan",
		GitHubRepo: "aryansrao/hello",
		Website:    "https://example.com",
	}
	doc := EncodeDocument(in, "Body text.")

	got, body, ok := ParseFrontMatter(doc)
	if !ok {
		t.Fatal("encoded document did not parse")
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip changed metadata:\n got %+v\nwant %+v", got, in)
	}
	if strings.TrimSpace(body) != "Body text." {
		t.Errorf("body = %q", body)
	}
}

func TestParseFrontMatterValueWithColon(t *testing.T) {
	doc := "---\ncanonical: https://example.com/blog/x\n---\nbody"
	meta, _, ok := ParseFrontMatter(doc)
	if !ok {
		t.Fatal("expected ok")
	}
	if meta.Canonical != "https://example.com/blog/x" {
		t.Errorf("Canonical = %q", meta.Canonical)
	}
}
