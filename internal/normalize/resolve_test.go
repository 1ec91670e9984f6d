package normalize

import (
	"testing"

	"notion-roadmap/roadmap/internal/models/notion"
)

func TestResolveField_CaseInsensitive(t *testing.T) {
	page := mustPage(t, `{"id":"p1","properties":{"STATUS":{"type":"select","select":{"name":"Done"}}}}`)

	text, name := ResolveField(page, []Rule{{Name: "Status"}})
	if text != "Done" {
		t.Errorf("Expected Done, got %q", text)
	}
	if name != "STATUS" {
		t.Errorf("Expected matched property STATUS, got %q", name)
	}
}

func TestResolveField_SkipsEmptyCandidates(t *testing.T) {
	page := mustPage(t, `{"id":"p1","properties":{
		"Name":{"type":"rich_text","rich_text":[]},
		"Title":{"type":"rich_text","rich_text":[{"plain_text":"From Title"}]}
	}}`)

	text, _ := ResolveField(page, byName("Name", "Title"))
	if text != "From Title" {
		t.Errorf("Expected fallthrough to Title, got %q", text)
	}
}

func TestResolveField_TagRestriction(t *testing.T) {
	page := mustPage(t, `{"id":"p1","properties":{"Due":{"type":"rich_text","rich_text":[{"plain_text":"soon"}]}}}`)

	if text, _ := ResolveField(page, []Rule{{Name: "Due", Tag: notion.TagDate}}); text != "" {
		t.Errorf("Expected no match for wrong tag, got %q", text)
	}
	if text, _ := ResolveField(page, []Rule{{Name: "due"}}); text != "soon" {
		t.Errorf("Expected untyped rule to match, got %q", text)
	}
}

func TestResolveField_NoMatch(t *testing.T) {
	text, name := ResolveField(notion.Page{ID: "x"}, TitleRules)
	if text != "" || name != "" {
		t.Errorf("Expected empty result, got %q from %q", text, name)
	}
}

func TestResolveByName_PreferTag(t *testing.T) {
	page := mustPage(t, `{"id":"p1","properties":{
		"Name":{"type":"rich_text","rich_text":[{"plain_text":"by name"}]},
		"Headline":{"type":"title","title":[{"plain_text":"by tag"}]}
	}}`)

	if got := ResolveByName(page, []string{"Name"}, notion.TagTitle); got != "by tag" {
		t.Errorf("Expected preferred tag to win, got %q", got)
	}
	if got := ResolveByName(page, []string{"Name"}, ""); got != "by name" {
		t.Errorf("Expected name candidate without preferred tag, got %q", got)
	}
}

func TestCollectImageURLs_MixedOrder(t *testing.T) {
	page := mustPage(t, `{"id":"p1","properties":{
		"Cover Image": {"type":"url","url":"https://x/cover.png"},
		"Name": {"type":"title","title":[{"plain_text":"X"}]},
		"Screenshots": {"type":"files","files":[
			{"name":"a","type":"file","file":{"url":"https://x/a.png"}},
			{"name":"b","type":"external","external":{"url":"https://x/b.png"}}
		]},
		"thumbnail": {"type":"url","url":"https://x/cover.png"},
		"Snapshot notes": {"type":"rich_text","rich_text":[]}
	}}`)

	got := CollectImageURLs(page)
	want := []string{"https://x/cover.png", "https://x/a.png", "https://x/b.png", "https://x/cover.png"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d urls, got %#v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Index %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestCollectImageURLs_Empty(t *testing.T) {
	got := CollectImageURLs(notion.Page{})
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", got)
	}
}

func TestIsImageProperty(t *testing.T) {
	cases := map[string]bool{
		"Image":         true,
		"SCREENSHOT":    true,
		"App snapshot":  true,
		"cover":         true,
		"Thumbnail URL": true,
		"Imagery":       true,
		"Status":        false,
		"Pic":           false,
	}
	for name, want := range cases {
		if got := IsImageProperty(name); got != want {
			t.Errorf("IsImageProperty(%q): expected %v, got %v", name, want, got)
		}
	}
}
