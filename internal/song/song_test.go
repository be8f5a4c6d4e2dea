package song

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewMetadataGeneratesUniqueIDs(t *testing.T) {
	a := NewMetadata(100, "Song", "Artist")
	b := NewMetadata(100, "Song", "Artist")

	if a.UniqueID == "" || b.UniqueID == "" {
		t.Fatal("expected non-empty unique IDs")
	}
	if a.UniqueID == b.UniqueID {
		t.Fatalf("unique IDs collided: %q", a.UniqueID)
	}
	if len(a.UniqueID) != len(b.UniqueID) {
		t.Fatalf("unique IDs are not fixed-length: %d vs %d", len(a.UniqueID), len(b.UniqueID))
	}
}

func TestNewUnknownIsPending(t *testing.T) {
	s := NewUnknown(42)
	if !s.IsUnknown() {
		t.Fatal("expected unknown record to report IsUnknown")
	}
	if s.Meta.GDID != 42 {
		t.Fatalf("unexpected GDID: %d", s.Meta.GDID)
	}
}

func TestEquivalentTo(t *testing.T) {
	base := New(Metadata{GDID: 1, UniqueID: "a", Name: "Song", Artist: "Artist", StartOffset: 5}, "a.mp3")

	cases := []struct {
		name string
		song LocalSong
		want bool
	}{
		{"identical fields", New(Metadata{GDID: 1, UniqueID: "b", Name: "Song", Artist: "Artist", StartOffset: 5}, "b.mp3"), true},
		{"different name", New(Metadata{UniqueID: "b", Name: "Other", Artist: "Artist", StartOffset: 5}, "b.mp3"), false},
		{"different artist", New(Metadata{UniqueID: "b", Name: "Song", Artist: "Other", StartOffset: 5}, "b.mp3"), false},
		{"different offset", New(Metadata{UniqueID: "b", Name: "Song", Artist: "Artist", StartOffset: 9}, "b.mp3"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.EquivalentTo(tc.song); got != tc.want {
				t.Fatalf("EquivalentTo = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := New(Metadata{GDID: 7, UniqueID: "uid-1", Name: "Song", Artist: "Artist", StartOffset: 3}, "/nongs/uid-1.mp3")

	data, err := json.Marshal(s.Record())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, err := FromRecord(rec, 7)
	if err != nil {
		t.Fatalf("FromRecord returned error: %v", err)
	}
	if got != s {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, s)
	}
}

func TestRecordOmitsAbsentOptionalFields(t *testing.T) {
	s := NewUnknown(9)
	data, err := json.Marshal(s.Record())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := string(data)
	if strings.Contains(out, `"path"`) {
		t.Errorf("pending record serialized a path key: %s", out)
	}
	if !strings.Contains(out, `"pending":true`) {
		t.Errorf("pending record missing pending marker: %s", out)
	}
	if strings.Contains(out, `"offset"`) {
		t.Errorf("zero offset should be omitted: %s", out)
	}
}

func TestFromRecordValidation(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
	}{
		{"missing unique ID", Record{Name: "Song", Path: "a.mp3"}},
		{"path and pending", Record{UniqueID: "u", Path: "a.mp3", Pending: true}},
		{"neither path nor pending", Record{UniqueID: "u", Name: "Song"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromRecord(tc.rec, 1); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
