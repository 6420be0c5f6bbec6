package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taskSample = `{
  "id": 1,
  "boardColumn": {"id": 1, "name": "testing", "color": "E74C3C"},
  "comments-count": 0,
  "estimate": 1.5,
  "canComplete": true,
  "created-on": "2018-12-12T10:06:31Z",
  "last-changed-on": "2019-01-16T11:00:44Z",
  "predecessors": [],
  "labels": ["a", "b"],
  "extra": null,
  "tags": [{"id": 32661, "name": "On Hold"}],
  "parent-task": {"content": "ParentTask", "id": "17774182"}
}`

func field(original, normalized, goName string, ty TypeRef) FieldSpec {
	return FieldSpec{
		OriginalName:   original,
		NormalizedName: normalized,
		GoName:         goName,
		Type:           ty,
		Optional:       true,
	}
}

func TestSynthesize(t *testing.T) {
	records, err := Synthesize("Task", []byte(taskSample))
	require.NoError(t, err)

	want := []RecordSpec{
		{
			Name: "Task",
			Fields: []FieldSpec{
				field("id", "id", "Id", Integer),
				field("boardColumn", "board_column", "BoardColumn", RecordRef("BoardColumn")),
				field("comments-count", "comments_count", "CommentsCount", Integer),
				field("estimate", "estimate", "Estimate", Float),
				field("canComplete", "can_complete", "CanComplete", Boolean),
				field("created-on", "created_at", "CreatedAt", String),
				field("last-changed-on", "updated_at", "UpdatedAt", String),
				field("predecessors", "predecessors", "Predecessors", RawJSON),
				field("labels", "labels", "Labels", RawJSON),
				field("extra", "extra", "Extra", RawJSON),
				field("tags", "tags", "Tags", ListOf(RecordRef("Tag"))),
				field("parent-task", "parent_task", "ParentTask", RecordRef("ParentTask")),
			},
		},
		{
			Name:   "BoardColumn",
			Origin: "Task.boardColumn",
			Fields: []FieldSpec{
				field("id", "id", "Id", Integer),
				field("name", "name", "Name", String),
				field("color", "color", "Color", String),
			},
		},
		{
			Name:   "Tag",
			Origin: "Task.tags",
			Fields: []FieldSpec{
				field("id", "id", "Id", Integer),
				field("name", "name", "Name", String),
			},
		},
		{
			Name:   "ParentTask",
			Origin: "Task.parent-task",
			Fields: []FieldSpec{
				field("content", "content", "Content", String),
				field("id", "id", "Id", String),
			},
		},
	}

	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	first, err := Synthesize("Task", []byte(taskSample))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Synthesize("Task", []byte(taskSample))
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestSynthesizeClosed(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("Task", []byte(taskSample)))
	require.NoError(t, b.Add("task_list", []byte(`{"tagged": [{"id": 1}], "task": {"id": 2}}`)))

	records := b.Records()
	names := make(map[string]bool)
	for _, r := range records {
		assert.False(t, names[r.Name], "duplicate record %s", r.Name)
		names[r.Name] = true
	}
	for _, r := range records {
		for _, ref := range r.References() {
			assert.True(t, names[ref], "%s references undefined %s", r.Name, ref)
		}
	}
	assert.True(t, names["TaskList"])
	assert.True(t, names["Tagged"])
}

func TestSynthesizeReusesByName(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("Task", []byte(`{"tags": [{"id": 1, "name": "x"}]}`)))
	require.NoError(t, b.Add("Project", []byte(`{"tags": [{"label": "y"}], "task": {"other": 1}}`)))

	records := b.Records()
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Task", "Tag", "Project"},
		[]string{records[0].Name, records[1].Name, records[2].Name})

	// The first shape seen for Tag wins.
	tag := records[1]
	require.Len(t, tag.Fields, 2)
	assert.Equal(t, "id", tag.Fields[0].OriginalName)

	// A nested object named like an existing resource reuses it.
	project := records[2]
	assert.Equal(t, RecordRef("Task"), project.Fields[1].Type)
}

func TestSynonyms(t *testing.T) {
	cases := map[string]string{
		"created_on":      "created_at",
		"created-on":      "created_at",
		"createdOn":       "created_at",
		"last_changed_on": "updated_at",
		"last-changed-on": "updated_at",
		"lastChangedOn":   "updated_at",
		"createdAt":       "created_at",
		"updated-date":    "updated_date",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeName(in), in)
	}
}

func TestTypeInference(t *testing.T) {
	cases := []struct {
		sample string
		want   TypeRef
	}{
		{`{"v": "s"}`, String},
		{`{"v": ""}`, String},
		{`{"v": 3}`, Integer},
		{`{"v": -3}`, Integer},
		{`{"v": 3.25}`, Float},
		{`{"v": 1e3}`, Float},
		{`{"v": false}`, Boolean},
		{`{"v": {"a": 1}}`, RecordRef("V")},
		{`{"v": [{"a": 1}]}`, ListOf(RecordRef("V"))},
		{`{"v": []}`, RawJSON},
		{`{"v": [1, 2]}`, RawJSON},
		{`{"v": ["a"]}`, RawJSON},
		{`{"v": [[{"a": 1}]]}`, RawJSON},
		{`{"v": null}`, RawJSON},
	}
	for _, tc := range cases {
		t.Run(tc.sample, func(t *testing.T) {
			records, err := Synthesize("Sample", []byte(tc.sample))
			require.NoError(t, err)
			require.NotEmpty(t, records)
			require.Len(t, records[0].Fields, 1)
			assert.Equal(t, tc.want, records[0].Fields[0].Type)
			assert.True(t, records[0].Fields[0].Optional)
		})
	}
}

func TestListRecordNamesAreSingular(t *testing.T) {
	records, err := Synthesize("Sample", []byte(`{"time-entries": [{"id": 1}], "people": [{"id": 2}]}`))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "TimeEntry", records[1].Name)
	assert.Equal(t, "Person", records[2].Name)
}

func TestSynthesizeErrors(t *testing.T) {
	cases := map[string]string{
		"Malformed":         `{"id": 1,`,
		"NotAnObject":       `[{"id": 1}]`,
		"TrailingData":      `{"id": 1} {"id": 2}`,
		"DuplicateName":     `{"created-on": "a", "createdOn": "b"}`,
		"InvalidIdentifier": `{"1st": "a"}`,
		"InvalidTagName":    `{"a,b": "a"}`,
		"EmptyKey":          `{"": 1}`,
	}
	for name, sample := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Synthesize("Sample", []byte(sample))
			assert.Error(t, err)
		})
	}

	t.Run("DuplicateResource", func(t *testing.T) {
		b := NewBuilder()
		require.NoError(t, b.Add("Task", []byte(`{"id": 1}`)))
		assert.Error(t, b.Add("task", []byte(`{"id": 1}`)))
	})
}
