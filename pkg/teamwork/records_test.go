package teamwork

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSample(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("samples/" + name)
	require.NoError(t, err)
	return data
}

func TestTaskFromSample(t *testing.T) {
	var task Task
	require.NoError(t, json.Unmarshal(readSample(t, "task.json"), &task))

	require.NotNil(t, task.Id)
	assert.Equal(t, int64(1), *task.Id)
	require.NotNil(t, task.Content)
	assert.Equal(t, "adawa", *task.Content)
	require.NotNil(t, task.CreatedAt)
	assert.Equal(t, "2018-12-12T10:06:31Z", *task.CreatedAt)

	// Empty strings upstream are absent values.
	assert.Nil(t, task.Description)
	assert.Nil(t, task.Priority)

	require.NotNil(t, task.BoardColumn)
	require.NotNil(t, task.BoardColumn.Name)
	assert.Equal(t, "testing", *task.BoardColumn.Name)

	require.Len(t, task.Tags, 1)
	require.NotNil(t, task.Tags[0].Name)
	assert.Equal(t, "On Hold", *task.Tags[0].Name)

	require.NotNil(t, task.ParentTask)
	require.NotNil(t, task.ParentTask.Id)
	assert.Equal(t, "17774182", *task.ParentTask.Id)

	assert.JSONEq(t, `[]`, string(task.Predecessors))
}

func TestTaskNormalizedOutput(t *testing.T) {
	var task Task
	require.NoError(t, json.Unmarshal(readSample(t, "task.json"), &task))

	out, err := json.Marshal(task)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &fields))

	assert.Contains(t, fields, "created_at")
	assert.Contains(t, fields, "updated_at")
	assert.Contains(t, fields, "board_column")
	assert.Contains(t, fields, "parent_task")
	assert.NotContains(t, fields, "created-on")
	assert.NotContains(t, fields, "boardColumn")
	assert.Equal(t, "null", string(fields["description"]))
	assert.JSONEq(t, `{"id": 1, "name": "testing", "color": "E74C3C"}`, string(fields["board_column"]))
}

func TestTaskListFromSample(t *testing.T) {
	var list TaskList
	require.NoError(t, json.Unmarshal(readSample(t, "task_list.json"), &list))

	require.NotNil(t, list.Id)
	assert.Equal(t, "1", *list.Id)
	require.NotNil(t, list.Name)
	assert.Equal(t, "task list 1", *list.Name)
	assert.Nil(t, list.Description)
	require.Len(t, list.Tagged, 1)
	require.NotNil(t, list.Tagged[0].Id)
	assert.Equal(t, int64(32661), *list.Tagged[0].Id)
}

func TestTimeEntryFromSample(t *testing.T) {
	var entry TimeEntry
	require.NoError(t, json.Unmarshal(readSample(t, "time_entry.json"), &entry))

	require.NotNil(t, entry.Id)
	assert.Equal(t, "1", *entry.Id)
	require.NotNil(t, entry.Hours)
	assert.Equal(t, "1", *entry.Hours)
	assert.Nil(t, entry.Description)
}

func TestDecodeMissingFields(t *testing.T) {
	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7}`), &task))

	require.NotNil(t, task.Id)
	assert.Equal(t, int64(7), *task.Id)
	assert.Nil(t, task.Content)
	assert.Nil(t, task.BoardColumn)
	assert.Nil(t, task.Tags)
}

func TestDecodeTypeMismatch(t *testing.T) {
	var task Task
	assert.Error(t, json.Unmarshal([]byte(`{"id": "seven"}`), &task))
}
