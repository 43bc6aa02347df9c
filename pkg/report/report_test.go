package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityFatal, "fatal"},
		{Severity(42), "unknown(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sev.String())
		})
	}
}

func TestItemJSON(t *testing.T) {
	item := Fatal("/SCL/IED[@name=\"IED1\"]", "boom")

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"severity":"fatal","location":"/SCL/IED[@name=\"IED1\"]","message":"boom"}`, string(data))

	var back Item
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, item, back)
}

func TestItemString(t *testing.T) {
	assert.Equal(t, "warning: skipped (/SCL)", Warning("/SCL", "skipped").String())
	assert.Equal(t, "error: broken", Error("", "broken").String())
}

func TestHasErrors(t *testing.T) {
	assert.False(t, HasErrors(nil))
	assert.False(t, HasErrors([]Item{Warning("a", "b")}))
	assert.True(t, HasErrors([]Item{Warning("a", "b"), Error("c", "d")}))
	assert.True(t, HasErrors([]Item{Fatal("c", "d")}))
}

func TestFilterBySeverity(t *testing.T) {
	items := []Item{Warning("1", "a"), Fatal("2", "b"), Warning("3", "c")}

	got := FilterBySeverity(items, SeverityWarning)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Location)
	assert.Equal(t, "3", got[1].Location)
	assert.Empty(t, FilterBySeverity(items, SeverityError))
}
