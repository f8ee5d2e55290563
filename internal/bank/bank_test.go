package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	b := Default()

	ids := func(qs []*model.Question) []string {
		out := make([]string, 0, len(qs))
		for _, q := range qs {
			out = append(out, q.ID)
		}
		return out
	}

	assert.Equal(t, []string{"domain", "a1_frequency", "a3_dependency", "m2_confidence", "c1_repeat"}, ids(b.Calibration()))
	assert.Equal(t, []string{"c4_deadline"}, ids(b.CrossChecks()))
	assert.Equal(t, []string{"ai_tools"}, ids(b.ToolQuestions()))
	assert.Equal(t, "domain", b.Domain().ID)
	assert.Equal(t, "a1_frequency", b.Frequency().ID)

	tools := b.Get("ai_tools")
	require.NotNil(t, tools)
	assert.True(t, tools.IsMulti())
	assert.Equal(t, NoToolSentinel, tools.Options[len(tools.Options)-1].Text)
}

func TestBodyPerTrack(t *testing.T) {
	b := Default()

	quick := b.Body(model.TrackQuick)
	core := b.Body(model.TrackCore)
	advanced := b.Body(model.TrackAdvanced)

	assert.Less(t, len(quick), len(core))
	assert.Less(t, len(core), len(advanced))

	// every non-calibration, non-tail question shows up on the advanced track
	assert.Equal(t, b.Len()-len(b.Calibration())-len(b.CrossChecks())-len(b.ToolQuestions()), len(advanced))

	for _, q := range core {
		assert.NotEqual(t, "self_identify", q.ID)
		assert.NotEqual(t, "t2_knowledge", q.ID)
	}
}

func TestNewRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name      string
		questions []model.Question
	}{
		{name: "empty", questions: nil},
		{name: "missing id", questions: []model.Question{{Title: "x"}}},
		{name: "duplicate id", questions: []model.Question{{ID: "a"}, {ID: "a"}}},
		{
			name: "axis length mismatch",
			questions: []model.Question{{
				ID:      "a",
				Options: []model.Option{{Text: "x"}, {Text: "y"}},
				Axes:    map[model.Axis][]float64{model.AxisCraft: {0}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.questions)
			assert.Error(t, err)
		})
	}

	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	content := `questions:
  - id: q1
    section: craft
    title: First
    calibration: true
    axes:
      craft: [0, 4]
    options:
      - text: low
        level: 1
      - text: high
        level: 5
  - id: tools
    type: multi
    tools: true
    options:
      - text: Cursor
        category: coding
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())

	q1 := b.Get("q1")
	require.NotNil(t, q1)
	assert.Equal(t, model.QuestionTypeSingle, q1.Type)
	assert.Equal(t, []float64{0, 4}, q1.Axes[model.AxisCraft])
	assert.Equal(t, 5.0, q1.Options[1].Level)
	assert.True(t, b.Get("tools").IsMulti())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
