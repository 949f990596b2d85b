package generator

import (
	"testing"

	"github.com/KirkDiggler/castaway/internal/models"
	"github.com/stretchr/testify/assert"
)

const fullReply = "### Storm Over Camp\n\n" +
	"Rain hammers the shelter as Parvati pulls you aside.\n\n" +
	"A) Agree to her plan\nB) Stall\nC) Tell Sandra\nD) Walk away\n\n" +
	"SCENE_TYPE: camp\n" +
	`STAT_UPDATES: {"Social": 0.5, "Threat": -0.25}`

func TestParseReply(t *testing.T) {
	reply := ParseReply(fullReply)

	assert.Equal(t, fullReply, reply.Raw)
	assert.True(t, reply.HasSceneType())
	assert.Equal(t, models.SceneTypeCamp, reply.SceneType)
	assert.Equal(t, map[string]float64{"Social": 0.5, "Threat": -0.25}, reply.StatUpdates)
	assert.NotContains(t, reply.Message, "SCENE_TYPE")
	assert.NotContains(t, reply.Message, "STAT_UPDATES")
	assert.Contains(t, reply.Message, "### Storm Over Camp")
	assert.Contains(t, reply.Message, "D) Walk away")
}

func TestParseReplyMissingTags(t *testing.T) {
	reply := ParseReply("### Quiet Night\n\nNothing happens.")

	assert.False(t, reply.HasSceneType())
	assert.Empty(t, reply.StatUpdates)
	assert.Equal(t, "### Quiet Night\n\nNothing happens.", reply.Message)
}

func TestParseReplyMalformedStats(t *testing.T) {
	reply := ParseReply("text\nSCENE_TYPE: tribal\nSTAT_UPDATES: {Social: +1, oops}")

	assert.Equal(t, models.SceneTypeTribal, reply.SceneType)
	assert.Empty(t, reply.StatUpdates)
	assert.Equal(t, "text", reply.Message)
}

func TestParseReplyDropsNonNumericValues(t *testing.T) {
	reply := ParseReply(`STAT_UPDATES: {"Social": "lots", "Strategy": 1, "Luck": 2, "Threat": null}`)

	assert.Equal(t, map[string]float64{"Strategy": 1, "Luck": 2}, reply.StatUpdates)
}

func TestParseReplyCaseInsensitiveTags(t *testing.T) {
	reply := ParseReply("scene_type: Challenge_Results\nstat_updates: {\"Challenge\": 1}")

	assert.Equal(t, models.SceneTypeChallengeResults, reply.SceneType)
	assert.Equal(t, map[string]float64{"Challenge": 1}, reply.StatUpdates)
	assert.Empty(t, reply.Message)
}

func TestParseReplyUnknownSceneType(t *testing.T) {
	reply := ParseReply("SCENE_TYPE: confessional")

	assert.False(t, reply.HasSceneType())
}

func TestCleanCodeBlocks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "inline block removed",
			raw:  "### Title\n```json\n{\"a\": 1}\n```\nStory",
			want: "### Title\n\nStory",
		},
		{
			name: "whole reply fenced",
			raw:  "```markdown\n### Title\nStory\nSCENE_TYPE: camp\n```",
			want: "### Title\nStory",
		},
		{
			name: "empty stats tag",
			raw:  "Story\nSTAT_UPDATES: {}",
			want: "Story",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.raw))
		})
	}
}
