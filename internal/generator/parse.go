package generator

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/KirkDiggler/castaway/internal/models"
)

var (
	sceneTypeTag   = regexp.MustCompile(`(?i)SCENE_TYPE:\s*(\w+)`)
	statUpdatesTag = regexp.MustCompile(`(?i)STAT_UPDATES:\s*(\{[^}]*\})`)
	codeBlock      = regexp.MustCompile("(?s)```.*?```")
)

// Reply is a generator reply with its machine tags extracted
type Reply struct {
	// Raw is the reply as returned, kept in the history
	Raw string

	// Message is the display text without tags or code blocks
	Message string

	// SceneType is the claimed slot type; zero when missing or unknown
	SceneType models.SceneType

	// StatUpdates holds the numeric deltas from STAT_UPDATES
	StatUpdates map[string]float64
}

// HasSceneType reports whether the reply carried a recognised SCENE_TYPE tag
func (r *Reply) HasSceneType() bool {
	return r.SceneType != ""
}

// ParseReply extracts the SCENE_TYPE and STAT_UPDATES tags from a reply.
// Missing tags, malformed JSON and non-numeric values are tolerated.
func ParseReply(raw string) *Reply {
	reply := &Reply{
		Raw:         raw,
		StatUpdates: map[string]float64{},
	}

	if m := sceneTypeTag.FindStringSubmatch(raw); m != nil {
		if sceneType, ok := models.ParseSceneType(m[1]); ok {
			reply.SceneType = sceneType
		} else {
			log.Printf("generator: ignoring unknown SCENE_TYPE %q", m[1])
		}
	}

	if m := statUpdatesTag.FindStringSubmatch(raw); m != nil {
		reply.StatUpdates = parseStatUpdates(m[1])
	}

	reply.Message = Clean(raw)
	return reply
}

func parseStatUpdates(blob string) map[string]float64 {
	updates := map[string]float64{}

	var values map[string]any
	if err := json.Unmarshal([]byte(blob), &values); err != nil {
		log.Printf("generator: ignoring malformed STAT_UPDATES %q: %v", blob, err)
		return updates
	}

	for key, value := range values {
		if f, ok := value.(float64); ok {
			updates[key] = f
		}
	}
	return updates
}

// Clean strips the machine tags and code blocks from a reply for display.
// A reply wrapped whole in a code fence is unwrapped first.
func Clean(raw string) string {
	text := unwrapFence(strings.TrimSpace(raw))
	text = sceneTypeTag.ReplaceAllString(text, "")
	text = statUpdatesTag.ReplaceAllString(text, "")
	text = codeBlock.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func unwrapFence(text string) string {
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	inner := strings.TrimSuffix(text[3:], "```")
	if strings.Contains(inner, "```") {
		return text
	}
	// drop a language hint on the opening fence
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 && !strings.ContainsAny(inner[:nl], " \t") {
		inner = inner[nl+1:]
	}
	return inner
}
