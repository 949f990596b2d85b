// Package directive renders the natural-language instructions sent to the
// narrative generator: a per-slot scene directive and the game-master system
// prompt that wraps it.
package directive

import (
	"bytes"
	"embed"
	"fmt"
	"log"
	"slices"
	"strings"
	"text/template"

	"github.com/KirkDiggler/castaway/internal/engine"
	"github.com/KirkDiggler/castaway/internal/models"
	"github.com/KirkDiggler/castaway/internal/schedule"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// Template names, one per file under prompts/
const (
	tmplSystem           = "system.tmpl"
	tmplPremiere         = "premiere.tmpl"
	tmplMerge            = "merge.tmpl"
	tmplCamp             = "camp.tmpl"
	tmplChallenge        = "challenge.tmpl"
	tmplChallengeVictory = "challenge_victory.tmpl"
	tmplChallengeDefeat  = "challenge_defeat.tmpl"
	tmplImmunityPlayer   = "immunity_player.tmpl"
	tmplImmunityOther    = "immunity_other.tmpl"
	tmplTribal           = "tribal.tmpl"
	tmplTribalResults    = "tribal_results.tmpl"
	tmplFinaleTribal     = "finale_tribal.tmpl"
	tmplFinaleResults    = "finale_results.tmpl"
	tmplFallback         = "fallback.tmpl"
)

var funcs = template.FuncMap{
	"join": strings.Join,
	"upper": func(v any) string {
		return strings.ToUpper(fmt.Sprint(v))
	},
	"stat": func(v float64) string {
		return fmt.Sprintf("%.1f", v)
	},
}

var templates = template.Must(template.New("directive").Funcs(funcs).ParseFS(promptFS, "prompts/*.tmpl"))

type promptData struct {
	State *models.GameState
	Turn  *engine.Turn
	Slot  models.Slot

	Phase     models.Phase
	PhaseHint models.Phase

	// Active are the all-stars the narrative may show
	Active []string

	// Eliminated hides a pending elimination until its reveal
	Eliminated []string

	// Finalists are everyone left standing, player included
	Finalists []string

	Remaining      int
	RemainingAfter int

	ChallengeKind string
	Directive     string
}

// Build renders the scene directive for a planned turn
func Build(state *models.GameState, turn *engine.Turn) string {
	if turn == nil {
		turn = &engine.Turn{Day: state.Day, SceneIndex: state.SceneIndexInDay, Slot: schedule.FallbackSlot}
	}
	return render(templateFor(state, turn), newPromptData(state, turn))
}

// System wraps a scene directive in the game-master prompt carrying the
// roster and the response format contract.
func System(state *models.GameState, turn *engine.Turn, directiveText string) string {
	if turn == nil {
		turn = &engine.Turn{Day: state.Day, SceneIndex: state.SceneIndexInDay, Slot: schedule.FallbackSlot}
	}
	data := newPromptData(state, turn)
	data.Directive = directiveText
	return render(tmplSystem, data)
}

// GMNote is the user line sent when the player gave no input
func GMNote(slot models.Slot) string {
	return fmt.Sprintf("[GM Note: Generate the next %s scene.]", strings.ToUpper(string(slot.Type)))
}

func templateFor(state *models.GameState, turn *engine.Turn) string {
	if turn.Premiere {
		return tmplPremiere
	}
	if turn.MergeFeast && turn.Slot.Type == models.SceneTypeCamp {
		return tmplMerge
	}

	switch turn.Slot.Type {
	case models.SceneTypeCamp:
		return tmplCamp
	case models.SceneTypeChallenge:
		return tmplChallenge
	case models.SceneTypeChallengeResults:
		switch {
		case state.Merged && turn.PlayerWon():
			return tmplImmunityPlayer
		case state.Merged:
			return tmplImmunityOther
		case turn.PlayerWon():
			return tmplChallengeVictory
		default:
			return tmplChallengeDefeat
		}
	case models.SceneTypeTribal:
		if turn.Finale {
			return tmplFinaleTribal
		}
		return tmplTribal
	case models.SceneTypeTribalResults:
		if turn.Finale {
			return tmplFinaleResults
		}
		return tmplTribalResults
	}
	return tmplFallback
}

func newPromptData(state *models.GameState, turn *engine.Turn) *promptData {
	hidden := ""
	if turn.Reveal == "" {
		hidden = state.PendingOpposingElimination
	}
	eliminated := slices.DeleteFunc(slices.Clone(state.Eliminated), func(name string) bool {
		return name == hidden
	})

	remaining := len(state.Active())
	after := remaining
	if turn.VotedOut != "" {
		after--
	}

	kind := "REWARD"
	if turn.Immunity {
		kind = "IMMUNITY"
	}

	return &promptData{
		State:          state,
		Turn:           turn,
		Slot:           turn.Slot,
		Phase:          state.Phase(),
		PhaseHint:      schedule.For(state.Day).Phase,
		Active:         state.ActiveNonPlayer(),
		Eliminated:     eliminated,
		Finalists:      state.Active(),
		Remaining:      remaining,
		RemainingAfter: after,
		ChallengeKind:  kind,
	}
}

func render(name string, data *promptData) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("directive: failed to render %s: %v", name, err)
		return fmt.Sprintf("SCENE TYPE: %s (Day %d)\n\nScene focus: %s\n\nSCENE_TYPE must be: %s",
			strings.ToUpper(string(data.Slot.Type)), data.State.Day, data.Slot.Description, data.Slot.Type)
	}
	return strings.TrimSpace(buf.String())
}
