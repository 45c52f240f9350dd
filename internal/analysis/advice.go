package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/thisiskushal31/TrendSignal/internal/apperr"
	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

const adviceSystem = `You write creator-facing insights about trending topics, favoring speed and clarity over perfection. You answer with raw JSON only, no markdown.`

const advicePromptFmt = `Topic: %s
Trend strength: %s

Generate creator-facing insights:
1. why_trending: 1-2 sentences on why the platform is promoting this topic.
2. who_is_winning: who is benefiting (channel size, format).
3. posting_advice: how the user should post about it (format, timing, angle).
4. hooks: exactly %d short-form viral hooks (one line each), all different, copyable.

Return JSON with keys: why_trending, who_is_winning, posting_advice,
hooks (array of exactly %d strings). Raw JSON only.`

// GenerateAdvice produces the explanation, audience-benefit statement,
// posting recommendation and exactly five hooks for a topic at a given
// stage. A reply with the wrong hook count is malformed output; padding or
// truncating would misrepresent what the model actually said.
func (a *Analyzer) GenerateAdvice(ctx context.Context, topic string, stage types.TrendStage) (*types.AdviceRecord, error) {
	if topic == "" {
		return nil, apperr.New(apperr.InvalidInput, "topic name is required")
	}
	if !stage.Valid() {
		return nil, apperr.New(apperr.InvalidInput, "trend stage %q is not one of EARLY, HEATING_UP, SATURATED", stage)
	}

	prompt := fmt.Sprintf(advicePromptFmt, topic, stage, types.HookCount, types.HookCount)
	raw, err := a.client.Invoke(ctx, adviceSystem, prompt, nil, adviceMaxTokens)
	if err != nil {
		return nil, err
	}

	var advice types.AdviceRecord
	if err := a.client.Decode(raw, &advice); err != nil {
		return nil, err
	}
	if err := validateAdvice(&advice); err != nil {
		return nil, apperr.Wrap(apperr.MalformedOutput, err, "advice reply failed validation").WithRaw(raw)
	}

	a.log.Infow("advice generated", "topic", topic, "stage", stage)
	return &advice, nil
}

func validateAdvice(advice *types.AdviceRecord) error {
	advice.WhyTrending = strings.TrimSpace(advice.WhyTrending)
	advice.WhoIsWinning = strings.TrimSpace(advice.WhoIsWinning)
	advice.PostingAdvice = strings.TrimSpace(advice.PostingAdvice)

	switch {
	case advice.WhyTrending == "":
		return fmt.Errorf("why_trending is empty")
	case advice.WhoIsWinning == "":
		return fmt.Errorf("who_is_winning is empty")
	case advice.PostingAdvice == "":
		return fmt.Errorf("posting_advice is empty")
	}

	if len(advice.Hooks) != types.HookCount {
		return fmt.Errorf("expected exactly %d hooks, got %d", types.HookCount, len(advice.Hooks))
	}
	seen := make(map[string]bool, types.HookCount)
	for i, hook := range advice.Hooks {
		hook = strings.TrimSpace(hook)
		if hook == "" {
			return fmt.Errorf("hook %d is empty", i+1)
		}
		key := strings.ToLower(hook)
		if seen[key] {
			return fmt.Errorf("duplicate hook %q", hook)
		}
		seen[key] = true
		advice.Hooks[i] = hook
	}
	return nil
}
