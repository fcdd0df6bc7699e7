package collab

import (
	"context"
	"fmt"
	"strings"

	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/conversation"
	"github.com/maestro-works/maestro/pkg/llm"
)

// ResolvePendingQuestions routes unanswered questions raised during the
// phase to their target personas and posts the answers, linked by
// question id. At most max questions are resolved per call; questions
// whose target persona is unknown are skipped with a system notice so
// the asker learns nobody will answer.
func (o *Orchestrator) ResolvePendingQuestions(ctx context.Context, phase config.Phase, max int) (int, error) {
	pending := o.conv.PendingQuestions(phase)
	if len(pending) == 0 {
		return 0, nil
	}
	if max > 0 && len(pending) > max {
		o.logger.Warn("Capping question resolution round",
			"phase", phase.String(),
			"pending", len(pending),
			"max", max)
		pending = pending[:max]
	}

	resolved := 0
	for _, q := range pending {
		if err := ctx.Err(); err != nil {
			return resolved, err
		}

		persona, err := o.personas.Get(q.For)
		if err != nil {
			_, appendErr := o.conv.Append(conversation.Message{
				Source: "orchestrator",
				Phase:  phase,
				Kind:   conversation.KindSystem,
				System: &conversation.SystemNotice{
					Content: fmt.Sprintf("question %s is addressed to unknown persona %q and will not be answered", q.ID, q.For),
					Level:   "warning",
				},
			})
			if appendErr != nil {
				return resolved, appendErr
			}
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "A teammate asked you: %s\n", q.Question)
		if q.Context != "" {
			fmt.Fprintf(&b, "Context: %s\n", q.Context)
		}
		if teamContext := o.conv.ContextFor(q.For, o.opts.ContextWindow); teamContext != "" {
			fmt.Fprintf(&b, "\n%s\n", teamContext)
		}
		b.WriteString("\nAnswer directly and concretely. If you must assume something, state the assumption.")

		answer, _, err := llm.GenerateText(ctx, o.client, &llm.GenerateInput{
			PersonaID: q.For,
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: persona.SystemPrompt},
				{Role: llm.RoleUser, Content: b.String()},
			},
		})
		if err != nil {
			return resolved, fmt.Errorf("failed to resolve question %s via %s: %w", q.ID, q.For, err)
		}

		_, err = o.conv.Append(conversation.Message{
			Source: q.For,
			Phase:  phase,
			Kind:   conversation.KindAnswer,
			Answer: &conversation.Answer{
				QuestionID: q.ID,
				Text:       strings.TrimSpace(answer),
			},
		})
		if err != nil {
			return resolved, err
		}
		resolved++
	}

	o.logger.Info("Resolved pending questions",
		"phase", phase.String(),
		"resolved", resolved,
		"remaining", len(o.conv.PendingQuestions(phase)))
	return resolved, nil
}
