package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/mock"
	"github.com/fwojciec/sitelens/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposePrompt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Website Summary: SUM\n\nUser Prompt: Q?", pipeline.ComposePrompt("SUM", "Q?"))
}

func TestComposer_Compose(t *testing.T) {
	t.Parallel()

	t.Run("prefixes response and counts whitespace tokens", func(t *testing.T) {
		t.Parallel()

		var gotPrompt string
		model := &mock.LanguageModel{
			CompleteFn: func(_ context.Context, prompt string) (string, error) {
				gotPrompt = prompt
				return "a rocket company", nil
			},
		}

		answer, err := pipeline.NewComposer(model, nil).Compose(context.Background(), "SUM", "Q?")

		require.NoError(t, err)
		assert.Equal(t, "Website Summary: SUM\n\nUser Prompt: Q?", gotPrompt)
		assert.True(t, strings.HasPrefix(answer.Response, "Generating answer for your query as "))
		assert.Equal(t, pipeline.ResponsePrefix+"a rocket company", answer.Response)
		assert.Equal(t, "a rocket company", answer.Raw)
		assert.Equal(t, len(strings.Fields("Website Summary: SUM\n\nUser Prompt: Q?")), answer.InputTokens)
		assert.Equal(t, 6, answer.InputTokens)
		assert.Equal(t, 3, answer.OutputTokens)
	})

	t.Run("uses the configured token counter", func(t *testing.T) {
		t.Parallel()

		model := &mock.LanguageModel{
			CompleteFn: func(context.Context, string) (string, error) { return "ok", nil },
		}
		counter := &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, text string) (int, error) {
				return len(text), nil
			},
		}

		answer, err := pipeline.NewComposer(model, counter).Compose(context.Background(), "S", "P")

		require.NoError(t, err)
		assert.Equal(t, len(pipeline.ComposePrompt("S", "P")), answer.InputTokens)
		assert.Equal(t, 2, answer.OutputTokens)
	})

	t.Run("model failure returns compose error", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("unavailable")
		model := &mock.LanguageModel{
			CompleteFn: func(context.Context, string) (string, error) { return "", cause },
		}

		answer, err := pipeline.NewComposer(model, nil).Compose(context.Background(), "SUM", "Q?")

		require.Error(t, err)
		assert.Nil(t, answer)
		assert.Equal(t, sitelens.ECOMPOSE, sitelens.ErrorCode(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("token counter failure returns compose error", func(t *testing.T) {
		t.Parallel()

		model := &mock.LanguageModel{
			CompleteFn: func(context.Context, string) (string, error) { return "ok", nil },
		}
		counter := &mock.TokenCounter{
			CountTokensFn: func(context.Context, string) (int, error) {
				return 0, errors.New("tokenizer broken")
			},
		}

		_, err := pipeline.NewComposer(model, counter).Compose(context.Background(), "S", "P")

		require.Error(t, err)
		assert.Equal(t, sitelens.ECOMPOSE, sitelens.ErrorCode(err))
	})
}
