package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptLogService_CreatePromptLog(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and round trips", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPromptLogService(setupTestDB(t))
		ctx := context.Background()
		log := &sitelens.PromptLog{
			OwnerID:      "u1",
			URL:          "https://acme.io",
			Prompt:       "What does this company do?",
			Response:     "Generating answer for your query as rockets",
			InputTokens:  12,
			OutputTokens: 7,
		}

		require.NoError(t, svc.CreatePromptLog(ctx, log))
		assert.NotEmpty(t, log.ID)
		assert.WithinDuration(t, time.Now(), log.CreatedAt, 5*time.Second)

		owner := "u1"
		logs, err := svc.FindPromptLogs(ctx, sitelens.PromptLogFilter{OwnerID: &owner})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, log.ID, logs[0].ID)
		assert.Equal(t, log.Prompt, logs[0].Prompt)
		assert.Equal(t, log.Response, logs[0].Response)
		assert.Equal(t, 12, logs[0].InputTokens)
		assert.Equal(t, 7, logs[0].OutputTokens)
		assert.True(t, log.CreatedAt.Equal(logs[0].CreatedAt))
	})

	t.Run("rejects log without prompt", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPromptLogService(setupTestDB(t))

		err := svc.CreatePromptLog(context.Background(), &sitelens.PromptLog{OwnerID: "u1"})

		require.Error(t, err)
		assert.Equal(t, sitelens.EINVALID, sitelens.ErrorCode(err))
	})

	t.Run("failed create leaves nothing behind", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPromptLogService(setupTestDB(t))
		log := &sitelens.PromptLog{OwnerID: "u1", URL: "https://acme.io", Prompt: "Q"}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.Error(t, svc.CreatePromptLog(ctx, log))
		assert.Empty(t, log.ID)

		logs, err := svc.FindPromptLogs(context.Background(), sitelens.PromptLogFilter{})
		require.NoError(t, err)
		assert.Empty(t, logs)
	})
}

func TestPromptLogService_FindPromptLogs(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewPromptLogService(setupTestDB(t))
	ctx := context.Background()
	for _, p := range []string{"first", "second", "third"} {
		require.NoError(t, svc.CreatePromptLog(ctx, &sitelens.PromptLog{OwnerID: "u1", URL: "https://acme.io", Prompt: p}))
	}
	require.NoError(t, svc.CreatePromptLog(ctx, &sitelens.PromptLog{OwnerID: "u2", URL: "https://other.io", Prompt: "other"}))

	t.Run("newest first", func(t *testing.T) {
		t.Parallel()

		owner := "u1"
		logs, err := svc.FindPromptLogs(ctx, sitelens.PromptLogFilter{OwnerID: &owner})

		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.Equal(t, "third", logs[0].Prompt)
		assert.Equal(t, "first", logs[2].Prompt)
	})

	t.Run("filters by url with limit", func(t *testing.T) {
		t.Parallel()

		url := "https://acme.io"
		logs, err := svc.FindPromptLogs(ctx, sitelens.PromptLogFilter{URL: &url, Limit: 2})

		require.NoError(t, err)
		assert.Len(t, logs, 2)
	})
}
