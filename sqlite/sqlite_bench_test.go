package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitelens"
	"github.com/fwojciec/sitelens/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkCreatePromptLog measures one transactional insert per answer.
func BenchmarkCreatePromptLog(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	svc := sqlite.NewPromptLogService(db)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log := &sitelens.PromptLog{
			OwnerID:      "bench",
			URL:          fmt.Sprintf("https://example.com/page%d", i),
			Prompt:       "What does this company do?",
			Response:     "Generating answer for your query as a benchmark.",
			InputTokens:  40,
			OutputTokens: 8,
		}
		if err := svc.CreatePromptLog(ctx, log); err != nil {
			b.Fatal(err)
		}
	}
}
