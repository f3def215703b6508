package repositories

import (
	"context"
	"strings"

	"github.com/sbilibin2017/covid19-portal/internal/logger"
)

// logQuery writes the query on a single line together with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
