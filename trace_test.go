package dtd

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithTraceLogger(context.Background(), logger)

	tlog := getTraceLogFromContext(ctx)
	require.NotNil(t, tlog)

	tlog.Debug("test message")
	if TracingEnabled {
		require.Contains(t, buf.String(), "test message")
	}

	// a second logger does not replace the first one
	var other bytes.Buffer
	ctx = WithTraceLogger(ctx, slog.New(slog.NewJSONHandler(&other, nil)))
	getTraceLogFromContext(ctx).Debug("again")
	require.Empty(t, other.String())
}

func TestTraceParse(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping trace test")
		return
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithTraceLogger(context.Background(), logger)

	const input = `<!ENTITY % inline "em">
<!ELEMENT p (#PCDATA|%inline;)*>
<!ELEMENT p EMPTY>`
	d := Parse(ctx, input)
	require.Len(t, d.Errors(), 1)

	output := buf.String()
	require.Contains(t, output, `"msg":"entity declared"`)
	require.Contains(t, output, `"msg":"expanding parameter entity"`)
	require.Contains(t, output, `"policy":"MatchingParentheses"`)
	require.Contains(t, output, `"msg":"element declared"`)
	require.Contains(t, output, `"msg":"error"`)
}

func TestNoTraceLogger(t *testing.T) {
	tlog := getTraceLogFromContext(context.Background())
	require.NotNil(t, tlog)
	tlog.Debug("goes nowhere")
}
