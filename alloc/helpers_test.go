package alloc

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// testNode stands in for a container node: a value plus an owning link.
type testNode struct {
	value string
	next  *testNode
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func logLines(buf *bytes.Buffer) []string {
	s := strings.TrimSpace(buf.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func ptrString[N any](p *N) string {
	return fmt.Sprintf("%p", p)
}
