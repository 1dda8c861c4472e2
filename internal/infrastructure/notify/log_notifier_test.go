package notify

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	n := LogNotifier{}
	ctx := context.Background()
	n.Success(ctx, "Project created", "p-1")
	n.Error(ctx, "Failed to create project", "db down")
	n.Warning(ctx, "Conversion already in progress", "l-1")
	n.Loading(ctx, "Converting lead", "l-1")

	out := buf.String()
	for _, want := range []string{
		"[notify][success] Project created detail=p-1",
		"[notify][error] Failed to create project detail=db down",
		"[notify][warning] Conversion already in progress detail=l-1",
		"[notify][loading] Converting lead detail=l-1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
