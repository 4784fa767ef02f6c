package rendering

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kensetsu_match/internal/usecase/interfaces"
	"kensetsu_match/pkg/logger"

	"github.com/google/uuid"
)

// LocalRenderer materializes document payloads as JSON artifacts on local
// disk and returns a file reference. PDF generation lives behind the same
// interface in the hosted renderer service; the local variant keeps the
// pipeline runnable without it.
//
// Env vars:
//   - RENDER_OUTPUT_DIR (default: ./artifacts)
type LocalRenderer struct {
	outputDir string
}

var _ interfaces.IDocumentRenderer = (*LocalRenderer)(nil)

func NewLocalRenderer() *LocalRenderer {
	dir := os.Getenv("RENDER_OUTPUT_DIR")
	if dir == "" {
		dir = "./artifacts"
	}
	return &LocalRenderer{outputDir: dir}
}

func (r *LocalRenderer) Render(ctx context.Context, kind string, payload map[string]any) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}

	doc := map[string]any{
		"kind":         kind,
		"rendered_at":  time.Now().UTC().Format(time.RFC3339Nano),
		"payload":      payload,
		"artifact_id":  uuid.NewString(),
		"content_type": "application/json",
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.json", kind, doc["artifact_id"])
	path := filepath.Join(r.outputDir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}

	logger.L().Infow("document rendered", "kind", kind, "artifact", path)
	return "file://" + path, nil
}
