package interfaces

import "context"

// IDocumentRenderer abstracts the document rendering collaborator: given a
// document kind and a flat payload of line items/totals it returns a
// stored-artifact reference. The byte format of the artifact is opaque here.
type IDocumentRenderer interface {
	Render(ctx context.Context, kind string, payload map[string]any) (artifactRef string, err error)
}
