package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jung-kurt/gofpdf"
	"github.com/phrazzld/blog-api/internal/store"
)

// ExportHandler renders posts as downloadable PDF documents.
type ExportHandler struct {
	postStore store.PostStore
}

// NewExportHandler creates a new ExportHandler with the given dependencies.
func NewExportHandler(postStore store.PostStore) *ExportHandler {
	return &ExportHandler{
		postStore: postStore,
	}
}

// ExportPost handles the GET /blog/{id}/export endpoint, streaming the
// post as a PDF.
func (h *ExportHandler) ExportPost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to export post")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(post.Title, false)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(40, 40, 40)
	pdf.MultiCell(0, 10, post.Title, "", "L", false)
	pdf.Ln(2)

	// Byline
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8,
		fmt.Sprintf("%s  |  %s", post.AuthorName, post.CreatedAt.Format("Jan 02, 2006")),
		"B", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Body
	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(40, 40, 40)
	pdf.MultiCell(0, 6, post.Body, "", "L", false)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=post-%s.pdf", post.ID))

	if err := pdf.Output(w); err != nil {
		// Headers are already written; the most we can do is log.
		slog.Error("failed to write PDF response", "error", err, "post_id", post.ID)
	}
}
