package qr

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/menuly/restaurant-admin/models"
)

// interItemDelay spaces out sequential file writes so a batch download
// does not hammer slow storage.
const interItemDelay = 50 * time.Millisecond

// ExportFiles writes each code's PNG into dir as table-<n>.png. The
// sequence is best-effort: a failure on one item is logged and does
// not roll back or stop the items around it. Returns the number of
// files written.
func ExportFiles(dir string, codes []models.TableCode) int {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("qr: failed to create export folder: %v", err)
		return 0
	}
	written := 0
	for i, code := range codes {
		name := filepath.Join(dir, fmt.Sprintf("table-%d.png", code.Table))
		if err := os.WriteFile(name, code.Image, 0o644); err != nil {
			log.Printf("qr: failed to write %s: %v", name, err)
			continue
		}
		written++
		if i < len(codes)-1 {
			time.Sleep(interItemDelay)
		}
	}
	return written
}
