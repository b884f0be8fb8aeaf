package qrcontroller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/menuly/restaurant-admin/models"
	"github.com/menuly/restaurant-admin/qr"
)

// CodeStore persists generated batches so a restart does not lose
// previously generated codes.
type CodeStore interface {
	QRBatch() []models.TableCode
	SetQRBatch(codes []models.TableCode)
	TableCount() int
}

type codeSummary struct {
	Table int    `json:"table"`
	Value string `json:"value"`
}

// ListCodes returns the persisted batch without image payloads; images
// are served per table.
func ListCodes(store CodeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		codes := store.QRBatch()
		out := make([]codeSummary, 0, len(codes))
		for _, code := range codes {
			out = append(out, codeSummary{Table: code.Table, Value: code.Value})
		}
		c.JSON(http.StatusOK, gin.H{"tableCount": store.TableCount(), "codes": out})
	}
}

// GenerateCodes builds a fresh batch for the requested table count and
// persists it, replacing the previous batch.
func GenerateCodes(store CodeStore, menuBaseURL, restaurantID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Count int `json:"count"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		codes, err := qr.GenerateBatch(menuBaseURL, restaurantID, body.Count)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR codes"})
			return
		}
		store.SetQRBatch(codes)
		log.Printf("generated %d table QR codes for restaurant %s", len(codes), restaurantID)

		out := make([]codeSummary, 0, len(codes))
		for _, code := range codes {
			out = append(out, codeSummary{Table: code.Table, Value: code.Value})
		}
		c.JSON(http.StatusOK, gin.H{"tableCount": len(codes), "codes": out})
	}
}

// CodeImage serves one table's QR raster as PNG.
func CodeImage(store CodeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		table, err := strconv.Atoi(c.Param("table"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table number"})
			return
		}
		for _, code := range store.QRBatch() {
			if code.Table == table {
				c.Data(http.StatusOK, "image/png", code.Image)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "No QR code for that table"})
	}
}
