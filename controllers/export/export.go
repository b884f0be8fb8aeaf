package exportcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/menuly/restaurant-admin/display"
	"github.com/tealeg/xlsx"
)

// ExportProducts downloads the current product snapshot as an xlsx
// workbook, one row per product with its resolved category name.
func ExportProducts(p *display.Poller) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := p.Snapshot()

		categoryNames := map[string]string{}
		for _, cat := range snap.Categories {
			categoryNames[cat.ID] = cat.Name
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Category", "Price", "Ingredients", "Available", "New"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, product := range snap.Products {
			row := sheet.AddRow()
			row.AddCell().SetValue(product.ID)
			row.AddCell().SetValue(product.Name)
			row.AddCell().SetValue(categoryNames[product.CategoryID])
			row.AddCell().SetValue(product.Price.String())
			row.AddCell().SetValue(product.Ingredients)
			row.AddCell().SetValue(product.IsAvailable)
			row.AddCell().SetValue(product.IsNew)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
