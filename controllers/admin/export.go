package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/aayish123/Final-aayishFoods/models"
)

func writeWorkbook(c *gin.Context, file *xlsx.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}

// GET /admin/orders/export-excel
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Preload("Address").
			Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "UserID", "Customer", "City", "Items", "TotalAmount",
			"Status", "PaymentStatus", "PaymentMethod", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.Address.FullName)
			row.AddCell().SetValue(o.Address.City)
			row.AddCell().SetValue(strconv.Itoa(len(o.Items)))
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		writeWorkbook(c, file, "orders.xlsx")
	}
}

// GET /admin/menu/export-excel
func ExportMenuToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.FoodItem
		if err := db.Preload("Variants").Order("created_at DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Menu")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Category", "InStock", "VariantLabel", "VariantPrice", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// One row per variant so prices are visible; variant-less items get a
		// single row with empty variant cells.
		for _, item := range items {
			if len(item.Variants) == 0 {
				row := sheet.AddRow()
				row.AddCell().SetValue(item.ID)
				row.AddCell().SetValue(item.Name)
				row.AddCell().SetValue(item.Category)
				row.AddCell().SetValue(strconv.FormatBool(item.InStock))
				row.AddCell().SetValue("")
				row.AddCell().SetValue("")
				row.AddCell().SetValue(item.CreatedAt.Format("2006-01-02 15:04:05"))
				continue
			}
			for _, v := range item.Variants {
				row := sheet.AddRow()
				row.AddCell().SetValue(item.ID)
				row.AddCell().SetValue(item.Name)
				row.AddCell().SetValue(item.Category)
				row.AddCell().SetValue(strconv.FormatBool(item.InStock))
				row.AddCell().SetValue(v.Label)
				row.AddCell().SetValue(v.Price)
				row.AddCell().SetValue(item.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		writeWorkbook(c, file, "menu.xlsx")
	}
}
