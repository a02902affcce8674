package services

import (
	"fmt"
	"strings"

	"dunestore/internal/domain"
	"dunestore/internal/repos"
	"dunestore/internal/schema"

	"github.com/xuri/excelize/v2"
)

// ExportService renders orders and products as Excel workbooks for the
// admin panel.
type ExportService struct {
	Orders *repos.OrderRepo
	Prods  *repos.ProductRepo
}

func NewExportService(orders *repos.OrderRepo, prods *repos.ProductRepo) *ExportService {
	return &ExportService{Orders: orders, Prods: prods}
}

func (s *ExportService) OrdersWorkbook() (*excelize.File, error) {
	orders, err := s.Orders.ListLatest(10000)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Customer", "Phone", "City", "Address", "Notes", "Total", "Status", "Created", "Items"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, o := range orders {
		_, items, err := s.Orders.Get(o.ID)
		if err != nil {
			return nil, err
		}
		vals := []any{o.ID, o.CustomerName, o.Phone, o.City, o.Address, o.Notes, o.TotalPrice, o.Status, o.CreatedAt, formatItems(items)}
		for col, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return f, nil
}

func (s *ExportService) ProductsWorkbook() (*excelize.File, error) {
	products, err := s.Prods.ListAll()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Name", "Name (FR)", "Price", "Category", "Stock", "Active", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, p := range products {
		vals := []any{p.ID, p.Name, p.NameFr, p.Price, p.Category, p.Stock, p.Active, p.CreatedAt}
		for col, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return f, nil
}

func formatItems(items []repos.OrderItemRow) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		line := fmt.Sprintf("%dx %s", it.Qty, it.ProductName)
		if it.OptionsJSON != "" {
			var opts domain.Options
			if err := opts.UnmarshalJSON([]byte(it.OptionsJSON)); err == nil {
				if disp := schema.FormatForDisplay(opts); len(disp) > 0 {
					line += " (" + strings.Join(disp, ", ") + ")"
				}
			}
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "; ")
}
