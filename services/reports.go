package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/yeremiapane/bar-app/models"
	"github.com/yeremiapane/bar-app/utils"
)

const receiptTimeLayout = "02/01/2006 15:04"

// WriteReceiptPDF renders the receipt of a closed order.
func WriteReceiptPDF(w io.Writer, order models.ClosedOrder) error {
	pdf := fpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Recibo "+order.OrderID, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Mesa %d", order.TableID)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr("Pedido "+order.OrderID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Aberto %s  Fechado %s",
		order.OpenedAt.In(utils.Location()).Format(receiptTimeLayout),
		order.ClosedAt.In(utils.Location()).Format(receiptTimeLayout))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(12, 6, "Qtd", "B", 0, "L", false, 0, "")
	pdf.CellFormat(70, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range order.Items {
		pdf.CellFormat(12, 6, strconv.Itoa(line.Quantity), "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 6, tr(line.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(utils.FormatCurrency(line.Subtotal())), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(82, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr(utils.FormatCurrency(order.Total)), "T", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr("Pagamento: "+order.PaymentBucket()), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// WriteFinancePDF renders the range summary followed by one row per day.
func WriteFinancePDF(w io.Writer, summary RangeSummary, series []DailySummary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Relatório financeiro", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório financeiro"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s a %s", summary.StartDate, summary.EndDate), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	rows := [][2]string{
		{"Faturamento", utils.FormatCurrency(summary.Revenue)},
		{"Pedidos", strconv.Itoa(summary.Count)},
		{"Ticket médio", utils.FormatCurrency(summary.Avg)},
		{"Despesas", utils.FormatCurrency(summary.ExpensesTotal)},
		{"Saldo", utils.FormatCurrency(summary.NetTotal)},
	}
	for _, method := range sortedMethods(summary.ByPaymentMethod) {
		rows = append(rows, [2]string{"  " + method, utils.FormatCurrency(summary.ByPaymentMethod[method])})
	}
	for _, r := range rows {
		pdf.CellFormat(60, 6, tr(r[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, tr(r[1]), "", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	headers := []string{"Data", "Pedidos", "Faturamento", "Despesas", "Saldo"}
	widths := []float64{35, 25, 40, 40, 40}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, day := range series {
		cells := []string{
			day.Date,
			strconv.Itoa(day.Count),
			utils.FormatCurrency(day.Revenue),
			utils.FormatCurrency(day.ExpensesTotal),
			utils.FormatCurrency(day.NetTotal),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, tr(cell), "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// WriteFinanceCSV writes one row per day with a column per payment method seen
// in the series.
func WriteFinanceCSV(w io.Writer, series []DailySummary) error {
	seen := make(map[string]float64)
	for _, day := range series {
		for m := range day.ByPaymentMethod {
			seen[m] = 0
		}
	}
	methods := sortedMethods(seen)

	cw := csv.NewWriter(w)
	header := []string{"date", "count", "revenue", "avg", "expensesTotal", "netTotal"}
	header = append(header, methods...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, day := range series {
		row := []string{
			day.Date,
			strconv.Itoa(day.Count),
			formatAmount(day.Revenue),
			formatAmount(day.Avg),
			formatAmount(day.ExpensesTotal),
			formatAmount(day.NetTotal),
		}
		for _, m := range methods {
			row = append(row, formatAmount(day.ByPaymentMethod[m]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func sortedMethods(byMethod map[string]float64) []string {
	methods := make([]string, 0, len(byMethod))
	for m := range byMethod {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}
