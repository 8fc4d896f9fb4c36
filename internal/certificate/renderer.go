package certificate

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Meta carries everything the renderer prints besides the body prose.
type Meta struct {
	Province      string
	Municipality  string
	BarangayName  string
	Title         string
	IssueDate     time.Time
	PlaceIssued   string
	ORNumber      string
	Amount        string
	CaptainName   string
	SecretaryName string
}

// A4 portrait, millimetre units.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginX      = 20.0
	topMargin    = 20.0
	bottomMargin = 15.0
	lineHeight   = 6.0
)

// ErrBodyTooLong reports a body that cannot fit the single-page layout.
var ErrBodyTooLong = errors.New("certificate body does not fit on a single page")

// Render lays the certificate out on one A4 page and returns the PDF bytes.
// The required height is computed before anything is drawn, so an overlong
// body fails fast instead of silently running off the page.
func Render(body string, meta Meta) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, topMargin, marginX)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	textWidth := pageWidth - marginX*2

	pdf.SetFont("Times", "", 12)
	bodyLines := pdf.SplitText(body, textWidth)

	issueText := fmt.Sprintf("Issued this %s at %s, %s, %s, %s.",
		meta.IssueDate.Format("2 January 2006"),
		meta.PlaceIssued, meta.BarangayName, meta.Municipality, meta.Province)
	issueLines := pdf.SplitText(issueText, textWidth)

	hasReceipt := meta.ORNumber != "" || meta.Amount != ""
	if layoutBottom(len(bodyLines), len(issueLines), hasReceipt) > pageHeight-bottomMargin {
		return nil, ErrBodyTooLong
	}

	// Jurisdiction header
	y := topMargin
	pdf.SetFont("Times", "", 10)
	centerText(pdf, "Republic of the Philippines", y)
	y += 5
	centerText(pdf, "Province of "+meta.Province, y)
	y += 5
	centerText(pdf, "City/Municipality of "+meta.Municipality, y)
	y += 5
	centerText(pdf, "BARANGAY "+strings.ToUpper(meta.BarangayName), y)

	y += 12
	pdf.SetLineWidth(0.5)
	pdf.Line(marginX, y, pageWidth-marginX, y)
	y += 10

	// Title
	pdf.SetFont("Times", "B", 16)
	centerText(pdf, strings.ToUpper(meta.Title), y)

	y += 12
	pdf.SetFont("Times", "", 12)

	// Salutation
	pdf.Text(marginX, y, "TO WHOM IT MAY CONCERN:")
	y += 8

	// Body
	for _, line := range bodyLines {
		pdf.Text(marginX, y, line)
		y += lineHeight
	}
	y += 6

	// Date & place
	for _, line := range issueLines {
		pdf.Text(marginX, y, line)
		y += lineHeight
	}
	y += 10

	// OR / amount (optional)
	if hasReceipt {
		orText := "OR No.: " + meta.ORNumber
		if meta.ORNumber == "" {
			orText = "OR No.: N/A"
		}
		if meta.Amount != "" {
			orText += " | Amount: PHP " + meta.Amount
		}
		pdf.SetFont("Times", "", 10)
		pdf.Text(marginX, y, orText)
		y += 10
		pdf.SetFont("Times", "", 12)
	}

	// Signatories
	signY := y + 10
	pdf.SetFont("Times", "B", 12)
	rightText(pdf, strings.ToUpper(meta.CaptainName), signY)
	pdf.SetFont("Times", "", 12)
	rightText(pdf, "Punong Barangay", signY+5)

	secY := signY + 20
	pdf.SetFont("Times", "B", 12)
	rightText(pdf, strings.ToUpper(meta.SecretaryName), secY)
	pdf.SetFont("Times", "", 12)
	rightText(pdf, "Barangay Secretary", secY+5)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// layoutBottom walks the layout arithmetic and returns where the secretary
// title line lands for a given body and issue-sentence height.
func layoutBottom(bodyLines, issueLines int, hasReceipt bool) float64 {
	y := topMargin
	y += 5 * 3 // header lines below the first
	y += 12    // gap to the rule
	y += 10    // gap to the title
	y += 12    // gap to the salutation
	y += 8     // gap to the body
	y += float64(bodyLines)*lineHeight + 6
	y += float64(issueLines)*lineHeight + 10
	if hasReceipt {
		y += 10
	}
	y += 10 // gap to the captain block
	y += 20 // gap to the secretary block
	return y + 5
}

func centerText(pdf *gofpdf.Fpdf, s string, y float64) {
	pdf.Text((pageWidth-pdf.GetStringWidth(s))/2, y, s)
}

func rightText(pdf *gofpdf.Fpdf, s string, y float64) {
	pdf.Text(pageWidth-marginX-pdf.GetStringWidth(s), y, s)
}
