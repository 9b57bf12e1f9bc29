package service

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"mengemudiku_backend/internals/features/certificates/model"
)

// VerificationURL is the public link encoded in the certificate QR code.
func VerificationURL(baseURL, code string) string {
	return fmt.Sprintf("%s/api/public/certificates/verify/%s", baseURL, code)
}

// RenderCertificatePDF renders the certificate as a landscape A4 PDF with
// a QR code pointing at the public verification endpoint.
func RenderCertificatePDF(cert *model.CertificateModel, baseURL string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(VerificationURL(baseURL, cert.CertificateVerificationCode), qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	// frame
	pdf.SetLineWidth(1.2)
	pdf.Rect(10, 10, 277, 190, "D")

	pdf.SetFont("Helvetica", "B", 30)
	pdf.SetY(35)
	pdf.CellFormat(0, 14, "CERTIFICATE OF COMPLETION", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.Ln(8)
	pdf.CellFormat(0, 8, "This certifies that", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.Ln(4)
	pdf.CellFormat(0, 12, cert.CertificateStudentName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.Ln(4)
	pdf.CellFormat(0, 8, "has successfully completed the course", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Ln(2)
	pdf.CellFormat(0, 10, cert.CertificateCourseTitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(8)
	pdf.CellFormat(0, 6, fmt.Sprintf("Certificate No. %s", cert.CertificateNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued on %s", cert.CertificateIssuedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 245, 155, 32, 32, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(240, 188)
	pdf.CellFormat(42, 4, "Scan to verify", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
