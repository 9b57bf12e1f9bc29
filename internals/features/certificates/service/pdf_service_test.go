package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mengemudiku_backend/internals/features/certificates/model"
)

func TestVerificationURL(t *testing.T) {
	url := VerificationURL("https://api.mengemudiku.id", "abc123def456")
	assert.Equal(t, "https://api.mengemudiku.id/api/public/certificates/verify/abc123def456", url)
}

func TestRenderCertificatePDF(t *testing.T) {
	cert := &model.CertificateModel{
		CertificateNumber:           "CERT/2026/000001",
		CertificateVerificationCode: "0123456789abcdef0123",
		CertificateStudentName:      "Budi Santoso",
		CertificateCourseTitle:      "Kursus Mengemudi Mobil Manual",
		CertificateIssuedAt:         time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
	}

	pdfBytes, err := RenderCertificatePDF(cert, "https://api.mengemudiku.id")
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
