package usecases

import (
	"io"
	"time"

	"rentora.backend/internal/domain/entities"
)

// timeNow is a seam for tests that pin the clock.
var timeNow = time.Now

// FileStore abstracts validated file persistence for uploads and
// generated documents.
type FileStore interface {
	SaveImage(filename string, r io.Reader) (string, error)
	SaveDocument(filename string, r io.Reader) (string, error)
	SaveSlip(filename string, r io.Reader) (string, error)
	Delete(path string) error
	ReadFile(path string) ([]byte, error)
}

// DocumentRenderer renders domain documents as PDF bytes.
type DocumentRenderer interface {
	LeaseAgreement(lease *entities.Lease, property *entities.Property, tenant *entities.User) ([]byte, error)
	RentReceipt(payment *entities.RentPayment, lease *entities.Lease, tenant *entities.User) ([]byte, error)
}
