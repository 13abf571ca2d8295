package usecase

import (
	"context"
	"log/slog"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/search"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/storage"
	"go-talent-backend/pkg/upload"

	"github.com/go-playground/validator/v10"
)

// downloadLinkTTL bounds the lifetime of presigned download links.
const downloadLinkTTL = 15 * time.Minute

type documentUsecase struct {
	documentRepo  domain.DocumentRepository
	candidateRepo domain.CandidateRepository
	blobs         storage.BlobStore
	validate      *validator.Validate
}

func NewDocumentUsecase(documentRepo domain.DocumentRepository, candidateRepo domain.CandidateRepository, blobs storage.BlobStore) domain.DocumentUsecase {
	return &documentUsecase{
		documentRepo:  documentRepo,
		candidateRepo: candidateRepo,
		blobs:         blobs,
		validate:      newValidator(),
	}
}

// CreateDocument validates and stores the file, then records the document.
// The uploaded blob is removed if the record insert fails.
func (u *documentUsecase) CreateDocument(ctx context.Context, d *domain.Document, filename string, data []byte) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	if err := u.validate.Struct(d); err != nil {
		return validationError(err)
	}
	if d.Status == "" {
		d.Status = domain.DocumentStatusValid
	}
	if !isValidDocumentStatus(d.Status) {
		return apperror.BadRequest("Statut de document inconnu : " + d.Status)
	}

	candidate, err := u.candidateRepo.GetByID(ctx, userID, d.CandidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound("Candidat introuvable")
	}

	contentType, err := upload.Validate(filename, data)
	if err != nil {
		return apperror.BadRequest("Fichier refusé : " + err.Error())
	}

	d.UserID = userID
	key := storage.ObjectKey(storage.CategoryDocuments, userID, d.CandidateID, filename)
	url, err := u.blobs.Upload(ctx, key, data, contentType)
	if err != nil {
		return apperror.Internal(err)
	}
	d.URL = url
	d.ObjectKey = &key

	if err := u.documentRepo.Create(ctx, d); err != nil {
		if delErr := u.blobs.Delete(ctx, key); delErr != nil {
			logger.Log.Warn("failed to clean up orphaned document blob",
				slog.String("key", key), slog.String("error", delErr.Error()))
		}
		return err
	}
	return nil
}

func (u *documentUsecase) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	document, err := u.documentRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, apperror.NotFound("Document introuvable")
	}
	return document, nil
}

func (u *documentUsecase) ListDocuments(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	documents, err := u.documentRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return search.Compose(documents, filter.Query,
		func(d domain.Document) []string { return []string{d.Title} },
		search.Equals(filter.Status, func(d domain.Document) string { return d.Status }),
		search.Equals(filter.Type, func(d domain.Document) string { return d.Type }),
	), nil
}

func (u *documentUsecase) ListDocumentsByCandidate(ctx context.Context, candidateID string) ([]domain.Document, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	return u.documentRepo.ListByCandidate(ctx, userID, candidateID)
}

func (u *documentUsecase) UpdateDocument(ctx context.Context, d *domain.Document) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	if err := u.validate.Struct(d); err != nil {
		return validationError(err)
	}
	if d.Status != "" && !isValidDocumentStatus(d.Status) {
		return apperror.BadRequest("Statut de document inconnu : " + d.Status)
	}

	existing, err := u.documentRepo.GetByID(ctx, userID, d.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Document introuvable")
	}

	d.UserID = userID
	d.URL = existing.URL
	d.ObjectKey = existing.ObjectKey
	if d.Status == "" {
		d.Status = existing.Status
	}

	return u.documentRepo.Update(ctx, d)
}

// DeleteDocument removes the stored file first; a storage failure aborts the
// deletion and keeps the record.
func (u *documentUsecase) DeleteDocument(ctx context.Context, id string) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	document, err := u.documentRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if document == nil {
		return apperror.NotFound("Document introuvable")
	}

	if document.ObjectKey != nil {
		if err := u.blobs.Delete(ctx, *document.ObjectKey); err != nil {
			logger.Log.Error("document blob deletion failed, keeping record",
				slog.String("document_id", id), slog.String("error", err.Error()))
			return apperror.Internal(err)
		}
	}

	return u.documentRepo.Delete(ctx, userID, id)
}

// DownloadDocument returns a short-lived presigned link to the stored file.
func (u *documentUsecase) DownloadDocument(ctx context.Context, id string) (string, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return "", err
	}

	document, err := u.documentRepo.GetByID(ctx, userID, id)
	if err != nil {
		return "", err
	}
	if document == nil || document.ObjectKey == nil {
		return "", apperror.NotFound("Document introuvable")
	}

	url, err := u.blobs.PresignedURL(ctx, *document.ObjectKey, downloadLinkTTL)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return url, nil
}

func isValidDocumentStatus(status string) bool {
	switch status {
	case domain.DocumentStatusValid, domain.DocumentStatusExpired, domain.DocumentStatusPending:
		return true
	}
	return false
}
