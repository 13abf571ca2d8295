package usecase

import (
	"context"
	"log/slog"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/storage"
	"go-talent-backend/pkg/upload"

	"github.com/go-playground/validator/v10"
)

// Attachment kinds accepted by AttachFile.
const (
	ContractFileContract  = "contract"
	ContractFileSignature = "signature"
)

type contractUsecase struct {
	contractRepo  domain.ContractRepository
	candidateRepo domain.CandidateRepository
	blobs         storage.BlobStore
	validate      *validator.Validate
}

func NewContractUsecase(contractRepo domain.ContractRepository, candidateRepo domain.CandidateRepository, blobs storage.BlobStore) domain.ContractUsecase {
	return &contractUsecase{
		contractRepo:  contractRepo,
		candidateRepo: candidateRepo,
		blobs:         blobs,
		validate:      newValidator(),
	}
}

func (u *contractUsecase) CreateContract(ctx context.Context, c *domain.Contract) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	if err := u.validate.Struct(c); err != nil {
		return validationError(err)
	}

	// The contract must target a candidate the caller owns.
	candidate, err := u.candidateRepo.GetByID(ctx, userID, c.CandidateID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound("Candidat introuvable")
	}

	c.UserID = userID
	if c.Status == "" {
		c.Status = domain.ContractStatusDraft
	}

	return u.contractRepo.Create(ctx, c)
}

func (u *contractUsecase) GetContract(ctx context.Context, id string) (*domain.Contract, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	contract, err := u.contractRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NotFound("Contrat introuvable")
	}
	return contract, nil
}

func (u *contractUsecase) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	return u.contractRepo.ListByOwner(ctx, userID)
}

func (u *contractUsecase) ListContractsByCandidate(ctx context.Context, candidateID string) ([]domain.Contract, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	return u.contractRepo.ListByCandidate(ctx, userID, candidateID)
}

func (u *contractUsecase) UpdateContract(ctx context.Context, c *domain.Contract) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	if err := u.validate.Struct(c); err != nil {
		return validationError(err)
	}

	existing, err := u.contractRepo.GetByID(ctx, userID, c.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Contrat introuvable")
	}

	// Attachments are managed through AttachFile only.
	c.UserID = userID
	c.ContractURL = existing.ContractURL
	c.ContractObjectKey = existing.ContractObjectKey
	c.SignatureURL = existing.SignatureURL
	c.SignatureObjectKey = existing.SignatureObjectKey
	if c.Status == "" {
		c.Status = existing.Status
	}

	return u.contractRepo.Update(ctx, c)
}

// DeleteContract removes the contract and its stored files. Blob failures
// abort the deletion so the record never orphans a live object.
func (u *contractUsecase) DeleteContract(ctx context.Context, id string) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	contract, err := u.contractRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if contract == nil {
		return apperror.NotFound("Contrat introuvable")
	}

	for _, key := range []*string{contract.ContractObjectKey, contract.SignatureObjectKey} {
		if key == nil {
			continue
		}
		if err := u.blobs.Delete(ctx, *key); err != nil {
			logger.Log.Error("contract blob deletion failed, keeping record",
				slog.String("contract_id", id), slog.String("error", err.Error()))
			return apperror.Internal(err)
		}
	}

	return u.contractRepo.Delete(ctx, userID, id)
}

// SendContract moves a draft contract to sent.
func (u *contractUsecase) SendContract(ctx context.Context, id string) (*domain.Contract, error) {
	return u.transition(ctx, id, domain.ContractStatusDraft, domain.ContractStatusSent,
		"Seul un contrat en brouillon peut être envoyé")
}

// SignContract moves a sent contract to signed.
func (u *contractUsecase) SignContract(ctx context.Context, id string) (*domain.Contract, error) {
	return u.transition(ctx, id, domain.ContractStatusSent, domain.ContractStatusSigned,
		"Seul un contrat envoyé peut être signé")
}

func (u *contractUsecase) transition(ctx context.Context, id, from, to, guardMessage string) (*domain.Contract, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	contract, err := u.contractRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NotFound("Contrat introuvable")
	}

	if contract.Status != from {
		return nil, apperror.UnprocessableEntity(guardMessage + " (statut actuel : " + contract.Status + ")")
	}

	contract.Status = to
	if err := u.contractRepo.Update(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// AttachFile stores a contract scan or a signature image on the contract.
func (u *contractUsecase) AttachFile(ctx context.Context, id, kind, filename string, data []byte) (*domain.Contract, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	var category string
	switch kind {
	case ContractFileContract:
		category = storage.CategoryContracts
	case ContractFileSignature:
		category = storage.CategorySignatures
	default:
		return nil, apperror.BadRequest("Type de fichier inconnu : " + kind)
	}

	contract, err := u.contractRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NotFound("Contrat introuvable")
	}

	contentType, err := upload.Validate(filename, data)
	if err != nil {
		return nil, apperror.BadRequest("Fichier refusé : " + err.Error())
	}

	key := storage.ObjectKey(category, userID, id, filename)
	url, err := u.blobs.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	switch kind {
	case ContractFileContract:
		contract.ContractURL = &url
		contract.ContractObjectKey = &key
	case ContractFileSignature:
		contract.SignatureURL = &url
		contract.SignatureObjectKey = &key
	}

	if err := u.contractRepo.Update(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}
