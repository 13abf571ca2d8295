package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/estimation"
	"go-talent-backend/internal/search"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/storage"
	"go-talent-backend/pkg/upload"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

// csvHeader is the fixed export header consumed by the dashboard's import tool.
var csvHeader = []string{"Prénom", "Nom", "Email", "Téléphone", "Compétences", "Disponibilité", "Statut"}

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	blobs         storage.BlobStore
	estimator     *estimation.Service
	validate      *validator.Validate
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, blobs storage.BlobStore, estimator *estimation.Service) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		blobs:         blobs,
		estimator:     estimator,
		validate:      newValidator(),
	}
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, c *domain.Candidate) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	if err := u.validate.Struct(c); err != nil {
		return validationError(err)
	}

	c.UserID = userID
	if c.Status == "" {
		c.Status = domain.CandidateStatusAvailable
	}
	if !isValidCandidateStatus(c.Status) {
		return apperror.BadRequest("Statut de candidat inconnu : " + c.Status)
	}

	return u.candidateRepo.Create(ctx, c)
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	candidate, err := u.candidateRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidat introuvable")
	}
	return candidate, nil
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	candidates, err := u.candidateRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return search.Compose(candidates, filter.Query,
		func(c domain.Candidate) []string {
			return []string{c.FullName(), c.Email}
		},
		search.Contains(filter.Skill, func(c domain.Candidate) []string { return c.Skills }),
		search.Equals(filter.Status, func(c domain.Candidate) string { return c.Status }),
	), nil
}

func (u *candidateUsecase) UpdateCandidate(ctx context.Context, c *domain.Candidate) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	if err := u.validate.Struct(c); err != nil {
		return validationError(err)
	}
	if c.Status != "" && !isValidCandidateStatus(c.Status) {
		return apperror.BadRequest("Statut de candidat inconnu : " + c.Status)
	}

	existing, err := u.candidateRepo.GetByID(ctx, userID, c.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Candidat introuvable")
	}

	// CV attachment and analysis are managed by their own operations.
	c.UserID = userID
	c.CVURL = existing.CVURL
	c.CVObjectKey = existing.CVObjectKey
	c.CVAnalysis = existing.CVAnalysis

	return u.candidateRepo.Update(ctx, c)
}

// DeleteCandidate removes the candidate record and its CV blob. The blob is
// deleted first: if storage fails, the record is left intact so the dashboard
// never shows a candidate whose CV link silently leaks a live object.
func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id string) error {
	userID, err := ownerID(ctx)
	if err != nil {
		return err
	}

	candidate, err := u.candidateRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if candidate == nil {
		return apperror.NotFound("Candidat introuvable")
	}

	if candidate.CVObjectKey != nil {
		if err := u.blobs.Delete(ctx, *candidate.CVObjectKey); err != nil {
			logger.Log.Error("cv blob deletion failed, keeping candidate record",
				slog.String("candidate_id", id), slog.String("error", err.Error()))
			return apperror.Internal(err)
		}
	}

	return u.candidateRepo.Delete(ctx, userID, id)
}

// AttachCV validates and stores the uploaded CV, then records its URL on the
// candidate. A previous CV under a different key is removed best-effort.
func (u *candidateUsecase) AttachCV(ctx context.Context, id, filename string, data []byte) (*domain.Candidate, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	candidate, err := u.candidateRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidat introuvable")
	}

	contentType, err := upload.Validate(filename, data)
	if err != nil {
		return nil, apperror.BadRequest("Fichier refusé : " + err.Error())
	}

	key := storage.ObjectKey(storage.CategoryCV, userID, id, filename)
	url, err := u.blobs.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if candidate.CVObjectKey != nil && *candidate.CVObjectKey != key {
		if err := u.blobs.Delete(ctx, *candidate.CVObjectKey); err != nil {
			logger.Log.Warn("failed to remove previous cv blob",
				slog.String("key", *candidate.CVObjectKey), slog.String("error", err.Error()))
		}
	}

	candidate.CVURL = &url
	candidate.CVObjectKey = &key
	if err := u.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// EstimateMarketValue computes the candidate's salary range and stores it in
// the CV analysis. Creates an empty analysis when none exists yet.
func (u *candidateUsecase) EstimateMarketValue(ctx context.Context, id string) (*domain.Candidate, error) {
	userID, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	candidate, err := u.candidateRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidat introuvable")
	}

	mv, summary := u.estimator.EstimateMarketValue(candidate)
	if candidate.CVAnalysis == nil {
		candidate.CVAnalysis = &domain.CVAnalysis{}
	}
	candidate.CVAnalysis.MarketValue = &mv
	if candidate.CVAnalysis.Summary == "" {
		candidate.CVAnalysis.Summary = summary
	}

	if err := u.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// ExportCSV writes the filtered candidates as a UTF-8 CSV file with the fixed
// French header. Values are quoted per RFC 4180 when they contain delimiters.
func (u *candidateUsecase) ExportCSV(ctx context.Context, filter domain.CandidateFilter) ([]byte, string, error) {
	candidates, err := u.ListCandidates(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, c := range candidates {
		if err := w.Write(csvRow(&c)); err != nil {
			return nil, "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	filename := fmt.Sprintf("candidats_%s.csv", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

// ExportExcel writes the filtered candidates as an Excel workbook with the
// same columns as the CSV export.
func (u *candidateUsecase) ExportExcel(ctx context.Context, filter domain.CandidateFilter) ([]byte, string, error) {
	candidates, err := u.ListCandidates(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheetName := "Candidats"
	f.SetSheetName("Sheet1", sheetName)

	for i, h := range csvHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#0066CC"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(csvHeader), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, c := range candidates {
		for colIdx, value := range csvRow(&c) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range csvHeader {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("candidats_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

// csvRow maps a candidate onto the export columns, mirroring csvHeader.
func csvRow(c *domain.Candidate) []string {
	return []string{
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		strings.Join(c.Skills, ", "),
		c.Availability,
		domain.CandidateStatusLabels[c.Status],
	}
}

func isValidCandidateStatus(status string) bool {
	for _, s := range domain.CandidateStatuses {
		if s == status {
			return true
		}
	}
	return false
}
